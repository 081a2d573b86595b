package errors

import "fmt"

var (
	ErrNotAuthorized   = fmt.Errorf("you must be a moderator to use this command")
	ErrBadArgument     = fmt.Errorf("incorrectly formatted argument")
	ErrNoTimeZone      = fmt.Errorf("no time zone found - register one now with the timezone command")
	ErrNoSuchSession   = fmt.Errorf("no PUG with that name")
	ErrNoSuchUser      = fmt.Errorf("no user with that identity")
	ErrDuplicateName   = fmt.Errorf("a PUG with that name already exists")
	ErrPersistence     = fmt.Errorf("persistence failure")
	ErrMissingArgument = fmt.Errorf("missing argument")
)
