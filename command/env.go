// Package command turns raw chat text into validated, permissioned
// operations against the session registry and the zone directory.
package command

import (
	"log/slog"

	"pugchamp/contract"
	"pugchamp/domain"
	"pugchamp/errors"
	"pugchamp/moderation"
	"pugchamp/timeparse"
)

// Env is the explicit context threaded through every command
// invocation. All mutable registries live here; commands never reach
// for ambient globals, which keeps the single-writer discipline
// testable in isolation.
type Env struct {
	Sessions  *domain.SessionRegistry
	Zones     *timeparse.Directory
	Chat      contract.ChatSession
	Notifier  domain.Notifier
	Moderator *moderation.Moderator // nil disables description censoring
	Log       *slog.Logger

	Prefix            string
	ModRoleID         string
	NoDMRoleID        string
	AnnounceChannelID string
}

// zoneFor resolves the zone for a read command: an inline zone argument
// wins, otherwise the user's registered zone, otherwise an error.
func (e *Env) zoneFor(user domain.User, sc *Scanner) (timeparse.Zone, error) {
	if sc.HasNext() {
		tok, err := sc.NextToken()
		if err != nil {
			return timeparse.Zone{}, err
		}
		return timeparse.ParseZone(tok)
	}
	if z, ok := e.Zones.Lookup(user.ID); ok {
		return z, nil
	}
	return timeparse.Zone{}, errors.ErrNoTimeZone
}

// fallbackZone is the optional zone handed to the time parser when the
// schedule text carries no zone of its own.
func (e *Env) fallbackZone(user domain.User) *timeparse.Zone {
	if z, ok := e.Zones.Lookup(user.ID); ok {
		return &z
	}
	return nil
}
