package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pugchamp/errors"
)

var (
	clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	dateRe  = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})(?:-(\d{4}))?$`)
)

// now is swapped out in tests.
var now = time.Now

func badFormat(text string) error {
	return fmt.Errorf("%w: could not read %q as a time - expected HH:MM [am/pm] [zone] [MM-DD[-YYYY]]",
		errors.ErrBadArgument, text)
}

// Parse reads schedule text of the form "7:30 pm EST 12-25-2024" into
// an absolute timestamp in the written zone. Every part after the clock
// is optional: a missing zone falls back to the caller's registered
// zone (no fallback is its own error, distinct from a format error), a
// missing date means today in the resolved zone, and a missing year
// means the current year.
func Parse(text string, fallback *Zone) (time.Time, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return time.Time{}, badFormat(text)
	}

	m := clockRe.FindStringSubmatch(tokens[0])
	if m == nil {
		return time.Time{}, badFormat(text)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	rest := tokens[1:]

	if len(rest) > 0 {
		switch strings.ToUpper(rest[0]) {
		case "AM":
			if hour == 12 {
				hour = 0
			}
			rest = rest[1:]
		case "PM":
			if hour < 12 {
				hour += 12
			}
			rest = rest[1:]
		}
	}
	if hour > 23 || minute > 59 {
		return time.Time{}, badFormat(text)
	}

	var zone Zone
	haveZone := false
	if len(rest) > 0 {
		if z, err := ParseZone(rest[0]); err == nil {
			zone = z
			haveZone = true
			rest = rest[1:]
		}
	}
	if !haveZone {
		if fallback == nil {
			return time.Time{}, errors.ErrNoTimeZone
		}
		zone = *fallback
	}
	loc := zone.Location()

	year, month, day := now().In(loc).Date()
	if len(rest) > 0 {
		d := dateRe.FindStringSubmatch(rest[0])
		if d == nil {
			return time.Time{}, badFormat(text)
		}
		mon, _ := strconv.Atoi(d[1])
		day, _ = strconv.Atoi(d[2])
		if mon < 1 || mon > 12 || day < 1 || day > 31 {
			return time.Time{}, badFormat(text)
		}
		month = time.Month(mon)
		if d[3] != "" {
			year, _ = strconv.Atoi(d[3])
		}
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return time.Time{}, badFormat(text)
	}

	return time.Date(year, month, day, hour, minute, 0, 0, loc), nil
}
