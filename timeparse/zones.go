// Package timeparse turns free-form schedule text into absolute zoned
// timestamps. Zone abbreviations resolve against an explicit table so
// results stay deterministic: EST is EST, never silently EDT.
package timeparse

import (
	"fmt"
	"strings"
	"time"

	"pugchamp/errors"
)

// Zone is a named fixed offset. Standard and daylight variants are
// distinct entries; callers pick the one that is in effect.
type Zone struct {
	Abbr   string
	Offset int // seconds east of UTC
}

func (z Zone) Location() *time.Location {
	return time.FixedZone(z.Abbr, z.Offset)
}

var zoneOffsets = map[string]int{
	"UTC": 0,
	"GMT": 0,

	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,

	"AKST": -9 * 3600,
	"AKDT": -8 * 3600,
	"HST":  -10 * 3600,

	"BST":  1 * 3600,
	"CET":  1 * 3600,
	"CEST": 2 * 3600,
	"EET":  2 * 3600,
	"EEST": 3 * 3600,

	"JST":  9 * 3600,
	"KST":  9 * 3600,
	"AEST": 10 * 3600,
	"AEDT": 11 * 3600,
	"NZST": 12 * 3600,
	"NZDT": 13 * 3600,
}

// ParseZone resolves a three-letter (or four, for the odd AKST-style
// code) abbreviation into a Zone.
func ParseZone(text string) (Zone, error) {
	abbr := strings.ToUpper(strings.TrimSpace(text))
	offset, ok := zoneOffsets[abbr]
	if !ok {
		return Zone{}, fmt.Errorf("%w: unknown time zone %q - use the abbreviated form, "+
			"and pick standard or daylight time yourself, I refuse to guess", errors.ErrBadArgument, text)
	}
	return Zone{Abbr: abbr, Offset: offset}, nil
}
