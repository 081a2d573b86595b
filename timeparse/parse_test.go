package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pugchamp/errors"
)

func TestParse_FullForm(t *testing.T) {
	req := require.New(t)

	got, err := Parse("7:30 PM EST 12-25-2024", nil)

	req.NoError(err)
	want := time.Date(2024, 12, 25, 19, 30, 0, 0, time.FixedZone("EST", -5*3600))
	req.True(got.Equal(want))
	req.Equal("EST", got.Format("MST"))
}

func TestParse_FallbackZone(t *testing.T) {
	req := require.New(t)
	pst := Zone{Abbr: "PST", Offset: -8 * 3600}

	got, err := Parse("7:30 pm 12-25-2024", &pst)

	req.NoError(err)
	req.Equal("PST", got.Format("MST"))
	req.Equal(19, got.Hour())
}

func TestParse_NoZoneAnywhere(t *testing.T) {
	_, err := Parse("7:30 pm", nil)
	require.ErrorIs(t, err, errors.ErrNoTimeZone)
}

func TestParse_DateDefaultsToToday(t *testing.T) {
	req := require.New(t)
	restore := now
	now = func() time.Time {
		return time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)
	}
	defer func() { now = restore }()

	got, err := Parse("11:00 am UTC", nil)

	req.NoError(err)
	req.True(got.Equal(time.Date(2024, 3, 14, 11, 0, 0, 0, time.UTC)))
}

func TestParse_YearDefaultsToCurrent(t *testing.T) {
	req := require.New(t)
	restore := now
	now = func() time.Time {
		return time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)
	}
	defer func() { now = restore }()

	got, err := Parse("11:00 pm utc 12-25", nil)

	req.NoError(err)
	req.True(got.Equal(time.Date(2024, 12, 25, 23, 0, 0, 0, time.UTC)))
}

func TestParse_MeridiemEdges(t *testing.T) {
	req := require.New(t)

	midnight, err := Parse("12:00 am UTC 1-1-2024", nil)
	req.NoError(err)
	req.Equal(0, midnight.Hour())

	noon, err := Parse("12:00 pm UTC 1-1-2024", nil)
	req.NoError(err)
	req.Equal(12, noon.Hour())

	military, err := Parse("19:30 UTC 1-1-2024", nil)
	req.NoError(err)
	req.Equal(19, military.Hour())
}

func TestParse_FormatErrors(t *testing.T) {
	for _, text := range []string{"", "tomorrow", "7-30 pm EST", "25:00 EST", "7:75 EST", "7:30 pm EST 13-40", "7:30 pm EST garbage"} {
		_, err := Parse(text, nil)
		require.ErrorIs(t, err, errors.ErrBadArgument, "input %q", text)
	}
}

func TestParseZone_KeepsStandardAndDaylightApart(t *testing.T) {
	req := require.New(t)

	est, err := ParseZone("est")
	req.NoError(err)
	req.Equal("EST", est.Abbr)
	req.Equal(-5*3600, est.Offset)

	edt, err := ParseZone("EDT")
	req.NoError(err)
	req.Equal("EDT", edt.Abbr)
	req.Equal(-4*3600, edt.Offset)

	// EST must render as EST, never silently as EDT
	req.Equal("EST", time.Now().In(est.Location()).Format("MST"))
}

func TestParseZone_Unknown(t *testing.T) {
	_, err := ParseZone("XYZ")
	require.ErrorIs(t, err, errors.ErrBadArgument)
}
