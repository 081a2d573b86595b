package timeparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectory_RegisterAndLookup(t *testing.T) {
	req := require.New(t)
	dir := NewDirectory()

	_, ok := dir.Lookup("alice")
	req.False(ok)

	est, _ := ParseZone("EST")
	dir.Register("alice", est)

	got, ok := dir.Lookup("alice")
	req.True(ok)
	req.Equal("EST", got.Abbr)
}

func TestDirectory_OverwriteKeepsPosition(t *testing.T) {
	req := require.New(t)
	dir := NewDirectory()
	est, _ := ParseZone("EST")
	pst, _ := ParseZone("PST")
	cet, _ := ParseZone("CET")

	dir.Register("alice", est)
	dir.Register("bob", pst)
	dir.Register("alice", cet)

	all := dir.All()
	req.Len(all, 2)
	req.Equal("alice", all[0].UserID)
	req.Equal("CET", all[0].Zone.Abbr)
	req.Equal("bob", all[1].UserID)
	req.Equal(2, dir.Len())
}
