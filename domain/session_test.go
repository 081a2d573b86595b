package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorderNotifier struct {
	dms       []string
	announces []string
}

func (r *recorderNotifier) NotifyUser(u User, text string) {
	r.dms = append(r.dms, u.ID+": "+text)
}

func (r *recorderNotifier) Announce(_ HomeContext, text string) {
	r.announces = append(r.announces, text)
}

func newTestSession(n Notifier) *Session {
	at := time.Date(2024, 12, 25, 19, 30, 0, 0, time.FixedZone("EST", -5*3600))
	return NewSession("Scrim", at, "friendly scrim", User{ID: "mod", Name: "Mod"}, HomeContext{GuildID: "g", ChannelID: "c"}, n)
}

func TestSession_PlayersAndWatchersStayDisjoint(t *testing.T) {
	req := require.New(t)
	sess := newTestSession(&recorderNotifier{})
	alice := User{ID: "a", Name: "Alice"}
	bob := User{ID: "b", Name: "Bob"}

	// Given Alice watches and Bob plays
	sess.RegisterWatcher(alice)
	sess.RegisterPlayer(bob)

	// When both switch sides a few times
	sess.RegisterPlayer(alice)
	sess.RegisterWatcher(bob)
	sess.RegisterPlayer(alice) // joining twice is a no-op
	sess.RegisterWatcher(bob)

	// Then nobody is in both sets
	req.Equal([]User{alice}, sess.Players())
	req.Equal([]User{bob}, sess.Watchers())
}

func TestSession_RemovePlayer_CoversBothSets(t *testing.T) {
	req := require.New(t)
	sess := newTestSession(&recorderNotifier{})
	alice := User{ID: "a", Name: "Alice"}
	bob := User{ID: "b", Name: "Bob"}

	sess.RegisterPlayer(alice)
	sess.RegisterWatcher(bob)

	sess.RemovePlayer(alice)
	sess.RemovePlayer(bob)
	// Removing someone who already left is not an error
	sess.RemovePlayer(alice)

	req.Empty(sess.Players())
	req.Empty(sess.Watchers())
}

func TestSession_Cancel_NotifiesWholeRoster(t *testing.T) {
	req := require.New(t)
	notifier := &recorderNotifier{}
	sess := newTestSession(notifier)
	sess.RegisterPlayer(User{ID: "a", Name: "Alice"})
	sess.RegisterPlayer(User{ID: "b", Name: "Bob"})
	sess.RegisterWatcher(User{ID: "w", Name: "Wanda"})

	sess.Cancel()

	req.Len(notifier.dms, 3)
	req.Contains(notifier.dms[0], "canceled")
	req.Contains(notifier.dms[2], "w: ")
}

func TestSession_Reschedule_UpdatesTimeAndNotifies(t *testing.T) {
	req := require.New(t)
	notifier := &recorderNotifier{}
	sess := newTestSession(notifier)
	sess.RegisterWatcher(User{ID: "w", Name: "Wanda"})

	newAt := time.Date(2024, 12, 26, 20, 0, 0, 0, time.FixedZone("EST", -5*3600))
	sess.Reschedule(newAt)

	req.Equal(newAt, sess.At())
	req.Len(notifier.dms, 1)
	req.Contains(notifier.dms[0], "rescheduled")
}

func TestSession_InfoProjectionsDoNotMutate(t *testing.T) {
	req := require.New(t)
	sess := newTestSession(&recorderNotifier{})
	sess.RegisterPlayer(User{ID: "a", Name: "Alice"})

	pst := time.FixedZone("PST", -8*3600)
	brief := sess.BriefInfo(pst)
	full := sess.FullInfo(pst)

	// 19:30 EST is 16:30 PST
	req.Contains(brief, "4:30 PM PST")
	req.Contains(full, "4:30 PM PST")
	req.Contains(full, "friendly scrim")
	req.Equal("EST", sess.At().Format("MST"))
	req.Len(sess.Players(), 1)
}

func TestSession_RosterLists(t *testing.T) {
	req := require.New(t)
	sess := newTestSession(&recorderNotifier{})

	req.Contains(sess.PlayerList(), "nobody yet")

	sess.RegisterPlayer(User{ID: "a", Name: "Alice"})
	sess.RegisterWatcher(User{ID: "w", Name: "Wanda"})

	req.Contains(sess.PlayerList(), "Alice")
	req.NotContains(sess.PlayerList(), "Wanda")
	req.Contains(sess.WatcherList(), "Wanda")
}
