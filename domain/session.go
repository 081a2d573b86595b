package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

const scheduleLayout = "3:04 PM MST on Mon, Jan 2 2006"

// Session is one scheduled PUG: a named event with a roster, a schedule
// and a responsible moderator. A session is active for as long as it
// lives in a SessionRegistry; removal is terminal.
type Session struct {
	name        string
	at          time.Time
	description string
	moderator   User
	players     []User
	watchers    []User
	home        HomeContext
	notifier    Notifier
}

func NewSession(name string, at time.Time, description string, moderator User, home HomeContext, notifier Notifier) *Session {
	return &Session{
		name:        name,
		at:          at,
		description: description,
		moderator:   moderator,
		home:        home,
		notifier:    notifier,
	}
}

func (s *Session) Name() string        { return s.name }
func (s *Session) At() time.Time       { return s.at }
func (s *Session) Description() string { return s.description }
func (s *Session) Moderator() User     { return s.moderator }
func (s *Session) Home() HomeContext   { return s.home }

// Players returns the roster in join order.
func (s *Session) Players() []User {
	return append([]User(nil), s.players...)
}

func (s *Session) Watchers() []User {
	return append([]User(nil), s.watchers...)
}

// Reschedule moves the session to a new time and tells everyone on the
// roster about it.
func (s *Session) Reschedule(at time.Time) {
	s.at = at
	s.notifyRoster(fmt.Sprintf("%s has been rescheduled to %s.", s.name, at.Format(scheduleLayout)))
}

func (s *Session) ChangeMod(u User) {
	s.moderator = u
}

// RegisterPlayer adds u to the players. A user is never in both sets:
// joining as a player drops any watcher entry first. Re-joining is a
// no-op.
func (s *Session) RegisterPlayer(u User) {
	s.watchers = withoutUser(s.watchers, u)
	if !containsUser(s.players, u) {
		s.players = append(s.players, u)
	}
}

// RegisterWatcher mirrors RegisterPlayer for the watcher set.
func (s *Session) RegisterWatcher(u User) {
	s.players = withoutUser(s.players, u)
	if !containsUser(s.watchers, u) {
		s.watchers = append(s.watchers, u)
	}
}

// RemovePlayer drops u from whichever set holds them. Absence is not an
// error.
func (s *Session) RemovePlayer(u User) {
	s.players = withoutUser(s.players, u)
	s.watchers = withoutUser(s.watchers, u)
}

// Cancel notifies the whole roster that the session is gone. The caller
// removes the session from its registry afterwards; close skips the
// notification entirely and goes straight to removal.
func (s *Session) Cancel() {
	s.notifyRoster(fmt.Sprintf("%s has been canceled.", s.name))
}

// AnnounceCreation posts the session to its home channel.
func (s *Session) AnnounceCreation() {
	text := fmt.Sprintf("New PUG %q scheduled for %s by %s.", s.name, s.at.Format(scheduleLayout), s.moderator.Name)
	if s.description != "" {
		text += " " + s.description
	}
	s.notifier.Announce(s.home, text)
}

// BriefInfo projects the session into the given zone. Read-only.
func (s *Session) BriefInfo(zone *time.Location) string {
	return fmt.Sprintf("%s - %s (%d players, %d watchers)",
		s.name, s.at.In(zone).Format(scheduleLayout), len(s.players), len(s.watchers))
}

func (s *Session) FullInfo(zone *time.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nScheduled for: %s\nModerator: %s\n", s.name, s.at.In(zone).Format(scheduleLayout), s.moderator.Name)
	if s.description != "" {
		fmt.Fprintf(&b, "Description: %s\n", s.description)
	}
	fmt.Fprintf(&b, "%d players, %d watchers", len(s.players), len(s.watchers))
	return b.String()
}

func (s *Session) PlayerList() string {
	return rosterList("Players in "+s.name+":", s.players)
}

func (s *Session) WatcherList() string {
	return rosterList("Watchers of "+s.name+":", s.watchers)
}

func rosterList(header string, users []User) string {
	if len(users) == 0 {
		return header + " nobody yet."
	}
	names := lo.Map(users, func(u User, _ int) string { return " - " + u.Name })
	return header + "\n" + strings.Join(names, "\n")
}

func (s *Session) notifyRoster(text string) {
	for _, u := range s.players {
		s.notifier.NotifyUser(u, text)
	}
	for _, u := range s.watchers {
		s.notifier.NotifyUser(u, text)
	}
}

func containsUser(users []User, u User) bool {
	return lo.ContainsBy(users, func(o User) bool { return o.ID == u.ID })
}

func withoutUser(users []User, u User) []User {
	return lo.Reject(users, func(o User, _ int) bool { return o.ID == u.ID })
}
