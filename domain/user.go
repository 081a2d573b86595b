// Package domain contains core concepts of the PUG scheduling system.
// This file defines user identity and the notification contract.
// No transport, storage, or UI logic should be added here.
package domain

// User is a chat platform identity resolved by the transport.
type User struct {
	ID   string
	Name string
}

func (u User) Mention() string {
	return "<@" + u.ID + ">"
}

// HomeContext points at the community and announcement channel a
// session belongs to. The IDs are owned by the chat platform and are
// only ever resolved, never created, by this system.
type HomeContext struct {
	GuildID   string
	ChannelID string
}

// Notifier delivers out-of-band text to users and channels. Sends are
// fire-and-forget; delivery is the transport's problem.
type Notifier interface {
	NotifyUser(u User, text string)
	Announce(home HomeContext, text string)
}
