// Package contract defines what the core expects from the chat
// transport. The transport (connection handling, delivery, presence)
// lives entirely outside this module; everything here is an interface
// or a plain value crossing that boundary.
package contract

import (
	"pugchamp/domain"

	"github.com/google/uuid"
)

// Message is one inbound chat message plus the metadata commands need.
type Message struct {
	ID        uuid.UUID
	Author    domain.User
	GuildID   string
	ChannelID string
	Content   string
	Mentions  []domain.User
	FromBot   bool
}

// JoinEvent fires when a user joins the community.
type JoinEvent struct {
	GuildID string
	User    domain.User
}

// EventSource feeds the engine. Both channels close when the transport
// shuts down.
type EventSource interface {
	Messages() <-chan Message
	Joins() <-chan JoinEvent
}

// ChatSession is the live connection surface: identity resolution,
// message delivery and role management. Sends are fire-and-forget.
type ChatSession interface {
	ResolveUser(id string) (domain.User, error)
	ResolveChannel(guildID, channelID string) error
	SystemChannel(guildID string) (string, error)

	Send(channelID, text string)
	SendDirect(u domain.User, text string)

	HasRole(guildID string, u domain.User, roleID string) bool
	AddRole(guildID string, u domain.User, roleID string) error
	RemoveRole(guildID string, u domain.User, roleID string) error
}
