// Package transport contains adapters between the core and a chat
// connection: the roster notifier and a console session for local runs.
// A real platform client would live next to these, behind the same
// contract interfaces.
package transport

import (
	"pugchamp/contract"
	"pugchamp/domain"
)

// Notifier delivers roster notifications through the chat session,
// honoring the DM opt-out role. Sends are fire-and-forget.
type Notifier struct {
	chat       contract.ChatSession
	guildID    string
	noDMRoleID string
}

func NewNotifier(chat contract.ChatSession, guildID, noDMRoleID string) Notifier {
	return Notifier{chat: chat, guildID: guildID, noDMRoleID: noDMRoleID}
}

func (n Notifier) NotifyUser(u domain.User, text string) {
	if n.chat.HasRole(n.guildID, u, n.noDMRoleID) {
		return
	}
	n.chat.SendDirect(u, text)
}

func (n Notifier) Announce(home domain.HomeContext, text string) {
	n.chat.Send(home.ChannelID, text)
}
