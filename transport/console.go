package transport

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"pugchamp/contract"
	"pugchamp/domain"
	"pugchamp/errors"
)

// ConsoleUserID is the identity behind every line typed on stdin.
const ConsoleUserID = "console"

// Console is a development transport: lines read from in become
// messages from a fixed local user, replies and DMs print to out. It
// implements both contract.EventSource and contract.ChatSession, so
// the whole engine runs end-to-end without a chat platform.
type Console struct {
	log       *slog.Logger
	user      domain.User
	guildID   string
	channelID string
	in        io.Reader
	out       io.Writer
	messages  chan contract.Message
	joins     chan contract.JoinEvent
	roles     map[string]map[string]bool // userID -> roleID -> member
}

func NewConsole(log *slog.Logger, guildID, channelID string, in io.Reader, out io.Writer) *Console {
	return &Console{
		log:       log,
		user:      domain.User{ID: ConsoleUserID, Name: "console"},
		guildID:   guildID,
		channelID: channelID,
		in:        in,
		out:       out,
		messages:  make(chan contract.Message),
		joins:     make(chan contract.JoinEvent),
		roles:     make(map[string]map[string]bool),
	}
}

// GrantRole pre-seeds a role membership, e.g. to make the console user
// a moderator.
func (c *Console) GrantRole(userID, roleID string) {
	if c.roles[userID] == nil {
		c.roles[userID] = make(map[string]bool)
	}
	c.roles[userID][roleID] = true
}

// Start reads lines until EOF or cancellation, then closes the message
// channel so the engine winds down.
func (c *Console) Start(ctx context.Context) {
	go func() {
		defer close(c.messages)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			msg := contract.Message{
				ID:        uuid.New(),
				Author:    c.user,
				GuildID:   c.guildID,
				ChannelID: c.channelID,
				Content:   scanner.Text(),
			}
			select {
			case c.messages <- msg:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			c.log.Error("Console input failed", "error", err)
		}
	}()
}

func (c *Console) Messages() <-chan contract.Message {
	return c.messages
}

func (c *Console) Joins() <-chan contract.JoinEvent {
	return c.joins
}

// ResolveUser synthesizes an identity for any non-empty ID so restored
// snapshots always resolve locally.
func (c *Console) ResolveUser(id string) (domain.User, error) {
	if id == "" {
		return domain.User{}, errors.ErrNoSuchUser
	}
	if id == c.user.ID {
		return c.user, nil
	}
	return domain.User{ID: id, Name: id}, nil
}

func (c *Console) ResolveChannel(string, string) error {
	return nil
}

func (c *Console) SystemChannel(string) (string, error) {
	return c.channelID, nil
}

func (c *Console) Send(channelID, text string) {
	fmt.Fprintf(c.out, "[#%s] %s\n", channelID, text)
}

func (c *Console) SendDirect(u domain.User, text string) {
	fmt.Fprintf(c.out, "[DM to %s] %s\n", u.Name, text)
}

func (c *Console) HasRole(_ string, u domain.User, roleID string) bool {
	return c.roles[u.ID][roleID]
}

func (c *Console) AddRole(_ string, u domain.User, roleID string) error {
	c.GrantRole(u.ID, roleID)
	return nil
}

func (c *Console) RemoveRole(_ string, u domain.User, roleID string) error {
	if members, ok := c.roles[u.ID]; ok {
		delete(members, roleID)
	}
	return nil
}
