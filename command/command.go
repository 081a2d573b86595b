package command

import (
	"pugchamp/contract"
	"pugchamp/domain"
	"pugchamp/errors"
)

// action is the capability a command actually runs. Two variants exist:
// one sees the full message (sender, channel, mentions), the other only
// the resolved sender. Both sit behind the same authorization wrapper.
type action interface {
	run(env *Env, args *Scanner, msg contract.Message) (string, error)
}

// MessageFunc handles commands that need message metadata beyond the
// sender, such as mentioned users or the origin channel.
type MessageFunc func(env *Env, args *Scanner, msg contract.Message) (string, error)

// UserFunc handles self-referential commands; it sees only the sender.
type UserFunc func(env *Env, args *Scanner, user domain.User) (string, error)

type messageAction struct{ fn MessageFunc }

func (a messageAction) run(env *Env, args *Scanner, msg contract.Message) (string, error) {
	return a.fn(env, args, msg)
}

type userAction struct{ fn UserFunc }

func (a userAction) run(env *Env, args *Scanner, msg contract.Message) (string, error) {
	return a.fn(env, args, msg.Author)
}

// Command is one dispatchable unit of work.
type Command struct {
	Keyword string
	ModOnly bool
	Mutator bool
	Usage   string
	Help    string

	visible bool
	act     action
}

func NewMessageCommand(keyword string, modOnly, mutator bool, usage, help string, fn MessageFunc) *Command {
	return &Command{Keyword: keyword, ModOnly: modOnly, Mutator: mutator, Usage: usage, Help: help, act: messageAction{fn: fn}}
}

func NewUserCommand(keyword string, modOnly, mutator bool, usage, help string, fn UserFunc) *Command {
	return &Command{Keyword: keyword, ModOnly: modOnly, Mutator: mutator, Usage: usage, Help: help, act: userAction{fn: fn}}
}

// Reveal forces the command into the general help listing even when it
// is moderator-only. Used by modhelp itself.
func (c *Command) Reveal() *Command {
	c.visible = true
	return c
}

// Hidden reports whether the command is omitted from the general help
// listing. Moderator-only commands hide by default.
func (c *Command) Hidden() bool {
	return c.ModOnly && !c.visible
}

// Execute applies the authorization gate, then runs the variant
// callback. The gate fires before any side effect for both variants.
func (c *Command) Execute(env *Env, args *Scanner, msg contract.Message) (string, error) {
	if c.ModOnly && !env.Chat.HasRole(msg.GuildID, msg.Author, env.ModRoleID) {
		return "", errors.ErrNotAuthorized
	}
	return c.act.run(env, args, msg)
}
