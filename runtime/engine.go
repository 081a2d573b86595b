// Package runtime drives the system: one loop consumes transport
// events and runs each command to completion before the next. It holds
// no business rules of its own.
package runtime

import (
	"context"
	"log/slog"
	"strings"

	"pugchamp/command"
	"pugchamp/contract"
	"pugchamp/domain"
	"pugchamp/timeparse"
)

// Snapshotter persists the registries after a mutating command.
type Snapshotter interface {
	Store(sessions *domain.SessionRegistry, zones *timeparse.Directory) error
}

// Engine is the single writer over the session registry and the zone
// directory. A command fully completes, snapshot included, before the
// next event is handled; nothing else may mutate shared state.
type Engine struct {
	log        *slog.Logger
	env        *command.Env
	dispatcher *command.Dispatcher
	snapshots  Snapshotter
	source     contract.EventSource
	welcome    string
}

// NewEngine wires the loop. welcome is the community-join greeting; a
// literal {user} inside it is replaced with the joiner's mention.
func NewEngine(log *slog.Logger, env *command.Env, dispatcher *command.Dispatcher,
	snapshots Snapshotter, source contract.EventSource, welcome string) *Engine {
	return &Engine{
		log:        log,
		env:        env,
		dispatcher: dispatcher,
		snapshots:  snapshots,
		source:     source,
		welcome:    welcome,
	}
}

// Run blocks until the context is canceled or the transport closes its
// channels.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-e.source.Messages():
			if !ok {
				return nil
			}
			e.HandleMessage(msg)
		case join, ok := <-e.source.Joins():
			if !ok {
				return nil
			}
			e.HandleJoin(join)
		}
	}
}

// HandleMessage dispatches one message and snapshots when it mutated
// durable state. A snapshot failure is logged, never surfaced to the
// sender: the reply already went out for a command that did succeed.
func (e *Engine) HandleMessage(msg contract.Message) {
	if msg.FromBot {
		return
	}

	reply, mutated := e.dispatcher.Dispatch(msg.Content, msg)
	if reply != "" {
		e.env.Chat.Send(msg.ChannelID, reply)
	}
	if mutated {
		if err := e.snapshots.Store(e.env.Sessions, e.env.Zones); err != nil {
			e.log.Error("Snapshot failed - state may be lost on restart", "error", err)
		}
	}
}

// HandleJoin greets a new community member in the system channel.
func (e *Engine) HandleJoin(join contract.JoinEvent) {
	channelID, err := e.env.Chat.SystemChannel(join.GuildID)
	if err != nil {
		e.log.Warn("No system channel to welcome into", "guild", join.GuildID, "error", err)
		return
	}
	e.env.Chat.Send(channelID, strings.ReplaceAll(e.welcome, "{user}", join.User.Mention()))
}
