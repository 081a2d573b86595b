package command

import (
	stderrors "errors"
	"fmt"
	"strings"

	"pugchamp/contract"
	"pugchamp/errors"
)

// Registry holds command definitions for the process lifetime, in
// registration order.
type Registry struct {
	keywords  []string
	byKeyword map[string]*Command
}

func NewRegistry() *Registry {
	return &Registry{byKeyword: make(map[string]*Command)}
}

func (r *Registry) Register(c *Command) {
	if _, ok := r.byKeyword[c.Keyword]; !ok {
		r.keywords = append(r.keywords, c.Keyword)
	}
	r.byKeyword[c.Keyword] = c
}

func (r *Registry) Get(keyword string) (*Command, bool) {
	c, ok := r.byKeyword[keyword]
	return c, ok
}

// All returns commands in registration order.
func (r *Registry) All() []*Command {
	out := make([]*Command, 0, len(r.keywords))
	for _, k := range r.keywords {
		out = append(out, r.byKeyword[k])
	}
	return out
}

// Dispatcher routes inbound text to commands. It runs on the single
// processing context; nothing here is safe for concurrent use.
type Dispatcher struct {
	env      *Env
	commands *Registry
}

func NewDispatcher(env *Env, commands *Registry) *Dispatcher {
	return &Dispatcher{env: env, commands: commands}
}

// Dispatch parses, authorizes and executes one message. The reply is
// empty when the message is not a command at all. mutated reports
// whether durable state changed, so the caller knows to snapshot.
// Errors never escape: they degrade to the reply text.
func (d *Dispatcher) Dispatch(raw string, msg contract.Message) (reply string, mutated bool) {
	if !strings.HasPrefix(raw, d.env.Prefix) {
		return "", false
	}

	sc := NewScanner(raw[len(d.env.Prefix):])
	keyword, err := sc.NextToken()
	if err != nil {
		return "", false
	}

	cmd, ok := d.commands.Get(strings.ToLower(keyword))
	if !ok {
		return fmt.Sprintf("Command not recognized - use %shelp for a list of commands.", d.env.Prefix), false
	}

	reply, err = cmd.Execute(d.env, sc, msg)
	if err != nil {
		if stderrors.Is(err, errors.ErrMissingArgument) {
			return fmt.Sprintf("%s - usage: %s", err.Error(), cmd.Usage), false
		}
		return err.Error(), false
	}
	return reply, cmd.Mutator
}
