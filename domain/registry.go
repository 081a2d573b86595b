package domain

import (
	"pugchamp/errors"
)

// SessionRegistry is the single owner of live sessions. It keeps
// insertion order so listings and snapshots come out the way sessions
// were created.
type SessionRegistry struct {
	names  []string
	byName map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{byName: make(map[string]*Session)}
}

// Create registers a new session. Names are unique; a collision leaves
// the existing session untouched.
func (r *SessionRegistry) Create(s *Session) error {
	if _, ok := r.byName[s.Name()]; ok {
		return errors.ErrDuplicateName
	}
	r.byName[s.Name()] = s
	r.names = append(r.names, s.Name())
	return nil
}

func (r *SessionRegistry) Get(name string) (*Session, error) {
	s, ok := r.byName[name]
	if !ok {
		return nil, errors.ErrNoSuchSession
	}
	return s, nil
}

// Remove drops the named session. Any later operation on that name
// fails with ErrNoSuchSession rather than silently doing nothing.
func (r *SessionRegistry) Remove(name string) error {
	if _, ok := r.byName[name]; !ok {
		return errors.ErrNoSuchSession
	}
	delete(r.byName, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
	return nil
}

// All returns sessions in creation order.
func (r *SessionRegistry) All() []*Session {
	out := make([]*Session, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.byName[n])
	}
	return out
}

func (r *SessionRegistry) Len() int {
	return len(r.names)
}
