package assistant

import (
	"context"
	"sync"
)

// sessionState is the client's session lifecycle:
//
//	no_session → creating → session_active
//
// with a one-way fallback edge into sessions_disabled from creating or
// session_active on any request failure. Once disabled, every request uses
// the stateless path for the rest of the process. The machine is transport
// bookkeeping only; it never affects classification semantics.
type sessionState int

const (
	noSession sessionState = iota
	creating
	sessionActive
	sessionsDisabled
)

// sessions tracks the state machine behind a mutex so concurrent asks share
// one session.
type sessions struct {
	mu        sync.Mutex
	state     sessionState
	sessionID string
}

// acquire returns the session ID to use for a request, creating the session
// on first use via create. It returns "" when sessions are disabled (or were
// never enabled), in which case the caller takes the stateless path.
func (s *sessions) acquire(ctx context.Context, create func(context.Context) (string, error)) string {
	s.mu.Lock()
	switch s.state {
	case sessionsDisabled:
		s.mu.Unlock()
		return ""
	case sessionActive:
		id := s.sessionID
		s.mu.Unlock()
		return id
	case creating:
		// Another goroutine lost the race mid-create and we cannot block on
		// it; this request goes stateless, the session stays usable.
		s.mu.Unlock()
		return ""
	}
	s.state = creating
	s.mu.Unlock()

	id, err := create(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || id == "" {
		s.state = sessionsDisabled
		return ""
	}
	s.state = sessionActive
	s.sessionID = id
	return id
}

// disable takes the one-way edge into sessions_disabled.
func (s *sessions) disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = sessionsDisabled
	s.sessionID = ""
}

// disabled reports whether the fallback edge has been taken.
func (s *sessions) disabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == sessionsDisabled
}
