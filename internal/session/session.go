// Package session holds the authenticated identity shared by every page.
//
// A Session is reference counted: the process creates it with one reference,
// each page that loads data acquires another for the duration of the request,
// and the session is torn down when the last reference is released or when it
// is disposed explicitly (logout, 401 from the API).
package session

import (
	"errors"
	"sync"

	"github.com/hy4ri/backoffice-tui/internal/api"
	"github.com/hy4ri/backoffice-tui/internal/logger"
)

// ErrDisposed is returned by Acquire once the session has been torn down.
var ErrDisposed = errors.New("session disposed")

// Session is a shared handle on the access token and the signed-in user.
type Session struct {
	mu       sync.Mutex
	token    string
	user     *api.User
	refs     int
	disposed bool
	hooks    []func()
}

// New returns a live session holding one reference.
func New(token string, user *api.User) *Session {
	return &Session{token: token, user: user, refs: 1}
}

// Acquire adds a reference. Every successful Acquire must be paired with a
// Release.
func (s *Session) Acquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return ErrDisposed
	}
	s.refs++
	return nil
}

// Release drops a reference and disposes the session when none remain.
// Releasing a disposed session is a no-op.
func (s *Session) Release() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.refs--
	if s.refs > 0 {
		s.mu.Unlock()
		return
	}
	hooks := s.teardown()
	s.mu.Unlock()

	runHooks(hooks)
}

// Dispose tears the session down regardless of outstanding references.
// It is safe to call more than once.
func (s *Session) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	hooks := s.teardown()
	s.mu.Unlock()

	runHooks(hooks)
}

// OnDispose registers fn to run once when the session is torn down. If the
// session is already disposed fn runs immediately.
func (s *Session) OnDispose(fn func()) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		fn()
		return
	}
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

// Token returns the access token, or "" once disposed.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the signed-in user, or nil once disposed or when unknown.
func (s *Session) User() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Active reports whether the session can still be acquired.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.disposed
}

// Refs returns the current reference count.
func (s *Session) Refs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refs
}

// teardown must be called with mu held.
func (s *Session) teardown() []func() {
	s.disposed = true
	s.refs = 0
	s.token = ""
	s.user = nil
	hooks := s.hooks
	s.hooks = nil
	logger.Info("session disposed")
	return hooks
}

func runHooks(hooks []func()) {
	for _, fn := range hooks {
		fn()
	}
}
