// Package session owns the client's authentication state.
//
// A Session is built once at start-up with New and handed to every consumer.
// Construction restores any persisted session before returning, so there is
// no "still loading" state: a consumer that holds a *Session always sees
// either the restored session or the unauthenticated one. State changes only
// through LoginUser and LogoutUser.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

// ErrMissingDependency is returned by New when a required collaborator is nil.
var ErrMissingDependency = errors.New("session: missing dependency")

// Authenticator exchanges credentials for a token and resolves its owner.
type Authenticator interface {
	Submit(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, token string) (string, error)
}

// Store persists the token and display name between runs.
type Store interface {
	Save(ctx context.Context, token, userName string) error
	Load(ctx context.Context) (token, userName string, err error)
	Clear(ctx context.Context) error
}

// State is a snapshot of the session. IsAuthenticated is true iff a token is
// held in memory.
type State struct {
	IsAuthenticated bool
	UserName        string
}

type Session struct {
	auth  Authenticator
	store Store
	log   logging.Logger

	mu          sync.RWMutex
	token       string
	userName    string
	subscribers []func(State)
}

// New builds the session and restores any persisted one. auth and store are
// required. A failing store does not fail construction: the error is logged
// and the session starts unauthenticated.
func New(ctx context.Context, auth Authenticator, store Store, log logging.Logger) (*Session, error) {
	if auth == nil || store == nil {
		return nil, ErrMissingDependency
	}
	if log == nil {
		log = logging.Discard()
	}

	s := &Session{auth: auth, store: store, log: log}

	token, name, err := store.Load(ctx)
	if err != nil {
		log.Warn(ctx, "session restore failed", "error", err)
		return s, nil
	}
	if token != "" {
		s.token, s.userName = token, name
		log.Info(ctx, "session restored", "user", name)
	}
	return s, nil
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Session) UserName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userName
}

// Token returns the bearer token, or "" when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *Session) stateLocked() State {
	return State{IsAuthenticated: s.token != "", UserName: s.userName}
}

// Subscribe registers fn to be called with the new state after every login
// or logout. Callbacks run on the goroutine that changed the state.
func (s *Session) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Session) set(token, userName string) {
	s.mu.Lock()
	s.token, s.userName = token, userName
	st := s.stateLocked()
	subs := append([]func(State){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
}

// LoginUser submits the credentials and, on success, marks the session
// authenticated and persists it. A rejected login returns the submitter's
// error and leaves the state untouched. A persistence failure is logged
// only: the in-memory session stays authenticated for this run.
func (s *Session) LoginUser(ctx context.Context, email, password string) error {
	token, err := s.auth.Submit(ctx, email, password)
	if err != nil {
		return err
	}

	name := s.displayName(ctx, token, email)
	s.set(token, name)
	s.log.Info(ctx, "logged in", "user", name)

	if err := s.store.Save(ctx, token, name); err != nil {
		s.log.Error(ctx, "session persist failed", "error", err)
	}
	return nil
}

// displayName asks the API who owns token, falling back to the local part
// of the email.
func (s *Session) displayName(ctx context.Context, token, email string) string {
	name, err := s.auth.Profile(ctx, token)
	if err != nil {
		s.log.Warn(ctx, "profile lookup failed", "error", err)
	}
	if name != "" {
		return name
	}
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}

// LogoutUser clears the persisted session, then the in-memory one. It
// always succeeds from the caller's point of view.
func (s *Session) LogoutUser(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Error(ctx, "session clear failed", "error", err)
	}
	s.set("", "")
	s.log.Info(ctx, "logged out")
}
