// Package session owns the authenticated-user identity of the GameStore
// client: login/register/logout, rehydration of a persisted session, and
// the derived IsAuthenticated/IsAdmin checks other stores gate on.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Folldix/GameStore-Frontend/internal/client/api"
	"github.com/Folldix/GameStore-Frontend/internal/client/models"
	"github.com/Folldix/GameStore-Frontend/internal/client/repositories/credentials"
	"github.com/Folldix/GameStore-Frontend/internal/logging"
)

// Client is the slice of the API boundary the session store talks to.
// *api.HTTPClient satisfies it.
type Client interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, username, email, password string) (*api.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
}

// Store holds the current session. It implements api.TokenSource so the
// HTTP client always sends the latest token.
//
// Authentication state is derived, not cached: IsAuthenticated re-decodes
// the token's expiry on every call, so a session lapses on its own once the
// expiry passes, without any network round-trip.
type Store struct {
	client Client
	creds  credentials.Repository
	log    logging.Logger

	// now is a test seam for the expiry clock.
	now func() time.Time

	mu          sync.RWMutex
	token       string
	user        *models.User
	initialized bool
	subscribers []func(authenticated bool)
}

func NewStore(client Client, creds credentials.Repository, log logging.Logger) *Store {
	return &Store{
		client: client,
		creds:  creds,
		log:    log.With("store", "session"),
		now:    time.Now,
	}
}

// OnAuthChange registers fn to be called after every explicit auth
// transition: Init, successful login/register, and logout. Callbacks run
// synchronously on the goroutine that triggered the transition and must not
// call back into mutating Store methods.
func (s *Store) OnAuthChange(fn func(authenticated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Init rehydrates the session from persisted credentials. It runs its logic
// exactly once; later calls are no-ops.
//
// A valid token with a parseable user restores the session. A valid token
// with a corrupt user payload, or an absent/expired token, degrades to the
// logged-out state and purges whatever was persisted. Corrupt state is not
// surfaced as an error, only logged.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.initialized = true

	token, userData, err := s.creds.Load(ctx)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	authenticated := false
	if IsTokenValid(token, s.now()) {
		var user models.User
		if len(userData) > 0 && json.Unmarshal(userData, &user) == nil {
			s.token = token
			s.user = &user
			authenticated = true
		} else {
			s.log.Warn(ctx, "persisted user is corrupt, clearing session")
			if err := s.creds.Clear(ctx); err != nil {
				s.log.Error(ctx, "clearing credentials", "error", err)
			}
		}
	} else if token != "" {
		s.log.Debug(ctx, "persisted token expired, clearing session")
		if err := s.creds.Clear(ctx); err != nil {
			s.log.Error(ctx, "clearing credentials", "error", err)
		}
	}
	s.mu.Unlock()

	s.notify(authenticated)
	return nil
}

// Login authenticates against the backend. On success the credential pair
// is persisted and the session switches to the new identity; on failure the
// server's message is returned and state is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.establish(ctx, resp)
}

// Register creates an account and, like Login, establishes the session the
// server responds with.
func (s *Store) Register(ctx context.Context, username, email, password string) error {
	resp, err := s.client.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	return s.establish(ctx, resp)
}

func (s *Store) establish(ctx context.Context, resp *api.AuthResponse) error {
	userData, err := json.Marshal(resp.User)
	if err != nil {
		return err
	}
	if err := s.creds.Save(ctx, resp.Token, userData); err != nil {
		return err
	}

	user := resp.User
	s.mu.Lock()
	s.token = resp.Token
	s.user = &user
	s.mu.Unlock()

	s.notify(true)
	return nil
}

// Logout clears the persisted credential pair and resets the session. It is
// purely a local invalidation; no server call is required for it to take
// effect.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.creds.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	s.notify(false)
	return nil
}

// RefreshProfile re-fetches the user object from the backend and updates
// both the in-memory session and the persisted copy.
func (s *Store) RefreshProfile(ctx context.Context) (*models.User, error) {
	user, err := s.client.Me(ctx)
	if err != nil {
		return nil, err
	}

	userData, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	token := s.token
	s.user = user
	s.mu.Unlock()

	if err := s.creds.Save(ctx, token, userData); err != nil {
		return nil, err
	}
	return user, nil
}

// IsAuthenticated reports whether a token is held and its embedded expiry
// is still in the future. Recomputed on every call.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	return IsTokenValid(token, s.now())
}

// IsAdmin reports whether the session belongs to an admin account.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.IsAdmin()
}

// CurrentUser returns the session's user, or nil when logged out.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) notify(authenticated bool) {
	s.mu.RLock()
	subs := make([]func(bool), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(authenticated)
	}
}
