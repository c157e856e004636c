// Package library mirrors the server-tracked set of games the current user
// owns. The mirror reloads whenever authentication flips, clears on logout,
// and fails closed: whenever no authoritative data is held, every ownership
// query answers "not owned".
package library

import (
	"context"
	"sync"

	"github.com/Folldix/GameStore-Frontend/internal/client/models"
	"github.com/Folldix/GameStore-Frontend/internal/logging"
)

// Client is the slice of the API boundary the library store talks to.
type Client interface {
	GetLibrary(ctx context.Context) (*models.Library, error)
	ToggleInstall(ctx context.Context, gameID string) (*models.LibraryGame, error)
}

// AuthSource is the session surface the store observes. *session.Store
// satisfies it.
type AuthSource interface {
	IsAuthenticated() bool
	OnAuthChange(fn func(authenticated bool))
}

// Store caches the user's library. A generation counter guards overlapping
// reloads: each reload (and each invalidation) bumps the generation, and a
// response is only applied if no newer trigger happened while it was in
// flight. The state therefore always reflects the most recent triggering
// event, not the most recently resolved request.
type Store struct {
	client Client
	auth   AuthSource
	log    logging.Logger

	mu      sync.RWMutex
	library *models.Library
	loading bool
	gen     uint64
}

// NewStore creates the store and subscribes it to auth changes: a flip to
// authenticated triggers a reload, a flip to unauthenticated clears the
// mirror.
func NewStore(client Client, auth AuthSource, log logging.Logger) *Store {
	s := &Store{
		client: client,
		auth:   auth,
		log:    log.With("store", "library"),
	}
	auth.OnAuthChange(s.onAuthChange)
	return s
}

func (s *Store) onAuthChange(authenticated bool) {
	if !authenticated {
		s.invalidate()
		return
	}
	ctx := context.Background()
	if err := s.reload(ctx); err != nil {
		s.log.Warn(ctx, "library reload after auth change failed", "error", err)
	}
}

// Refresh forces a reload from the backend. When unauthenticated it clears
// the mirror instead. A failed fetch leaves the store empty (fail-closed)
// and is returned to the caller; there is no automatic retry.
func (s *Store) Refresh(ctx context.Context) error {
	if !s.auth.IsAuthenticated() {
		s.invalidate()
		return nil
	}
	return s.reload(ctx)
}

func (s *Store) reload(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.loading = true
	s.mu.Unlock()

	lib, err := s.client.GetLibrary(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		// A newer trigger superseded this request; drop its result.
		return nil
	}
	s.loading = false
	if err != nil {
		s.library = nil
		return err
	}
	s.library = lib
	return nil
}

func (s *Store) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.library = nil
	s.loading = false
}

// IsGameOwned reports ownership of gameID. Answers false whenever the
// mirror is unavailable, whatever the reason.
func (s *Store) IsGameOwned(gameID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.library == nil {
		return false
	}
	for _, lg := range s.library.Games {
		if lg.GameID == gameID {
			return true
		}
	}
	return false
}

// Library returns the current mirror, or nil when unavailable.
func (s *Store) Library() *models.Library {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.library
}

// IsLoading reports whether a reload is in flight.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// ToggleInstall flips the installed flag of an owned game on the server and
// then reloads the mirror. The update is a round-trip, not an optimistic
// local mutation.
func (s *Store) ToggleInstall(ctx context.Context, gameID string) error {
	if _, err := s.client.ToggleInstall(ctx, gameID); err != nil {
		return err
	}
	return s.Refresh(ctx)
}
