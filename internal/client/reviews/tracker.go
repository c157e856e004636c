// Package reviews tracks the client-side "mark helpful" state of a
// displayed review list: an optimistic local toggle, reconciled against the
// server's authoritative response, rolled back on failure.
package reviews

import (
	"context"
	"sync"

	"github.com/Folldix/GameStore-Frontend/internal/client/api"
	"github.com/Folldix/GameStore-Frontend/internal/client/models"
	"github.com/Folldix/GameStore-Frontend/internal/common"
	"github.com/Folldix/GameStore-Frontend/internal/logging"
)

// Client is the slice of the API boundary the tracker talks to.
type Client interface {
	MarkHelpful(ctx context.Context, reviewID string) (*api.HelpfulResult, error)
}

// AuthSource gates the toggle action. *session.Store satisfies it.
type AuthSource interface {
	IsAuthenticated() bool
}

// likeState is the tracked (liked, helpful-count) pair of one review.
// The two fields move together: a count change is always paired with the
// matching liked transition.
type likeState struct {
	liked bool
	count int
}

// toggled is the pure transition applied optimistically and replayed in
// tests: unliked->liked increments the count, liked->unliked decrements it.
func toggled(s likeState) likeState {
	if s.liked {
		return likeState{liked: false, count: s.count - 1}
	}
	return likeState{liked: true, count: s.count + 1}
}

// Tracker holds the working copy of like state for one review list.
type Tracker struct {
	client Client
	auth   AuthSource
	log    logging.Logger

	mu     sync.Mutex
	states map[string]likeState
}

func NewTracker(client Client, auth AuthSource, log logging.Logger) *Tracker {
	return &Tracker{
		client: client,
		auth:   auth,
		log:    log.With("store", "reviews"),
		states: make(map[string]likeState),
	}
}

// Seed rebuilds the tracked state from the list's own isLiked/helpfulCount
// fields, discarding whatever was tracked before. Call it every time a
// fresh review list is loaded.
func (t *Tracker) Seed(reviews []models.Review) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.states = make(map[string]likeState, len(reviews))
	for _, r := range reviews {
		t.states[r.ID] = likeState{liked: r.IsLiked, count: r.HelpfulCount}
	}
}

// IsLiked reports whether the current user has marked the review helpful.
func (t *Tracker) IsLiked(reviewID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[reviewID].liked
}

// HelpfulCount returns the tracked helpful count for the review.
func (t *Tracker) HelpfulCount(reviewID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[reviewID].count
}

// Toggle flips the helpful mark for a review.
//
// The action requires an authenticated session; otherwise it returns
// common.ErrUnauthorized without touching state or the network. The local
// transition is applied before the request resolves. On success the
// server's authoritative values overwrite the optimistic guess; on failure
// the pre-toggle state captured beforehand is restored and the error is
// returned. There is no retry.
func (t *Tracker) Toggle(ctx context.Context, reviewID string) error {
	if !t.auth.IsAuthenticated() {
		return common.ErrUnauthorized
	}

	t.mu.Lock()
	pre := t.states[reviewID]
	t.states[reviewID] = toggled(pre)
	t.mu.Unlock()

	result, err := t.client.MarkHelpful(ctx, reviewID)

	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.states[reviewID] = pre
		t.log.Warn(ctx, "mark helpful failed, rolled back", "review", reviewID, "error", err)
		return err
	}
	t.states[reviewID] = likeState{liked: result.IsLiked, count: result.HelpfulCount}
	return nil
}
