package reviews

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Folldix/GameStore-Frontend/internal/client/api"
	"github.com/Folldix/GameStore-Frontend/internal/client/models"
	"github.com/Folldix/GameStore-Frontend/internal/common"
	"github.com/Folldix/GameStore-Frontend/internal/logging"
)

// ---- fakes ----

type fakeClient struct {
	Result *api.HelpfulResult
	Err    error

	Calls  int
	LastID string
}

func (f *fakeClient) MarkHelpful(ctx context.Context, reviewID string) (*api.HelpfulResult, error) {
	f.Calls++
	f.LastID = reviewID
	return f.Result, f.Err
}

type fakeAuth struct{ authenticated bool }

func (f *fakeAuth) IsAuthenticated() bool { return f.authenticated }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func seeded(t *testing.T, client *fakeClient, auth *fakeAuth) *Tracker {
	t.Helper()
	tr := NewTracker(client, auth, testLogger())
	tr.Seed([]models.Review{
		{ID: "r1", IsLiked: false, HelpfulCount: 3},
		{ID: "r2", IsLiked: true, HelpfulCount: 10},
	})
	return tr
}

// ---- tests ----

func TestToggled_Transition(t *testing.T) {
	s := likeState{liked: false, count: 3}

	s = toggled(s)
	assert.Equal(t, likeState{liked: true, count: 4}, s)

	s = toggled(s)
	assert.Equal(t, likeState{liked: false, count: 3}, s)
}

func TestTracker_Seed(t *testing.T) {
	tr := seeded(t, &fakeClient{}, &fakeAuth{})

	assert.False(t, tr.IsLiked("r1"))
	assert.Equal(t, 3, tr.HelpfulCount("r1"))
	assert.True(t, tr.IsLiked("r2"))
	assert.Equal(t, 10, tr.HelpfulCount("r2"))
}

func TestTracker_Toggle_SuccessUsesAuthoritativeValues(t *testing.T) {
	client := &fakeClient{Result: &api.HelpfulResult{IsLiked: true, HelpfulCount: 4}}
	tr := seeded(t, client, &fakeAuth{authenticated: true})

	require.NoError(t, tr.Toggle(context.Background(), "r1"))

	assert.Equal(t, "r1", client.LastID)
	assert.True(t, tr.IsLiked("r1"))
	assert.Equal(t, 4, tr.HelpfulCount("r1"))
}

func TestTracker_Toggle_RaceReconciledToServer(t *testing.T) {
	// The optimistic guess says 4; another client liked meanwhile, so the
	// server answers 5. The authoritative value wins.
	client := &fakeClient{Result: &api.HelpfulResult{IsLiked: true, HelpfulCount: 5}}
	tr := seeded(t, client, &fakeAuth{authenticated: true})

	require.NoError(t, tr.Toggle(context.Background(), "r1"))

	assert.Equal(t, 5, tr.HelpfulCount("r1"))
}

func TestTracker_Toggle_FailureRollsBack(t *testing.T) {
	client := &fakeClient{Err: errors.New("backend down")}
	tr := seeded(t, client, &fakeAuth{authenticated: true})

	err := tr.Toggle(context.Background(), "r1")
	require.Error(t, err)

	assert.False(t, tr.IsLiked("r1"))
	assert.Equal(t, 3, tr.HelpfulCount("r1"))
	assert.Equal(t, 1, client.Calls)
}

func TestTracker_Toggle_UnlikeDecrements(t *testing.T) {
	client := &fakeClient{Result: &api.HelpfulResult{IsLiked: false, HelpfulCount: 9}}
	tr := seeded(t, client, &fakeAuth{authenticated: true})

	require.NoError(t, tr.Toggle(context.Background(), "r2"))

	assert.False(t, tr.IsLiked("r2"))
	assert.Equal(t, 9, tr.HelpfulCount("r2"))
}

func TestTracker_Toggle_RejectedWhenUnauthenticated(t *testing.T) {
	client := &fakeClient{}
	tr := seeded(t, client, &fakeAuth{authenticated: false})

	err := tr.Toggle(context.Background(), "r1")
	require.ErrorIs(t, err, common.ErrUnauthorized)

	assert.Zero(t, client.Calls)
	assert.False(t, tr.IsLiked("r1"))
	assert.Equal(t, 3, tr.HelpfulCount("r1"))
}

func TestTracker_ReseedOverwritesEverything(t *testing.T) {
	client := &fakeClient{Result: &api.HelpfulResult{IsLiked: true, HelpfulCount: 4}}
	tr := seeded(t, client, &fakeAuth{authenticated: true})

	require.NoError(t, tr.Toggle(context.Background(), "r1"))
	require.Equal(t, 4, tr.HelpfulCount("r1"))

	tr.Seed([]models.Review{
		{ID: "r1", IsLiked: false, HelpfulCount: 7},
		{ID: "r3", IsLiked: true, HelpfulCount: 1},
	})

	assert.False(t, tr.IsLiked("r1"))
	assert.Equal(t, 7, tr.HelpfulCount("r1"))
	assert.True(t, tr.IsLiked("r3"))
	// r2 is gone from the list and from the tracker.
	assert.False(t, tr.IsLiked("r2"))
	assert.Zero(t, tr.HelpfulCount("r2"))
}

func TestTracker_Toggle_UnseededReviewStartsFromZero(t *testing.T) {
	client := &fakeClient{Result: &api.HelpfulResult{IsLiked: true, HelpfulCount: 1}}
	tr := NewTracker(client, &fakeAuth{authenticated: true}, testLogger())

	require.NoError(t, tr.Toggle(context.Background(), "rX"))

	assert.True(t, tr.IsLiked("rX"))
	assert.Equal(t, 1, tr.HelpfulCount("rX"))
}
