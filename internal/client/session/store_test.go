package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Folldix/GameStore-Frontend/internal/client/api"
	"github.com/Folldix/GameStore-Frontend/internal/client/models"
	"github.com/Folldix/GameStore-Frontend/internal/logging"
)

// ---- fakes ----

// fakeClient implements Client for session store tests.
type fakeClient struct {
	LoginResp *api.AuthResponse
	LoginErr  error

	RegisterResp *api.AuthResponse
	RegisterErr  error

	MeResp *models.User
	MeErr  error

	LastLoginEmail    string
	LastLoginPassword string
	LastRegisterName  string
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*api.AuthResponse, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, username, email, password string) (*api.AuthResponse, error) {
	f.LastRegisterName = username
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	return f.MeResp, f.MeErr
}

// memCreds is an in-memory credentials.Repository.
type memCreds struct {
	token string
	user  []byte

	SaveErr  error
	ClearErr error

	clears int
}

func (m *memCreds) Save(ctx context.Context, token string, user []byte) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.token = token
	m.user = append([]byte(nil), user...)
	return nil
}

func (m *memCreds) Load(ctx context.Context) (string, []byte, error) {
	return m.token, m.user, nil
}

func (m *memCreds) Clear(ctx context.Context) error {
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.clears++
	m.token = ""
	m.user = nil
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestStore(t *testing.T, client *fakeClient, creds *memCreds) *Store {
	t.Helper()
	return NewStore(client, creds, testLogger())
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

// ---- tests ----

func TestStore_Init_RestoresValidSession(t *testing.T) {
	creds := &memCreds{
		token: makeToken(t, time.Now().Add(time.Hour)),
		user:  mustJSON(t, models.User{ID: "u1", Username: "neo", Role: models.RoleAdmin}),
	}
	s := newTestStore(t, &fakeClient{}, creds)

	var notified []bool
	s.OnAuthChange(func(a bool) { notified = append(notified, a) })

	require.NoError(t, s.Init(context.Background()))

	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsAdmin())
	require.NotNil(t, s.CurrentUser())
	assert.Equal(t, "neo", s.CurrentUser().Username)
	assert.Equal(t, []bool{true}, notified)
}

func TestStore_Init_ExpiredTokenClearsCredentials(t *testing.T) {
	creds := &memCreds{
		token: makeToken(t, time.Now().Add(-time.Hour)),
		user:  mustJSON(t, models.User{ID: "u1"}),
	}
	s := newTestStore(t, &fakeClient{}, creds)

	var notified []bool
	s.OnAuthChange(func(a bool) { notified = append(notified, a) })

	require.NoError(t, s.Init(context.Background()))

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.CurrentUser())
	assert.Equal(t, 1, creds.clears)
	assert.Equal(t, []bool{false}, notified)
}

func TestStore_Init_CorruptUserFallsBackToLoggedOut(t *testing.T) {
	creds := &memCreds{
		token: makeToken(t, time.Now().Add(time.Hour)),
		user:  []byte(`{"id": trailing garbage`),
	}
	s := newTestStore(t, &fakeClient{}, creds)

	require.NoError(t, s.Init(context.Background()))

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.CurrentUser())
	assert.Equal(t, 1, creds.clears)
}

func TestStore_Init_RunsOnce(t *testing.T) {
	creds := &memCreds{}
	s := newTestStore(t, &fakeClient{}, creds)

	var calls int
	s.OnAuthChange(func(bool) { calls++ })

	require.NoError(t, s.Init(context.Background()))
	require.NoError(t, s.Init(context.Background()))

	assert.Equal(t, 1, calls)
}

func TestStore_Login_Success(t *testing.T) {
	token := makeToken(t, time.Now().Add(time.Hour))
	client := &fakeClient{
		LoginResp: &api.AuthResponse{
			Token: token,
			User:  models.User{ID: "u1", Username: "neo", Role: models.RoleUser},
		},
	}
	creds := &memCreds{}
	s := newTestStore(t, client, creds)

	var notified []bool
	s.OnAuthChange(func(a bool) { notified = append(notified, a) })

	require.NoError(t, s.Login(context.Background(), "neo@io", "pass"))

	assert.Equal(t, "neo@io", client.LastLoginEmail)
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	assert.Equal(t, token, s.Token())
	assert.Equal(t, token, creds.token)
	assert.JSONEq(t, string(mustJSON(t, client.LoginResp.User)), string(creds.user))
	assert.Equal(t, []bool{true}, notified)
}

func TestStore_Login_FailureLeavesStateUntouched(t *testing.T) {
	client := &fakeClient{LoginErr: api.NewError(401, "Invalid credentials")}
	creds := &memCreds{}
	s := newTestStore(t, client, creds)

	var notified []bool
	s.OnAuthChange(func(a bool) { notified = append(notified, a) })

	err := s.Login(context.Background(), "neo@io", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, creds.token)
	assert.Empty(t, notified)
}

func TestStore_Register_Success(t *testing.T) {
	client := &fakeClient{
		RegisterResp: &api.AuthResponse{
			Token: makeToken(t, time.Now().Add(time.Hour)),
			User:  models.User{ID: "u2", Username: "trinity"},
		},
	}
	s := newTestStore(t, client, &memCreds{})

	require.NoError(t, s.Register(context.Background(), "trinity", "t@io", "pass"))

	assert.Equal(t, "trinity", client.LastRegisterName)
	assert.True(t, s.IsAuthenticated())
}

func TestStore_Logout(t *testing.T) {
	creds := &memCreds{
		token: makeToken(t, time.Now().Add(time.Hour)),
		user:  mustJSON(t, models.User{ID: "u1"}),
	}
	s := newTestStore(t, &fakeClient{}, creds)
	require.NoError(t, s.Init(context.Background()))
	require.True(t, s.IsAuthenticated())

	var notified []bool
	s.OnAuthChange(func(a bool) { notified = append(notified, a) })

	require.NoError(t, s.Logout(context.Background()))

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.CurrentUser())
	assert.Empty(t, creds.token)
	assert.Equal(t, []bool{false}, notified)
}

func TestStore_IsAuthenticated_LapsesWithTime(t *testing.T) {
	creds := &memCreds{
		token: makeToken(t, time.Now().Add(time.Hour)),
		user:  mustJSON(t, models.User{ID: "u1"}),
	}
	s := newTestStore(t, &fakeClient{}, creds)
	require.NoError(t, s.Init(context.Background()))
	require.True(t, s.IsAuthenticated())

	// Move the clock past the expiry; no network call, no mutation.
	s.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	assert.False(t, s.IsAuthenticated())
}

func TestStore_RefreshProfile(t *testing.T) {
	creds := &memCreds{
		token: makeToken(t, time.Now().Add(time.Hour)),
		user:  mustJSON(t, models.User{ID: "u1", Balance: 0}),
	}
	client := &fakeClient{MeResp: &models.User{ID: "u1", Balance: 42.50}}
	s := newTestStore(t, client, creds)
	require.NoError(t, s.Init(context.Background()))

	user, err := s.RefreshProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42.50, user.Balance)
	assert.Equal(t, 42.50, s.CurrentUser().Balance)
	assert.JSONEq(t, string(mustJSON(t, user)), string(creds.user))
}

func TestStore_RefreshProfile_Error(t *testing.T) {
	client := &fakeClient{MeErr: errors.New("boom")}
	s := newTestStore(t, client, &memCreds{})

	_, err := s.RefreshProfile(context.Background())
	require.Error(t, err)
}
