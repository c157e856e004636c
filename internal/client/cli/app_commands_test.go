package cli

import (
	"bufio"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Folldix/GameStore-Frontend/internal/client/cart"
	"github.com/Folldix/GameStore-Frontend/internal/client/library"
	"github.com/Folldix/GameStore-Frontend/internal/client/models"
	"github.com/Folldix/GameStore-Frontend/internal/logging"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

type fakeCatalog struct {
	games  map[string]*models.Game
	listed []models.Game
	genre  string
	err    error
}

func (f *fakeCatalog) List(ctx context.Context, genre string) ([]models.Game, error) {
	f.genre = genre
	return f.listed, f.err
}

func (f *fakeCatalog) Get(ctx context.Context, id string) (*models.Game, error) {
	if f.err != nil {
		return nil, f.err
	}
	g, ok := f.games[id]
	if !ok {
		return nil, errors.New("no such game")
	}
	return g, nil
}

type fakeLibClient struct {
	library *models.Library
}

func (f *fakeLibClient) GetLibrary(ctx context.Context) (*models.Library, error) {
	return f.library, nil
}

func (f *fakeLibClient) ToggleInstall(ctx context.Context, gameID string) (*models.LibraryGame, error) {
	return &models.LibraryGame{GameID: gameID, IsInstalled: true}, nil
}

type fakeAuth struct {
	authed bool
	subs   []func(bool)
}

func (f *fakeAuth) IsAuthenticated() bool      { return f.authed }
func (f *fakeAuth) OnAuthChange(fn func(bool)) { f.subs = append(f.subs, fn) }

func (f *fakeAuth) login() {
	f.authed = true
	for _, fn := range f.subs {
		fn(true)
	}
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.Default())
}

// ownedLibrary builds a library store already holding the given game ids.
func ownedLibrary(t *testing.T, ids ...string) *library.Store {
	t.Helper()
	lib := &models.Library{ID: "lib1", UserID: "u1"}
	for _, id := range ids {
		lib.Games = append(lib.Games, models.LibraryGame{GameID: id, Game: models.Game{ID: id}})
	}
	auth := &fakeAuth{}
	store := library.NewStore(&fakeLibClient{library: lib}, auth, testLogger())
	auth.login()
	return store
}

// ------------ cart commands ------------

func TestAddToCart_OwnedGameRejected(t *testing.T) {
	catalog := &fakeCatalog{games: map[string]*models.Game{
		"g1": {ID: "g1", Title: "Owned One", Price: 10},
	}}
	app := &App{
		catalog: catalog,
		cart:    cart.NewStore(),
		library: ownedLibrary(t, "g1"),
	}

	silencePrintln(t)
	require.NoError(t, app.AddToCart(context.Background(), []string{"g1"}))
	require.Zero(t, app.cart.Count())
}

func TestAddToCart_AddsAndDeduplicates(t *testing.T) {
	catalog := &fakeCatalog{games: map[string]*models.Game{
		"g2": {ID: "g2", Title: "New One", Price: 20},
	}}
	app := &App{
		catalog: catalog,
		cart:    cart.NewStore(),
		library: ownedLibrary(t),
	}

	silencePrintln(t)
	require.NoError(t, app.AddToCart(context.Background(), []string{"g2"}))
	require.NoError(t, app.AddToCart(context.Background(), []string{"g2"}))
	require.Equal(t, 1, app.cart.Count())
	require.True(t, app.cart.Contains("g2"))
}

func TestAddToCart_CatalogErrorPropagates(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("backend down")}
	app := &App{
		catalog: catalog,
		cart:    cart.NewStore(),
		library: ownedLibrary(t),
	}

	require.Error(t, app.AddToCart(context.Background(), []string{"g3"}))
	require.Zero(t, app.cart.Count())
}

func TestRemoveFromCart(t *testing.T) {
	app := &App{cart: cart.NewStore()}
	app.cart.Add(models.Game{ID: "g1", Price: 5})

	require.NoError(t, app.RemoveFromCart([]string{"g1"}))
	require.Zero(t, app.cart.Count())
}

// ------------ catalog commands ------------

func TestBrowse_PassesGenre(t *testing.T) {
	catalog := &fakeCatalog{listed: []models.Game{{ID: "g1", Title: "A", Price: 1}}}
	app := &App{
		catalog: catalog,
		cart:    cart.NewStore(),
		library: ownedLibrary(t),
	}

	silencePrintln(t)
	require.NoError(t, app.Browse(context.Background(), []string{"action", "rpg"}))
	require.Equal(t, "action rpg", catalog.genre)
}

func TestShowGame_Usage(t *testing.T) {
	app := &App{}
	silencePrintln(t)
	require.NoError(t, app.ShowGame(context.Background(), nil))
}

// ------------ library commands ------------

func TestInstall_UnownedGameRejectedLocally(t *testing.T) {
	app := &App{library: ownedLibrary(t, "g1")}

	silencePrintln(t)
	require.NoError(t, app.Install(context.Background(), []string{"other"}))
}

func TestInstall_OwnedGameToggles(t *testing.T) {
	app := &App{library: ownedLibrary(t, "g1")}

	silencePrintln(t)
	require.NoError(t, app.Install(context.Background(), []string{"g1"}))
}

// ------------ prompt plumbing ------------

func TestPromptGame_KeepsDefaultsOnEmptyAnswers(t *testing.T) {
	app := &App{reader: readerFromLines("", "", "rpg", "", "", "", "", "", "")}

	base := &models.Game{Title: "Old", Genre: "action", Price: 15}
	got, err := app.promptGame(base)
	require.NoError(t, err)
	require.Equal(t, "Old", got.Title)
	require.Equal(t, "rpg", got.Genre)
	require.Equal(t, 15.0, got.Price)
}

func TestPromptGame_InvalidPrice(t *testing.T) {
	app := &App{reader: readerFromLines("T", "D", "G", "Dev", "Pub", "2024-01-01", "PEGI 12", "cheap")}

	_, err := app.promptGame(&models.Game{})
	require.Error(t, err)
}
