// Package cli implements the interactive GameStore shell: a REPL over the
// session, cart, library and review stores plus the application services.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/Folldix/GameStore-Frontend/internal/client/api"
	"github.com/Folldix/GameStore-Frontend/internal/client/cart"
	"github.com/Folldix/GameStore-Frontend/internal/client/config"
	"github.com/Folldix/GameStore-Frontend/internal/client/library"
	"github.com/Folldix/GameStore-Frontend/internal/client/repositories/credentials"
	"github.com/Folldix/GameStore-Frontend/internal/client/reviews"
	"github.com/Folldix/GameStore-Frontend/internal/client/services"
	"github.com/Folldix/GameStore-Frontend/internal/client/session"
	"github.com/Folldix/GameStore-Frontend/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the stores and services together and drives the REPL.
type App struct {
	config *config.Config

	session *session.Store
	cart    *cart.Store
	library *library.Store
	tracker *reviews.Tracker

	catalog  services.CatalogService
	orders   services.OrderService
	wishlist services.WishlistService
	reviews  services.ReviewService
	admin    services.AdminService

	apiClient *api.HTTPClient
	reader    *bufio.Reader
}

// NewApp composes the application: credentials database, HTTP API client,
// the three stores (library subscribed to the session), and the services.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewSlogLogger(slog.Default())

	credsRepo, _, err := credentials.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	// The token source closes over the session store created just below, so
	// every request picks up the latest token.
	var sess *session.Store
	apiClient := api.NewHTTPClient(c.APIBaseURL,
		api.WithTimeout(c.RequestTimeout),
		api.WithTokenSource(api.TokenFunc(func() string {
			if sess == nil {
				return ""
			}
			return sess.Token()
		})),
	)

	sess = session.NewStore(apiClient, credsRepo, logger)
	cartStore := cart.NewStore()
	libStore := library.NewStore(apiClient, sess, logger)
	tracker := reviews.NewTracker(apiClient, sess, logger)

	return &App{
		config:    c,
		session:   sess,
		cart:      cartStore,
		library:   libStore,
		tracker:   tracker,
		catalog:   services.NewCatalogService(apiClient),
		orders:    services.NewOrderService(apiClient, cartStore),
		wishlist:  services.NewWishlistService(apiClient),
		reviews:   services.NewReviewService(apiClient),
		admin:     services.NewAdminService(apiClient, sess),
		apiClient: apiClient,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run rehydrates the session (triggering the library's initial load through
// the auth subscription) and enters the REPL until EOF or exit.
func (a *App) Run(ctx context.Context) error {
	defer func() { _ = a.apiClient.Close() }()

	if err := a.session.Init(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}

func (a *App) getStatus() string {
	if user := a.session.CurrentUser(); user != nil && a.session.IsAuthenticated() {
		if a.session.IsAdmin() {
			return user.Username + " (admin)"
		}
		return user.Username
	}
	return "guest"
}
