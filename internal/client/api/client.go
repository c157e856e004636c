// Package api defines the service boundary of the GameStore client.
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     auth, catalog, library, review, order, wishlist and admin endpoints of
//     the backend REST API.
//  2. A concrete JSON/HTTP implementation (see HTTPClient) that attaches the
//     current bearer token to outbound requests and maps non-2xx responses
//     to *Error values carrying the server's verbatim message.
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable for transport failures, and the sentinels
// in internal/common for 401/404 responses.
package api

import (
	"context"

	"github.com/Folldix/GameStore-Frontend/internal/client/models"
)

// TokenSource supplies the current credential token for outbound requests.
// An empty string means "no session"; the request is sent unauthenticated.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// AuthResponse is the payload of a successful login or register call.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// CheckoutItem references one game being purchased.
type CheckoutItem struct {
	GameID string `json:"gameId"`
}

// CheckoutRequest is the body of the checkout call.
type CheckoutRequest struct {
	Items         []CheckoutItem       `json:"items"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod,omitempty"`
}

// HelpfulResult carries the server's authoritative like state for a review
// after a mark-helpful toggle.
type HelpfulResult struct {
	HelpfulCount int  `json:"helpfulCount"`
	IsLiked      bool `json:"isLiked"`
}

// Client is the typed request/response contract against the backend.
// All operations accept a context and must honor cancellation/timeouts.
type Client interface {
	Close() error

	// Auth.
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Register(ctx context.Context, username, email, password string) (*AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)

	// Catalog.
	ListGames(ctx context.Context, genre string) ([]models.Game, error)
	GetGame(ctx context.Context, id string) (*models.Game, error)
	CreateGame(ctx context.Context, game *models.Game) (*models.Game, error)
	UpdateGame(ctx context.Context, id string, game *models.Game) (*models.Game, error)
	DeleteGame(ctx context.Context, id string) error

	// Library.
	GetLibrary(ctx context.Context) (*models.Library, error)
	ToggleInstall(ctx context.Context, gameID string) (*models.LibraryGame, error)

	// Reviews.
	GameReviews(ctx context.Context, gameID string) ([]models.Review, error)
	CreateReview(ctx context.Context, gameID string, rating float64, comment string) (*models.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
	MarkHelpful(ctx context.Context, reviewID string) (*HelpfulResult, error)

	// Orders.
	MyOrders(ctx context.Context) ([]models.Order, error)
	Checkout(ctx context.Context, req *CheckoutRequest) (*models.Order, error)

	// Wishlist.
	Wishlist(ctx context.Context) ([]models.WishlistItem, error)
	AddToWishlist(ctx context.Context, gameID string) (*models.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, gameID string) error

	// Account / admin console.
	AddFunds(ctx context.Context, amount float64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserStatus(ctx context.Context, userID string, status models.AccountStatus) (*models.User, error)
}
