package services

import (
	"context"

	"github.com/Folldix/GameStore-Frontend/internal/client/api"
	"github.com/Folldix/GameStore-Frontend/internal/client/models"
)

// WishlistService manages the user's wishlist. Ownership gating (not
// wishing for an already-owned game) is the caller's concern via the
// library store.
type WishlistService interface {
	List(ctx context.Context) ([]models.WishlistItem, error)
	Add(ctx context.Context, gameID string) (*models.WishlistItem, error)
	Remove(ctx context.Context, gameID string) error
}

type wishlistClient interface {
	Wishlist(ctx context.Context) ([]models.WishlistItem, error)
	AddToWishlist(ctx context.Context, gameID string) (*models.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, gameID string) error
}

type wishlistService struct {
	client wishlistClient
}

// NewWishlistService constructs a WishlistService bound to the API client.
func NewWishlistService(client wishlistClient) WishlistService {
	return &wishlistService{client: client}
}

func (s *wishlistService) List(ctx context.Context) ([]models.WishlistItem, error) {
	return s.client.Wishlist(ctx)
}

func (s *wishlistService) Add(ctx context.Context, gameID string) (*models.WishlistItem, error) {
	return s.client.AddToWishlist(ctx, gameID)
}

func (s *wishlistService) Remove(ctx context.Context, gameID string) error {
	return s.client.RemoveFromWishlist(ctx, gameID)
}

var _ wishlistClient = (api.Client)(nil)
