// Package services contains application services composed over the API
// boundary: catalog browsing, orders, wishlist, reviews, and the admin
// console operations.
package services

import (
	"context"

	"github.com/Folldix/GameStore-Frontend/internal/client/api"
	"github.com/Folldix/GameStore-Frontend/internal/client/models"
)

// CatalogService exposes store-front catalog reads. Game CRUD lives on
// AdminService because the backend rejects it for non-admin tokens anyway.
type CatalogService interface {
	List(ctx context.Context, genre string) ([]models.Game, error)
	Get(ctx context.Context, id string) (*models.Game, error)
}

type catalogClient interface {
	ListGames(ctx context.Context, genre string) ([]models.Game, error)
	GetGame(ctx context.Context, id string) (*models.Game, error)
}

type catalogService struct {
	client catalogClient
}

// NewCatalogService constructs a CatalogService bound to the API client.
func NewCatalogService(client catalogClient) CatalogService {
	return &catalogService{client: client}
}

func (s *catalogService) List(ctx context.Context, genre string) ([]models.Game, error) {
	return s.client.ListGames(ctx, genre)
}

func (s *catalogService) Get(ctx context.Context, id string) (*models.Game, error) {
	return s.client.GetGame(ctx, id)
}

var _ catalogClient = (api.Client)(nil)
