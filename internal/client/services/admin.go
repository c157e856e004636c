package services

import (
	"context"

	"github.com/Folldix/GameStore-Frontend/internal/client/api"
	"github.com/Folldix/GameStore-Frontend/internal/client/models"
	"github.com/Folldix/GameStore-Frontend/internal/common"
)

// AdminGate answers whether the current session may use the admin console.
// *session.Store satisfies it.
type AdminGate interface {
	IsAdmin() bool
}

// AdminService covers the admin console: user management and game CRUD.
// Every operation is gated locally on the admin role before any request is
// sent; the backend enforces the same rule authoritatively.
type AdminService interface {
	Users(ctx context.Context) ([]models.User, error)
	SetUserStatus(ctx context.Context, userID string, status models.AccountStatus) (*models.User, error)
	AddGame(ctx context.Context, game *models.Game) (*models.Game, error)
	UpdateGame(ctx context.Context, id string, game *models.Game) (*models.Game, error)
	RemoveGame(ctx context.Context, id string) error
}

type adminClient interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserStatus(ctx context.Context, userID string, status models.AccountStatus) (*models.User, error)
	CreateGame(ctx context.Context, game *models.Game) (*models.Game, error)
	UpdateGame(ctx context.Context, id string, game *models.Game) (*models.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type adminService struct {
	client adminClient
	gate   AdminGate
}

// NewAdminService constructs an AdminService bound to the API client and
// the session's admin gate.
func NewAdminService(client adminClient, gate AdminGate) AdminService {
	return &adminService{client: client, gate: gate}
}

func (s *adminService) Users(ctx context.Context) ([]models.User, error) {
	if !s.gate.IsAdmin() {
		return nil, common.ErrUnauthorized
	}
	return s.client.ListUsers(ctx)
}

func (s *adminService) SetUserStatus(ctx context.Context, userID string, status models.AccountStatus) (*models.User, error) {
	if !s.gate.IsAdmin() {
		return nil, common.ErrUnauthorized
	}
	return s.client.UpdateUserStatus(ctx, userID, status)
}

func (s *adminService) AddGame(ctx context.Context, game *models.Game) (*models.Game, error) {
	if !s.gate.IsAdmin() {
		return nil, common.ErrUnauthorized
	}
	return s.client.CreateGame(ctx, game)
}

func (s *adminService) UpdateGame(ctx context.Context, id string, game *models.Game) (*models.Game, error) {
	if !s.gate.IsAdmin() {
		return nil, common.ErrUnauthorized
	}
	return s.client.UpdateGame(ctx, id, game)
}

func (s *adminService) RemoveGame(ctx context.Context, id string) error {
	if !s.gate.IsAdmin() {
		return common.ErrUnauthorized
	}
	return s.client.DeleteGame(ctx, id)
}

var _ adminClient = (api.Client)(nil)
