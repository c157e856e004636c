package services

import (
	"context"

	"github.com/Folldix/GameStore-Frontend/internal/client/api"
	"github.com/Folldix/GameStore-Frontend/internal/client/cart"
	"github.com/Folldix/GameStore-Frontend/internal/client/models"
	"github.com/Folldix/GameStore-Frontend/internal/common"
)

// OrderService turns the cart into purchases and reads order history.
type OrderService interface {
	// Checkout submits the current cart. On success the cart is cleared;
	// on failure it is left as-is so the user can retry.
	Checkout(ctx context.Context, method models.PaymentMethod) (*models.Order, error)
	History(ctx context.Context) ([]models.Order, error)
}

type orderClient interface {
	Checkout(ctx context.Context, req *api.CheckoutRequest) (*models.Order, error)
	MyOrders(ctx context.Context) ([]models.Order, error)
}

type orderService struct {
	client orderClient
	cart   *cart.Store
}

// NewOrderService constructs an OrderService over the API client and the
// cart store.
func NewOrderService(client orderClient, cart *cart.Store) OrderService {
	return &orderService{client: client, cart: cart}
}

func (s *orderService) Checkout(ctx context.Context, method models.PaymentMethod) (*models.Order, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, common.ErrEmptyCart
	}

	req := &api.CheckoutRequest{PaymentMethod: method}
	for _, item := range items {
		req.Items = append(req.Items, api.CheckoutItem{GameID: item.Game.ID})
	}

	order, err := s.client.Checkout(ctx, req)
	if err != nil {
		return nil, err
	}

	s.cart.Clear()
	return order, nil
}

func (s *orderService) History(ctx context.Context) ([]models.Order, error) {
	return s.client.MyOrders(ctx)
}

var _ orderClient = (api.Client)(nil)
