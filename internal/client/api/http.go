package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Folldix/GameStore-Frontend/internal/client/models"
)

// HTTPClient talks JSON over HTTP to the GameStore backend.
type HTTPClient struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
}

var _ Client = (*HTTPClient)(nil)

// Option customizes an HTTPClient.
type Option func(*HTTPClient)

// WithTokenSource attaches a bearer-token supplier. Requests carry an
// Authorization header whenever the source returns a non-empty token.
func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.httpClient.Timeout = d }
}

// NewHTTPClient creates a client rooted at baseURL (e.g.
// "http://localhost:3001/api").
func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	c := &HTTPClient{
		httpClient: &http.Client{Timeout: 30 * time.Second, Transport: transport},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// Auth.

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp AuthResponse
	if err := c.post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var resp AuthResponse
	if err := c.post(ctx, "/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Catalog.

func (c *HTTPClient) ListGames(ctx context.Context, genre string) ([]models.Game, error) {
	path := "/games"
	if genre != "" {
		path += "?genre=" + url.QueryEscape(genre)
	}
	var games []models.Game
	if err := c.get(ctx, path, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (c *HTTPClient) GetGame(ctx context.Context, id string) (*models.Game, error) {
	var game models.Game
	if err := c.get(ctx, "/games/"+url.PathEscape(id), &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (c *HTTPClient) CreateGame(ctx context.Context, game *models.Game) (*models.Game, error) {
	var created models.Game
	if err := c.post(ctx, "/games", game, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) UpdateGame(ctx context.Context, id string, game *models.Game) (*models.Game, error) {
	var updated models.Game
	if err := c.do(ctx, http.MethodPut, "/games/"+url.PathEscape(id), game, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) DeleteGame(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/games/"+url.PathEscape(id), nil, nil)
}

// Library.

func (c *HTTPClient) GetLibrary(ctx context.Context) (*models.Library, error) {
	var lib models.Library
	if err := c.get(ctx, "/library", &lib); err != nil {
		return nil, err
	}
	return &lib, nil
}

func (c *HTTPClient) ToggleInstall(ctx context.Context, gameID string) (*models.LibraryGame, error) {
	var entry models.LibraryGame
	path := fmt.Sprintf("/library/games/%s/install", url.PathEscape(gameID))
	if err := c.do(ctx, http.MethodPatch, path, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Reviews.

func (c *HTTPClient) GameReviews(ctx context.Context, gameID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.get(ctx, "/reviews/game/"+url.PathEscape(gameID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *HTTPClient) CreateReview(ctx context.Context, gameID string, rating float64, comment string) (*models.Review, error) {
	body := map[string]any{"gameId": gameID, "rating": rating, "comment": comment}
	var review models.Review
	if err := c.post(ctx, "/reviews", body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *HTTPClient) DeleteReview(ctx context.Context, reviewID string) error {
	return c.do(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(reviewID), nil, nil)
}

func (c *HTTPClient) MarkHelpful(ctx context.Context, reviewID string) (*HelpfulResult, error) {
	var result HelpfulResult
	path := fmt.Sprintf("/reviews/%s/helpful", url.PathEscape(reviewID))
	if err := c.post(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Orders.

func (c *HTTPClient) MyOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.get(ctx, "/orders/my-orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *HTTPClient) Checkout(ctx context.Context, req *CheckoutRequest) (*models.Order, error) {
	var order models.Order
	if err := c.post(ctx, "/orders/checkout", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Wishlist.

func (c *HTTPClient) Wishlist(ctx context.Context) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := c.get(ctx, "/wishlist", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) AddToWishlist(ctx context.Context, gameID string) (*models.WishlistItem, error) {
	body := map[string]string{"gameId": gameID}
	var item models.WishlistItem
	if err := c.post(ctx, "/wishlist", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) RemoveFromWishlist(ctx context.Context, gameID string) error {
	return c.do(ctx, http.MethodDelete, "/wishlist/"+url.PathEscape(gameID), nil, nil)
}

// Account / admin console.

func (c *HTTPClient) AddFunds(ctx context.Context, amount float64) (*models.User, error) {
	body := map[string]float64{"amount": amount}
	var user models.User
	if err := c.post(ctx, "/users/balance", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.get(ctx, "/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) UpdateUserStatus(ctx context.Context, userID string, status models.AccountStatus) (*models.User, error) {
	body := map[string]models.AccountStatus{"accountStatus": status}
	var user models.User
	path := fmt.Sprintf("/admin/users/%s/status", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodPatch, path, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Plumbing.

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *HTTPClient) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(respBody, &errResp)
		return NewError(resp.StatusCode, errResp.Error)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}
