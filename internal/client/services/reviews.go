package services

import (
	"context"

	"github.com/Folldix/GameStore-Frontend/internal/client/api"
	"github.com/Folldix/GameStore-Frontend/internal/client/models"
)

// ReviewService covers review reads and writes. The helpful toggle is
// handled separately by the reviews.Tracker, which keeps the optimistic
// working copy for a displayed list.
type ReviewService interface {
	ListForGame(ctx context.Context, gameID string) ([]models.Review, error)
	Create(ctx context.Context, gameID string, rating float64, comment string) (*models.Review, error)
	Delete(ctx context.Context, reviewID string) error
}

type reviewClient interface {
	GameReviews(ctx context.Context, gameID string) ([]models.Review, error)
	CreateReview(ctx context.Context, gameID string, rating float64, comment string) (*models.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
}

type reviewService struct {
	client reviewClient
}

// NewReviewService constructs a ReviewService bound to the API client.
func NewReviewService(client reviewClient) ReviewService {
	return &reviewService{client: client}
}

func (s *reviewService) ListForGame(ctx context.Context, gameID string) ([]models.Review, error) {
	return s.client.GameReviews(ctx, gameID)
}

func (s *reviewService) Create(ctx context.Context, gameID string, rating float64, comment string) (*models.Review, error) {
	return s.client.CreateReview(ctx, gameID, rating, comment)
}

func (s *reviewService) Delete(ctx context.Context, reviewID string) error {
	return s.client.DeleteReview(ctx, reviewID)
}

// AverageRating computes the mean rating of a review list, 0 for an empty
// list.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}

var _ reviewClient = (api.Client)(nil)
