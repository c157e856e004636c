package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Folldix/GameStore-Frontend/internal/client/models"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []float64
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []float64{4}, 4},
		{"mixed", []float64{5, 4, 3}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reviews []models.Review
			for _, r := range tt.ratings {
				reviews = append(reviews, models.Review{Rating: r})
			}
			assert.Equal(t, tt.want, AverageRating(reviews))
		})
	}
}
