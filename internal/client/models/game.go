package models

import "math"

// SystemRequirements lists minimum and recommended hardware for a game.
type SystemRequirements struct {
	ID           string `json:"id"`
	MinOS        string `json:"minOS"`
	MinProcessor string `json:"minProcessor"`
	MinRAM       string `json:"minRAM"`
	MinStorage   string `json:"minStorage"`
	MinGraphics  string `json:"minGraphics"`
	RecOS        string `json:"recOS"`
	RecProcessor string `json:"recProcessor"`
	RecRAM       string `json:"recRAM"`
	RecStorage   string `json:"recStorage"`
	RecGraphics  string `json:"recGraphics"`
}

// Game is a catalog entry.
type Game struct {
	ID                 string              `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	Genre              string              `json:"genre"`
	Developer          string              `json:"developer"`
	Publisher          string              `json:"publisher"`
	ReleaseDate        string              `json:"releaseDate"`
	Price              float64             `json:"price"`
	DiscountPrice      float64             `json:"discountPrice,omitempty"`
	Rating             float64             `json:"rating"`
	DownloadSize       int64               `json:"downloadSize"`
	CoverImage         string              `json:"coverImage"`
	CoverImageURL      string              `json:"coverImageUrl,omitempty"`
	Screenshots        []string            `json:"screenshots"`
	VideoTrailer       string              `json:"videoTrailer,omitempty"`
	AgeRating          string              `json:"ageRating"`
	SystemRequirements *SystemRequirements `json:"systemRequirements,omitempty"`
	CreatedAt          string              `json:"createdAt,omitempty"`
	UpdatedAt          string              `json:"updatedAt,omitempty"`
}

// FinalPrice returns the discounted price when a discount is set, the base
// price otherwise.
func (g *Game) FinalPrice() float64 {
	if g.DiscountPrice > 0 {
		return g.DiscountPrice
	}
	return g.Price
}

// DiscountPercentage returns the rounded percentage the discount price takes
// off the base price, or 0 when no discount applies.
func (g *Game) DiscountPercentage() int {
	if g.DiscountPrice <= 0 || g.Price <= 0 || g.DiscountPrice >= g.Price {
		return 0
	}
	return int(math.Round((1 - g.DiscountPrice/g.Price) * 100))
}

// CoverURL returns whichever cover image field the server populated.
func (g *Game) CoverURL() string {
	if g.CoverImage != "" {
		return g.CoverImage
	}
	return g.CoverImageURL
}
