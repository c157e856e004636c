package models

// WishlistItem is a game a user bookmarked for later purchase.
type WishlistItem struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	GameID    string `json:"gameId"`
	Game      Game   `json:"game"`
	AddedDate string `json:"addedDate"`
}

// Promotion groups games under a time-bound discount.
type Promotion struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	DiscountPercentage float64 `json:"discountPercentage"`
	StartDate          string  `json:"startDate"`
	EndDate            string  `json:"endDate"`
	IsActive           bool    `json:"isActive"`
	Games              []Game  `json:"games"`
}
