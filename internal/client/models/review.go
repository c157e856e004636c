package models

// Review is a user review of a game. HelpfulCount and IsLiked reflect the
// server's authoritative tallies as of the fetch; the reviews tracker keeps
// the client-side working copy.
type Review struct {
	ID                 string  `json:"id"`
	UserID             string  `json:"userId"`
	User               *User   `json:"user,omitempty"`
	GameID             string  `json:"gameId"`
	Rating             float64 `json:"rating"`
	Comment            string  `json:"comment"`
	ReviewDate         string  `json:"reviewDate"`
	HelpfulCount       int     `json:"helpfulCount"`
	IsLiked            bool    `json:"isLiked"`
	IsVerifiedPurchase bool    `json:"isVerifiedPurchase"`
}
