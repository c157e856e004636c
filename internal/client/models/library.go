package models

// LibraryGame is one owned game inside a user's library.
type LibraryGame struct {
	ID             string `json:"id"`
	LibraryID      string `json:"libraryId"`
	GameID         string `json:"gameId"`
	Game           Game   `json:"game"`
	PurchaseDate   string `json:"purchaseDate"`
	LastPlayedDate string `json:"lastPlayedDate,omitempty"`
	PlayTime       int    `json:"playTime"`
	IsInstalled    bool   `json:"isInstalled"`
}

// Library is the server-tracked set of games a user owns.
type Library struct {
	ID     string        `json:"id"`
	UserID string        `json:"userId"`
	Games  []LibraryGame `json:"games"`
}
