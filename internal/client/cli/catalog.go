package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Folldix/GameStore-Frontend/internal/client/models"
)

// Browse lists the catalog, optionally filtered by genre: store [genre].
func (a *App) Browse(ctx context.Context, args []string) error {
	genre := ""
	if len(args) > 0 {
		genre = strings.Join(args, " ")
	}

	games, err := a.catalog.List(ctx, genre)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(games) == 0 {
		fmt.Println("No games found")
		return nil
	}
	for i := range games {
		printGameLine(&games[i], a.library.IsGameOwned(games[i].ID), a.cart.Contains(games[i].ID))
	}
	return nil
}

// ShowGame prints full details for one game: game <id>.
func (a *App) ShowGame(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: game <id>")
		return nil
	}

	game, err := a.catalog.Get(ctx, args[0])
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("%s (%s)\n", game.Title, game.Genre)
	fmt.Printf("  %s\n", game.Description)
	fmt.Printf("  Developer: %s  Publisher: %s  Released: %s\n", game.Developer, game.Publisher, game.ReleaseDate)
	fmt.Printf("  Price: %s  Rating: %.1f  Size: %s  Age: %s\n",
		formatPrice(game), game.Rating, models.FormatDownloadSize(game.DownloadSize), game.AgeRating)
	if sr := game.SystemRequirements; sr != nil {
		fmt.Printf("  Minimum: %s, %s, %s RAM\n", sr.MinOS, sr.MinProcessor, sr.MinRAM)
		fmt.Printf("  Recommended: %s, %s, %s RAM\n", sr.RecOS, sr.RecProcessor, sr.RecRAM)
	}
	if a.library.IsGameOwned(game.ID) {
		fmt.Println("  In your library")
	}
	return nil
}

func printGameLine(g *models.Game, owned, inCart bool) {
	tag := ""
	switch {
	case owned:
		tag = " [owned]"
	case inCart:
		tag = " [in cart]"
	}
	fmt.Printf("  %s  %s — %s%s\n", g.ID, g.Title, formatPrice(g), tag)
}

func formatPrice(g *models.Game) string {
	if pct := g.DiscountPercentage(); pct > 0 {
		return fmt.Sprintf("$%.2f (-%d%%)", g.FinalPrice(), pct)
	}
	return fmt.Sprintf("$%.2f", g.Price)
}
