package cli

import (
	"context"
	"fmt"
	"log"
)

// Wishlist prints the bookmarked games.
func (a *App) Wishlist(ctx context.Context) error {
	items, err := a.wishlist.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(items) == 0 {
		fmt.Println("Wishlist is empty")
		return nil
	}
	for _, it := range items {
		owned := ""
		if a.library.IsGameOwned(it.GameID) {
			owned = " [owned]"
		}
		fmt.Printf("  %s  %s — %s%s\n", it.GameID, it.Game.Title, formatPrice(&it.Game), owned)
	}
	return nil
}

// Wish bookmarks a game: wish <gameID>.
func (a *App) Wish(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: wish <gameID>")
		return nil
	}

	item, err := a.wishlist.Add(ctx, args[0])
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Added %s to the wishlist\n", item.Game.Title)
	return nil
}

// Unwish removes a bookmark: unwish <gameID>.
func (a *App) Unwish(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: unwish <gameID>")
		return nil
	}

	if err := a.wishlist.Remove(ctx, args[0]); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println("Removed from the wishlist")
	return nil
}
