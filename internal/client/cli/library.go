package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/Folldix/GameStore-Frontend/internal/client/models"
)

// ShowLibrary refreshes and prints the owned games.
func (a *App) ShowLibrary(ctx context.Context) error {
	if err := a.library.Refresh(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	lib := a.library.Library()
	if lib == nil || len(lib.Games) == 0 {
		fmt.Println("Library is empty")
		return nil
	}
	for _, lg := range lib.Games {
		state := "not installed"
		if lg.IsInstalled {
			state = "installed"
		}
		fmt.Printf("  %s  %s — %s, played %s\n",
			lg.GameID, lg.Game.Title, state, models.FormatPlayTime(lg.PlayTime))
	}
	return nil
}

// Install toggles the install state of an owned game: install <gameID>.
func (a *App) Install(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: install <gameID>")
		return nil
	}

	if !a.library.IsGameOwned(args[0]) {
		fmt.Println("Not in your library")
		return nil
	}

	if err := a.library.ToggleInstall(ctx, args[0]); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println("Install state updated")
	return nil
}
