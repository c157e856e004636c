package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/Folldix/GameStore-Frontend/internal/client/models"
)

// Users lists every account. Admin only; the service rejects everyone else.
func (a *App) Users(ctx context.Context) error {
	users, err := a.admin.Users(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	for _, u := range users {
		fmt.Printf("  %s  %s <%s>  role=%s status=%s balance=%.2f\n",
			u.ID, u.Username, u.Email, u.Role, u.AccountStatus, u.Balance)
	}
	return nil
}

// SetStatus changes an account status: setstatus <userID> <status>.
func (a *App) SetStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Println("usage: setstatus <userID> <active|suspended|banned|inactive>")
		return nil
	}

	status := models.AccountStatus(strings.ToUpper(args[1]))
	switch status {
	case models.AccountActive, models.AccountSuspended, models.AccountBanned, models.AccountInactive:
	default:
		fmt.Println("status must be one of active, suspended, banned, inactive")
		return nil
	}

	user, err := a.admin.SetUserStatus(ctx, args[0], status)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("%s is now %s\n", user.Username, user.AccountStatus)
	return nil
}

// AddGame prompts for the catalog fields and creates a new game.
func (a *App) AddGame(ctx context.Context) error {
	game, err := a.promptGame(&models.Game{})
	if err != nil {
		return err
	}

	created, err := a.admin.AddGame(ctx, game)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Created %s (%s)\n", created.Title, created.ID)
	return nil
}

// UpdateGame re-prompts the catalog fields of an existing game, with the
// current values as defaults: updategame <gameID>.
func (a *App) UpdateGame(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: updategame <gameID>")
		return nil
	}

	current, err := a.catalog.Get(ctx, args[0])
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	game, err := a.promptGame(current)
	if err != nil {
		return err
	}

	updated, err := a.admin.UpdateGame(ctx, args[0], game)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Updated %s\n", updated.Title)
	return nil
}

// RemoveGame deletes a game from the catalog: delgame <gameID>.
func (a *App) RemoveGame(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: delgame <gameID>")
		return nil
	}

	if err := a.admin.RemoveGame(ctx, args[0]); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println("Game removed")
	return nil
}

// promptGame reads the catalog fields interactively. An empty answer keeps
// the value already present in base.
func (a *App) promptGame(base *models.Game) (*models.Game, error) {
	game := *base

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Title", &game.Title},
		{"Description", &game.Description},
		{"Genre", &game.Genre},
		{"Developer", &game.Developer},
		{"Publisher", &game.Publisher},
		{"Release date (YYYY-MM-DD)", &game.ReleaseDate},
		{"Age rating", &game.AgeRating},
	}
	for _, f := range fields {
		text, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return nil, err
		}
		if text != "" {
			*f.dst = text
		}
	}

	priceText, err := getSimpleText(a.reader, "Price", os.Stdout)
	if err != nil {
		return nil, err
	}
	if priceText != "" {
		price, err := strconv.ParseFloat(priceText, 64)
		if err != nil || price < 0 {
			return nil, fmt.Errorf("invalid price %q", priceText)
		}
		game.Price = price
	}

	return &game, nil
}
