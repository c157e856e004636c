package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, email and password and creates a new
// account. A successful register also logs the user in: the server responds
// with a session the store establishes immediately.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Register(ctx, username, email, password); err != nil {
		log.Printf("Registration failed: %s", err.Error())
		return err
	}

	fmt.Println("Welcome,", username)
	return nil
}

// Login prompts for credentials and authenticates. The library reloads by
// itself through its auth subscription.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		log.Printf("Login failed: %s", err.Error())
		return err
	}

	log.Printf("Login successful")
	return nil
}

// Logout clears the persisted session. The cart is client-local state tied
// to the person at the keyboard, so it empties too.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.cart.Clear()
	fmt.Println("Logged out")
	return nil
}

// ShowProfile refreshes the profile from the server and prints it.
func (a *App) ShowProfile(ctx context.Context) error {
	user, err := a.session.RefreshProfile(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("%s <%s> role=%s balance=%.2f\n", user.Username, user.Email, user.Role, user.Balance)
	return nil
}

// AddFunds tops up the account balance: addfunds <amount>.
func (a *App) AddFunds(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: addfunds <amount>")
		return nil
	}
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil || amount <= 0 {
		fmt.Println("amount must be a positive number")
		return nil
	}

	user, err := a.apiClient.AddFunds(ctx, amount)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Printf("New balance: %.2f\n", user.Balance)
	return nil
}
