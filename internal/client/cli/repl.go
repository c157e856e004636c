package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	AddFunds(ctx context.Context, args []string) error

	Browse(ctx context.Context, args []string) error
	ShowGame(ctx context.Context, args []string) error

	AddToCart(ctx context.Context, args []string) error
	RemoveFromCart(args []string) error
	ShowCart(ctx context.Context) error
	Checkout(ctx context.Context, args []string) error
	Orders(ctx context.Context) error

	ShowLibrary(ctx context.Context) error
	Install(ctx context.Context, args []string) error

	Reviews(ctx context.Context, args []string) error
	Helpful(ctx context.Context, args []string) error
	WriteReview(ctx context.Context, args []string) error
	DeleteReview(ctx context.Context, args []string) error

	Wishlist(ctx context.Context) error
	Wish(ctx context.Context, args []string) error
	Unwish(ctx context.Context, args []string) error

	Users(ctx context.Context) error
	SetStatus(ctx context.Context, args []string) error
	AddGame(ctx context.Context) error
	UpdateGame(ctx context.Context, args []string) error
	RemoveGame(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the GameStore CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command and the rest as arguments, and dispatches to methods on 'a'.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help                 — show available commands
//	  - store [genre]        — browse the catalog
//	  - game <id>            — show a single game
//	  - reviews <gameID>     — list reviews for a game
//	  - exit | quit          — leave the program
//
//	Not logged in:
//	  - register             — create an account
//	  - login                — authenticate
//
//	Logged in:
//	  - me                   — show the current profile
//	  - addfunds <amount>    — top up the balance
//	  - add <gameID>         — add a game to the cart
//	  - remove <gameID>      — remove a game from the cart
//	  - cart                 — show the cart
//	  - checkout [method]    — purchase the cart contents
//	  - orders               — show order history
//	  - library              — show owned games
//	  - install <gameID>     — toggle install state of an owned game
//	  - helpful <reviewID>   — toggle the helpful mark on a review
//	  - review <gameID>      — write a review
//	  - delreview <reviewID> — delete an own review
//	  - wishlist             — show the wishlist
//	  - wish <gameID>        — add a game to the wishlist
//	  - unwish <gameID>      — remove a game from the wishlist
//	  - logout               — log out
//
//	Admin only:
//	  - users                — list all accounts
//	  - setstatus <id> <st>  — change an account status
//	  - addgame              — create a catalog entry
//	  - updategame <gameID>  — edit a catalog entry
//	  - delgame <gameID>     — remove a catalog entry
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gs> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		// Commands available regardless of authentication.
		switch cmd {
		case "help":
			printHelp(a)
			continue

		case "store":
			_ = a.Browse(ctx, args)
			continue

		case "game":
			_ = a.ShowGame(ctx, args)
			continue

		case "reviews":
			_ = a.Reviews(ctx, args)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "me":
			_ = a.ShowProfile(ctx)

		case "addfunds":
			_ = a.AddFunds(ctx, args)

		case "add":
			_ = a.AddToCart(ctx, args)

		case "remove":
			_ = a.RemoveFromCart(args)

		case "cart":
			_ = a.ShowCart(ctx)

		case "checkout":
			_ = a.Checkout(ctx, args)

		case "orders":
			_ = a.Orders(ctx)

		case "library":
			_ = a.ShowLibrary(ctx)

		case "install":
			_ = a.Install(ctx, args)

		case "helpful":
			_ = a.Helpful(ctx, args)

		case "review":
			_ = a.WriteReview(ctx, args)

		case "delreview":
			_ = a.DeleteReview(ctx, args)

		case "wishlist":
			_ = a.Wishlist(ctx)

		case "wish":
			_ = a.Wish(ctx, args)

		case "unwish":
			_ = a.Unwish(ctx, args)

		case "users":
			_ = a.Users(ctx)

		case "setstatus":
			_ = a.SetStatus(ctx, args)

		case "addgame":
			_ = a.AddGame(ctx)

		case "updategame":
			_ = a.UpdateGame(ctx, args)

		case "delgame":
			_ = a.RemoveGame(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	printlnFn("Available commands: store [genre], game <id>, reviews <gameID>, exit")
	if !a.isLoggedIn() {
		printlnFn("Account: register, login")
		return
	}
	printlnFn("Account: me, addfunds <amount>, logout")
	printlnFn("Cart: add <gameID>, remove <gameID>, cart, checkout [method], orders")
	printlnFn("Library: library, install <gameID>")
	printlnFn("Reviews: helpful <reviewID>, review <gameID>, delreview <reviewID>")
	printlnFn("Wishlist: wishlist, wish <gameID>, unwish <gameID>")
	if a.isAdmin() {
		printlnFn("Admin: users, setstatus <userID> <status>, addgame, updategame <gameID>, delgame <gameID>")
	}
}
