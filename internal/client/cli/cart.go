package cli

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Folldix/GameStore-Frontend/internal/client/models"
)

// AddToCart puts a game into the cart: add <gameID>. Owned games are
// rejected before any cart mutation so the cart can never hold a game the
// library already contains.
func (a *App) AddToCart(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: add <gameID>")
		return nil
	}

	game, err := a.catalog.Get(ctx, args[0])
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if a.library.IsGameOwned(game.ID) {
		fmt.Println("Already in your library")
		return nil
	}

	if a.cart.Add(*game) {
		fmt.Printf("Added %s (%d in cart)\n", game.Title, a.cart.Count())
	} else {
		fmt.Println("Already in the cart")
	}
	return nil
}

// RemoveFromCart drops a game from the cart: remove <gameID>.
func (a *App) RemoveFromCart(args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: remove <gameID>")
		return nil
	}
	a.cart.Remove(args[0])
	fmt.Printf("%d game(s) in cart\n", a.cart.Count())
	return nil
}

// ShowCart prints the cart contents and the running total.
func (a *App) ShowCart(ctx context.Context) error {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("Cart is empty")
		return nil
	}
	for _, it := range items {
		fmt.Printf("  %s  %s — $%.2f\n", it.Game.ID, it.Game.Title, it.Game.Price)
	}
	fmt.Printf("Total: $%.2f\n", a.cart.Total())
	return nil
}

// Checkout purchases the cart contents: checkout [method]. The payment
// method defaults to credit card; the cart empties only when the server
// confirms the order.
func (a *App) Checkout(ctx context.Context, args []string) error {
	method := models.PaymentCreditCard
	if len(args) > 0 {
		method = models.PaymentMethod(strings.ToUpper(args[0]))
	}

	order, err := a.orders.Checkout(ctx, method)
	if err != nil {
		log.Printf("Checkout failed: %s", err.Error())
		return err
	}

	fmt.Printf("Order %s placed: %d game(s), $%.2f, status %s\n",
		order.ID, len(order.Items), order.TotalAmount, order.OrderStatus)
	return nil
}

// Orders prints the order history, newest first as returned by the server.
func (a *App) Orders(ctx context.Context) error {
	orders, err := a.orders.History(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(orders) == 0 {
		fmt.Println("No orders yet")
		return nil
	}
	for _, o := range orders {
		fmt.Printf("  %s  %s  $%.2f  %s  (%d game(s))\n",
			o.ID, o.OrderDate, o.TotalAmount, o.OrderStatus, len(o.Items))
	}
	return nil
}
