package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/Folldix/GameStore-Frontend/internal/client/services"
)

// Reviews lists the reviews for a game and seeds the helpful-mark tracker
// with the server's tallies: reviews <gameID>.
func (a *App) Reviews(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: reviews <gameID>")
		return nil
	}

	list, err := a.reviews.ListForGame(ctx, args[0])
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.tracker.Seed(list)

	if len(list) == 0 {
		fmt.Println("No reviews yet")
		return nil
	}
	fmt.Printf("Average rating: %.1f\n", services.AverageRating(list))
	for _, r := range list {
		author := r.UserID
		if r.User != nil {
			author = r.User.Username
		}
		verified := ""
		if r.IsVerifiedPurchase {
			verified = " (verified)"
		}
		liked := ""
		if a.tracker.IsLiked(r.ID) {
			liked = " *"
		}
		fmt.Printf("  %s  %.1f/5 by %s%s — helpful %d%s\n",
			r.ID, r.Rating, author, verified, a.tracker.HelpfulCount(r.ID), liked)
		fmt.Printf("     %s\n", r.Comment)
	}
	return nil
}

// Helpful toggles the helpful mark on a review: helpful <reviewID>.
func (a *App) Helpful(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: helpful <reviewID>")
		return nil
	}

	if err := a.tracker.Toggle(ctx, args[0]); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Printf("Helpful count is now %d\n", a.tracker.HelpfulCount(args[0]))
	return nil
}

// WriteReview prompts for a rating and comment and submits a review:
// review <gameID>.
func (a *App) WriteReview(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: review <gameID>")
		return nil
	}

	ratingText, err := getSimpleText(a.reader, "Rating (1-5)", os.Stdout)
	if err != nil {
		return err
	}
	rating, err := strconv.ParseFloat(ratingText, 64)
	if err != nil || rating < 1 || rating > 5 {
		fmt.Println("rating must be a number between 1 and 5")
		return nil
	}

	comment, err := GetMultiline(a.reader, "Comment (finish with an empty line)", os.Stdout)
	if err != nil {
		return err
	}

	review, err := a.reviews.Create(ctx, args[0], rating, comment)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	fmt.Println("Review posted:", review.ID)
	return nil
}

// DeleteReview removes an own review: delreview <reviewID>.
func (a *App) DeleteReview(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Println("usage: delreview <reviewID>")
		return nil
	}

	if err := a.reviews.Delete(ctx, args[0]); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	fmt.Println("Review deleted")
	return nil
}
