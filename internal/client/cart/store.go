// Package cart owns the client-local set of games queued for purchase.
// The collection lives for the process only; it is deliberately never
// persisted, so a restart starts with an empty cart.
package cart

import (
	"sync"

	"github.com/Folldix/GameStore-Frontend/internal/client/models"
)

// Item is one selected-but-unpurchased game.
type Item struct {
	Game models.Game
}

// Store is an in-memory cart keyed by game id. At most one entry per game;
// adding an already-present game is a no-op.
type Store struct {
	mu    sync.RWMutex
	items []Item
}

func NewStore() *Store {
	return &Store{}
}

// Add appends the game unless an entry with the same id already exists.
// Reports whether the cart changed.
func (s *Store) Add(game models.Game) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.Game.ID == game.ID {
			return false
		}
	}
	s.items = append(s.items, Item{Game: game})
	return true
}

// Remove drops the entry with the given game id; absent ids are a no-op.
func (s *Store) Remove(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Game.ID != gameID {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// Clear empties the cart. Called after a successful checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Contains reports whether a game is in the cart.
func (s *Store) Contains(gameID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.Game.ID == gameID {
			return true
		}
	}
	return false
}

// Items returns a snapshot of the cart contents.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of entries.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Total sums the base price across entries. Discount display is a caller
// concern; the cart itself tracks list prices.
func (s *Store) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum float64
	for _, item := range s.items {
		sum += item.Game.Price
	}
	return sum
}
