package blackjack

import (
	"fmt"

	"blackjack-lite/card"
)

type Config struct {
	// Shoe
	Decks int

	// Bankroll
	InitialBalance int64

	// RNG seed (0 => time-based)
	Seed int64

	// DeckOverride fixes the exact draw order (front of the slice is drawn
	// first) and disables reshuffling. Replay and test hook.
	DeckOverride []card.Card
}

// ValidateConfig checks a table config without opening a game; servers
// use it to fail fast at startup.
func ValidateConfig(c Config) error {
	return c.validate()
}

func (c Config) validate() error {
	if len(c.DeckOverride) > 0 {
		if len(c.DeckOverride) < 4 {
			return fmt.Errorf("DeckOverride needs at least 4 cards, got %d", len(c.DeckOverride))
		}
	} else if c.Decks < 1 || c.Decks > 8 {
		return fmt.Errorf("Decks must be within 1..8, got %d", c.Decks)
	}
	if c.InitialBalance < 1000 || c.InitialBalance > 10000 {
		return fmt.Errorf("InitialBalance must be within 1000..10000, got %d", c.InitialBalance)
	}
	return nil
}
