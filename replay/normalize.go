package replay

import (
	"fmt"
	"strings"

	"blackjack-lite/blackjack"
	"blackjack-lite/card"
)

const (
	defaultDecks   = 6
	defaultBalance = 1000
)

type normalizedSpec struct {
	decks   int
	balance int64
	bet     int64
	deck    []card.Card
	actions []blackjack.ActionType
}

func normalizeSpec(spec RoundSpec) (normalizedSpec, error) {
	out := normalizedSpec{
		decks:   spec.Decks,
		balance: spec.Balance,
		bet:     spec.Bet,
	}
	if out.decks == 0 {
		out.decks = defaultDecks
	}
	if out.balance == 0 {
		out.balance = defaultBalance
	}

	if out.bet <= 0 {
		return out, &ReplayError{StepIndex: -1, Reason: "invalid_bet", Message: "bet must be > 0"}
	}
	if out.bet > out.balance {
		return out, &ReplayError{StepIndex: -1, Reason: "invalid_bet", Message: "bet exceeds the balance"}
	}

	if len(spec.Deck) > 0 {
		if len(spec.Deck) < 4 {
			return out, &ReplayError{
				StepIndex: -1,
				Reason:    "invalid_deck",
				Message:   fmt.Sprintf("deck needs at least 4 cards to open a round, got %d", len(spec.Deck)),
			}
		}
		out.deck = make([]card.Card, len(spec.Deck))
		for i, s := range spec.Deck {
			c, err := card.StrToCard(strings.TrimSpace(s))
			if err != nil {
				return out, &ReplayError{
					StepIndex: -1,
					Reason:    "invalid_deck_card",
					Message:   fmt.Sprintf("deck[%d]: %v", i, err),
				}
			}
			out.deck[i] = c
		}
	} else if seedFromSpec(spec.RNG) == 0 {
		return out, &ReplayError{
			StepIndex: -1,
			Reason:    "invalid_deck",
			Message:   "either a fixed deck or a nonzero rng.seed is required",
		}
	}

	out.actions = make([]blackjack.ActionType, 0, len(spec.Actions))
	for i, name := range spec.Actions {
		a, err := parseActionName(name)
		if err != nil {
			return out, &ReplayError{StepIndex: int32(i), Reason: "invalid_action", Message: err.Error()}
		}
		out.actions = append(out.actions, a)
	}
	return out, nil
}

func parseActionName(name string) (blackjack.ActionType, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "HIT":
		return blackjack.PlayerActionTypeHit, nil
	case "STAND":
		return blackjack.PlayerActionTypeStand, nil
	case "DOUBLE", "DOUBLE_DOWN":
		return blackjack.PlayerActionTypeDouble, nil
	case "SPLIT":
		return blackjack.PlayerActionTypeSplit, nil
	case "SURRENDER":
		return blackjack.PlayerActionTypeSurrender, nil
	default:
		return blackjack.PlayerActionTypeNone, fmt.Errorf("unknown action %q", name)
	}
}

func actionName(a blackjack.ActionType) string {
	return blackjack.PlayerActionTypeDictionary[a]
}

func phaseName(p blackjack.Phase) string {
	return blackjack.PhaseDictionary[p]
}

func seedFromSpec(rng *RNGSpec) int64 {
	if rng == nil {
		return 0
	}
	return rng.Seed
}
