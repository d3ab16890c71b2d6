package blackjack

import (
	"math/rand"

	"blackjack-lite/card"
)

// Shoe owns the full multi-deck pool and the live draw pile. When the pile
// thins past the penetration threshold it is rebuilt from a freshly
// shuffled copy of the pool before the next card leaves it.
type Shoe struct {
	fullPool           card.CardList
	drawPile           card.CardList
	reshuffleThreshold int
	rng                *rand.Rand
	reshuffles         int
}

func newShoe(decks int, rng *rand.Rand) *Shoe {
	pool := make([]card.Card, 0, decks*len(StandardDeck))
	for i := 0; i < decks; i++ {
		pool = append(pool, StandardDeck...)
	}
	s := &Shoe{
		rng:                rng,
		reshuffleThreshold: int(0.3 * float64(len(pool))),
	}
	s.fullPool.Init(pool)
	s.reshufflePile()
	s.reshuffles = 0
	return s
}

// newFixedShoe deals the given cards front-first and never reshuffles.
func newFixedShoe(cards []card.Card) *Shoe {
	s := &Shoe{}
	s.fullPool.Init(cards)
	s.drawPile.Init(cards)
	return s
}

func (s *Shoe) reshufflePile() {
	pile := make([]card.Card, s.fullPool.Count())
	copy(pile, s.fullPool)
	if s.rng != nil {
		s.rng.Shuffle(len(pile), func(i, j int) { pile[i], pile[j] = pile[j], pile[i] })
	}
	s.drawPile.Init(pile)
	s.reshuffles++
}

// Draw removes and returns the front card. The penetration check runs
// before the card leaves the pile, so a thin shoe reshuffles first and a
// draw never fails mid-round.
func (s *Shoe) Draw() card.Card {
	if s.drawPile.Count() < s.reshuffleThreshold {
		s.reshufflePile()
	}
	cards, ok := s.drawPile.PopCards(1)
	if !ok {
		panic("shoe underflow")
	}
	return cards[0]
}

func (s *Shoe) Remaining() int  { return s.drawPile.Count() }
func (s *Shoe) TotalCards() int { return s.fullPool.Count() }

// Reshuffles counts pile rebuilds since the opening shuffle.
func (s *Shoe) Reshuffles() int { return s.reshuffles }
