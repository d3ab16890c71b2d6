package blackjack

import "blackjack-lite/card"

// HandCard pairs a card with its live blackjack value. Face cards count 10,
// pips their rank; an Ace enters at 11 and may be demoted to 1 exactly
// once, never back.
type HandCard struct {
	Card  card.Card `json:"card"`
	Value int       `json:"value"`
}

func baseValue(c card.Card) int {
	r := int(c.Rank())
	switch {
	case c.IsAce():
		return 11
	case r >= 10:
		return 10
	default:
		return r
	}
}

// Hand is an ordered run of cards plus the bet riding on it and its
// terminal result. aceCount tracks Aces still counted at 11.
type Hand struct {
	cards      []HandCard
	currentBet int64
	aceCount   int
	result     Result
}

// Cards returns a copy; the hand owns its cards exclusively.
func (h *Hand) Cards() []HandCard {
	return append([]HandCard{}, h.cards...)
}

func (h *Hand) Count() int { return len(h.cards) }

func (h *Hand) CurrentBet() int64 { return h.currentBet }
func (h *Hand) Result() Result    { return h.result }
func (h *Hand) AceCount() int     { return h.aceCount }

func (h *Hand) setCurrentBet(amount int64) { h.currentBet = amount }
func (h *Hand) setResult(r Result)         { h.result = r }

// SumOfValues is the current blackjack total.
func (h *Hand) SumOfValues() int {
	sum := 0
	for _, hc := range h.cards {
		sum += hc.Value
	}
	return sum
}

// AddCard appends c at its base value.
func (h *Hand) AddCard(c card.Card) {
	h.cards = append(h.cards, HandCard{Card: c, Value: baseValue(c)})
	if c.IsAce() {
		h.aceCount++
	}
}

// RemoveSecondCard detaches the card at index 1. Split only.
func (h *Hand) RemoveSecondCard() (card.Card, error) {
	if len(h.cards) < 2 {
		return card.CardInvalid, ErrInvalidState("hand has no second card")
	}
	hc := h.cards[1]
	h.cards = append(h.cards[:1], h.cards[2:]...)
	if hc.Card.IsAce() && hc.Value == 11 {
		h.aceCount--
	}
	return hc.Card, nil
}

func (h *Hand) Clear() {
	h.cards = nil
	h.currentBet = 0
	h.aceCount = 0
	h.result = ResultNone
}

// IsBlackjack reports a natural: exactly two cards summing to 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.SumOfValues() == 21
}

// isTwentyOne reports a 21 made with three or more cards.
func (h *Hand) isTwentyOne() bool {
	return len(h.cards) > 2 && h.SumOfValues() == 21
}

func (h *Hand) IsBusted() bool {
	return h.SumOfValues() > 21
}

// CanSplit: exactly two cards of equal value.
func (h *Hand) CanSplit() bool {
	return len(h.cards) == 2 && h.cards[0].Value == h.cards[1].Value
}

// demoteOneAce revalues the first Ace still counted at 11 down to 1.
// Returns false when no such Ace exists; that is a no-op, not a fault.
func (h *Hand) demoteOneAce() bool {
	for i := range h.cards {
		if h.cards[i].Card.IsAce() && h.cards[i].Value == 11 {
			h.cards[i].Value = 1
			h.aceCount--
			return true
		}
	}
	return false
}

// evaluate runs the fixed result policy after a card lands or the player
// stands:
//  1. a two-card 21 is always Blackjack
//  2. a 21 on three or more cards is a plain Win
//  3. busted with no live Ace loses
//  4. busted with a live Ace, and not a splittable pair, demotes one Ace
//     and keeps playing; the chain is not re-run after the demote
//
// A busted splittable pair (two Aces read as 22) is deliberately left
// alone here so a freshly split pair is not revalued before the player
// acts on it; changeAceIfNotSplit picks that shape up on stand, double
// and dealer play.
func (h *Hand) evaluate() Result {
	switch {
	case h.IsBlackjack():
		h.result = ResultBlackjack
	case h.isTwentyOne():
		h.result = ResultWin
	case h.IsBusted() && h.aceCount == 0:
		h.result = ResultLose
	case h.IsBusted() && h.aceCount > 0 && !h.CanSplit():
		h.demoteOneAce()
	}
	return h.result
}

// changeAceIfNotSplit catches the deferred two-Ace bust left by evaluate.
func (h *Hand) changeAceIfNotSplit() {
	if h.IsBusted() && h.aceCount > 0 && h.CanSplit() {
		h.demoteOneAce()
	}
}
