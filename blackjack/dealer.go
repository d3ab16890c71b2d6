package blackjack

import "blackjack-lite/card"

// Dealer owns exactly one hand, never split, and plays it by fixed policy:
// hit below 17, demote a live Ace after any bust, stand at 17 or better.
type Dealer struct {
	hand *Hand
}

func NewDealer() *Dealer {
	return &Dealer{hand: &Hand{}}
}

func (d *Dealer) Hand() *Hand { return d.hand }

func (d *Dealer) resetForNewRound() {
	d.hand.Clear()
}

// playTurn draws until the policy says stop. Terminates: every draw raises
// the sum, and a demote lowers it by 10 while spending one live Ace.
func (d *Dealer) playTurn(draw func() card.Card) {
	d.hand.changeAceIfNotSplit()

	for d.hand.SumOfValues() < dealerStandSum {
		d.hand.AddCard(draw())
		if d.hand.IsBusted() && d.hand.AceCount() > 0 {
			d.hand.demoteOneAce()
		}
	}
}
