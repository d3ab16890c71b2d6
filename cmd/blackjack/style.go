package main

import (
	"github.com/pterm/pterm"

	"blackjack-lite/blackjack"
	"blackjack-lite/card"
)

// handString renders a hand's cards on one line, face down cards as the
// rear marker.
func handString(h blackjack.HandSnapshot, hideFrom int) string {
	out := ""
	for i, hc := range h.Cards {
		if i > 0 {
			out += " "
		}
		if hideFrom >= 0 && i >= hideFrom {
			out += card.CardRear.String()
		} else {
			out += hc.Card.String()
		}
	}
	return pterm.BgGreen.Sprint(" " + out + " ")
}

func resultString(r blackjack.Result) string {
	name := blackjack.ResultDictionary[r]
	switch r {
	case blackjack.ResultBlackjack, blackjack.ResultWin:
		return pterm.LightGreen(name)
	case blackjack.ResultLose, blackjack.ResultSurrendered:
		return pterm.LightRed(name)
	case blackjack.ResultTie:
		return pterm.LightYellow(name)
	default:
		return pterm.Gray(name)
	}
}

// getDealerPanel shows the dealer's hand; before the reveal only the up
// card and its value are visible.
func getDealerPanel(snap blackjack.Snapshot) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	hideFrom := -1
	sum := snap.DealerHand.Sum
	if !snap.DealerRevealed {
		hideFrom = 1
		sum = 0
		if len(snap.DealerHand.Cards) > 0 {
			sum = snap.DealerHand.Cards[0].Value
		}
	}
	body := pterm.Sprintfln("%s\nShowing: %d", handString(snap.DealerHand, hideFrom), sum)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightRed("|DEALER|")).WithTitleTopCenter().Sprint(body)}
}

func getHandPanel(snap blackjack.Snapshot, idx int) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	h := snap.Hands[idx]
	title := pterm.Sprintf("|HAND %d|", idx+1)
	if snap.Phase == blackjack.PhasePlayerTurn && idx == snap.ActiveHand {
		title = pterm.LightCyan(title + " <")
	}
	body := pterm.Sprintfln("%s\nSum: %d  Bet: %d\n%s",
		handString(h, -1), h.Sum, h.Bet, resultString(h.Result))
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopCenter().Sprint(body)}
}

func getBankPanel(snap blackjack.Snapshot) pterm.Panel {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintfln("Balance: %d\nStaged bet: %d\nShoe: %d/%d",
		snap.Balance, snap.StagedBet, snap.ShoeRemaining, snap.ShoeTotal)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|BANKROLL|")).WithTitleTopCenter().Sprint(body)}
}

// printTable renders the whole table: dealer on top, the player's hands
// in the middle, the bankroll below.
func printTable(snap blackjack.Snapshot) {
	handPanels := make([]pterm.Panel, 0, len(snap.Hands))
	for i := range snap.Hands {
		handPanels = append(handPanels, getHandPanel(snap, i))
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{getDealerPanel(snap)},
		handPanels,
		{getBankPanel(snap)},
	}).Render()
}

// printSettlement shows the round outcome per hand plus the totals.
func printSettlement(s *blackjack.SettlementResult) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := ""
	for _, h := range s.Hands {
		body += pterm.Sprintfln("Hand %d: %s  bet %d, paid %d",
			h.HandIndex+1, resultString(h.Result), h.Bet, h.Payout)
	}
	dealer := pterm.Sprintf("Dealer: %d", s.DealerSum)
	if s.DealerBlackjack {
		dealer += " (blackjack)"
	}
	if s.DealerBusted {
		dealer += " (busted)"
	}
	body += pterm.Sprintfln("%s\nTotal payout: %d  Balance: %d", dealer, s.TotalPayout, s.Balance)
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: pbox.WithTitle(pterm.LightGreen("|SETTLEMENT|")).WithTitleTopCenter().Sprint(body)}},
	}).Render()
}
