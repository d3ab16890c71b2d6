package blackjack

// HandSettlement records the fate of one player hand.
type HandSettlement struct {
	HandIndex int
	Result    Result
	Bet       int64
	Payout    int64
}

// SettlementResult is returned by whichever action ends the round.
type SettlementResult struct {
	Hands []HandSettlement

	DealerSum       int
	DealerBlackjack bool
	DealerBusted    bool

	TotalPayout int64
	Balance     int64
}

// payoutFor maps a terminal result to the amount credited back, stake
// included: 3:2 on a blackjack, 1:1 on a win, stake back on a tie, half
// the stake back on a surrender. Integer math, as at the table.
func payoutFor(r Result, bet int64) int64 {
	switch r {
	case ResultBlackjack:
		return bet * 5 / 2
	case ResultWin:
		return bet * 2
	case ResultTie:
		return bet
	case ResultSurrendered:
		return bet / 2
	default:
		return 0
	}
}

// compareWithDealer settles a hand that survived to the showdown.
func compareWithDealer(playerSum int, dealer *Hand) Result {
	switch {
	case dealer.IsBlackjack():
		return ResultLose
	case dealer.IsBusted():
		return ResultWin
	case playerSum == dealer.SumOfValues():
		return ResultTie
	case playerSum > dealer.SumOfValues():
		return ResultWin
	default:
		return ResultLose
	}
}

func (g *Game) settleLocked() *SettlementResult {
	dealerHand := g.dealer.Hand()

	out := &SettlementResult{
		DealerSum:       dealerHand.SumOfValues(),
		DealerBlackjack: dealerHand.IsBlackjack(),
		DealerBusted:    dealerHand.IsBusted(),
	}

	for i, h := range g.player.Hands() {
		if h.Result() == ResultNone {
			h.setResult(compareWithDealer(h.SumOfValues(), dealerHand))
		}
		payout := payoutFor(h.Result(), h.CurrentBet())
		g.chips.credit(payout)
		out.TotalPayout += payout
		out.Hands = append(out.Hands, HandSettlement{
			HandIndex: i,
			Result:    h.Result(),
			Bet:       h.CurrentBet(),
			Payout:    payout,
		})
	}

	out.Balance = g.chips.Balance()
	g.phase = PhaseSettled
	g.lastSettlement = out
	g.emitLocked(Event{Type: EventRoundSettled, Amount: out.TotalPayout})

	if g.chips.Busted() {
		g.gameOver = true
		g.emitLocked(Event{Type: EventGameOver})
	}
	return out
}
