package blackjack

// HandSnapshot is a deep copy of one hand for rendering.
type HandSnapshot struct {
	Cards  []HandCard
	Sum    int
	Bet    int64
	Result Result
}

// Snapshot is the read model the presentation layer sees. Everything is
// copied; mutating a snapshot cannot touch the engine. The dealer's full
// hand is present; viewers that honor the table convention hide the
// second card while DealerRevealed is false.
type Snapshot struct {
	Round uint16
	Phase Phase

	Hands      []HandSnapshot
	ActiveHand int

	DealerHand     HandSnapshot
	DealerRevealed bool

	Balance   int64
	StagedBet int64

	ShoeRemaining int
	ShoeTotal     int

	LastAction ActionType
	GameOver   bool
}

func snapshotHand(h *Hand) HandSnapshot {
	return HandSnapshot{
		Cards:  h.Cards(),
		Sum:    h.SumOfValues(),
		Bet:    h.CurrentBet(),
		Result: h.Result(),
	}
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		Round:          g.round,
		Phase:          g.phase,
		ActiveHand:     g.player.ActiveHandIndex(),
		DealerHand:     snapshotHand(g.dealer.Hand()),
		DealerRevealed: g.phase >= PhaseDealerTurn,
		Balance:        g.chips.Balance(),
		StagedBet:      g.chips.Bet(),
		ShoeRemaining:  g.shoe.Remaining(),
		ShoeTotal:      g.shoe.TotalCards(),
		LastAction:     g.lastAction,
		GameOver:       g.gameOver,
	}
	for _, h := range g.player.Hands() {
		s.Hands = append(s.Hands, snapshotHand(h))
	}
	return s
}
