package replay

import (
	"blackjack-lite/blackjack"
	"blackjack-lite/card"
)

// Wire views render engine values as strings so a tape stays readable
// without the byte encodings.

type WireEvent struct {
	Type   string `json:"type"`
	Hand   int    `json:"hand"`
	Dealer bool   `json:"dealer,omitempty"`
	Card   string `json:"card,omitempty"`
	Amount int64  `json:"amount,omitempty"`
	Result string `json:"result,omitempty"`
	Phase  string `json:"phase"`
}

type WireHand struct {
	Cards  []string `json:"cards"`
	Sum    int      `json:"sum"`
	Bet    int64    `json:"bet"`
	Result string   `json:"result"`
}

type WireState struct {
	Round      uint16     `json:"round"`
	Phase      string     `json:"phase"`
	Hands      []WireHand `json:"hands"`
	ActiveHand int        `json:"active_hand"`
	Dealer     WireHand   `json:"dealer"`
	Balance    int64      `json:"balance"`
	GameOver   bool       `json:"game_over,omitempty"`
}

type WireHandSettlement struct {
	Hand   int    `json:"hand"`
	Result string `json:"result"`
	Bet    int64  `json:"bet"`
	Payout int64  `json:"payout"`
}

type WireSettlement struct {
	Hands           []WireHandSettlement `json:"hands"`
	DealerSum       int                  `json:"dealer_sum"`
	DealerBlackjack bool                 `json:"dealer_blackjack,omitempty"`
	DealerBusted    bool                 `json:"dealer_busted,omitempty"`
	TotalPayout     int64                `json:"total_payout"`
	Balance         int64                `json:"balance"`
}

func toWireEvent(e blackjack.Event) *WireEvent {
	out := &WireEvent{
		Type:   string(e.Type),
		Hand:   e.Hand,
		Dealer: e.Dealer,
		Amount: e.Amount,
		Phase:  phaseName(e.Phase),
	}
	if e.Card != card.CardInvalid {
		out.Card = e.Card.String()
	}
	if e.Result != blackjack.ResultNone {
		out.Result = blackjack.ResultDictionary[e.Result]
	}
	return out
}

func toWireHand(h blackjack.HandSnapshot) WireHand {
	out := WireHand{
		Sum:    h.Sum,
		Bet:    h.Bet,
		Result: blackjack.ResultDictionary[h.Result],
		Cards:  make([]string, 0, len(h.Cards)),
	}
	for _, hc := range h.Cards {
		out.Cards = append(out.Cards, hc.Card.String())
	}
	return out
}

func toWireState(snap blackjack.Snapshot) *WireState {
	out := &WireState{
		Round:      snap.Round,
		Phase:      phaseName(snap.Phase),
		ActiveHand: snap.ActiveHand,
		Dealer:     toWireHand(snap.DealerHand),
		Balance:    snap.Balance,
		GameOver:   snap.GameOver,
		Hands:      make([]WireHand, 0, len(snap.Hands)),
	}
	for _, h := range snap.Hands {
		out.Hands = append(out.Hands, toWireHand(h))
	}
	return out
}

func toWireSettlement(s *blackjack.SettlementResult) *WireSettlement {
	if s == nil {
		return nil
	}
	out := &WireSettlement{
		DealerSum:       s.DealerSum,
		DealerBlackjack: s.DealerBlackjack,
		DealerBusted:    s.DealerBusted,
		TotalPayout:     s.TotalPayout,
		Balance:         s.Balance,
		Hands:           make([]WireHandSettlement, 0, len(s.Hands)),
	}
	for _, h := range s.Hands {
		out.Hands = append(out.Hands, WireHandSettlement{
			Hand:   h.HandIndex,
			Result: blackjack.ResultDictionary[h.Result],
			Bet:    h.Bet,
			Payout: h.Payout,
		})
	}
	return out
}
