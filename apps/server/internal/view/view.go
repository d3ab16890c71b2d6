// Package view renders engine snapshots for clients. It is the one place
// that enforces the table convention: the dealer's hole card stays hidden
// until the dealer turn starts.
package view

import (
	"blackjack-lite/blackjack"
	"blackjack-lite/card"
)

type CardView struct {
	Card  string `json:"card"`
	Value int    `json:"value"`
}

type HandView struct {
	Cards  []CardView `json:"cards"`
	Sum    int        `json:"sum"`
	Bet    int64      `json:"bet,omitempty"`
	Result string     `json:"result"`
}

type TableView struct {
	Round          uint16     `json:"round"`
	Phase          string     `json:"phase"`
	Hands          []HandView `json:"hands"`
	ActiveHand     int        `json:"activeHand"`
	Dealer         HandView   `json:"dealer"`
	DealerRevealed bool       `json:"dealerRevealed"`
	Balance        int64      `json:"balance"`
	StagedBet      int64      `json:"stagedBet"`
	ShoeRemaining  int        `json:"shoeRemaining"`
	LegalActions   []string   `json:"legalActions"`
	ChipValues     []int64    `json:"chipValues"`
	GameOver       bool       `json:"gameOver,omitempty"`
}

type EventView struct {
	Type   string `json:"type"`
	Hand   int    `json:"hand"`
	Dealer bool   `json:"dealer,omitempty"`
	Card   string `json:"card,omitempty"`
	Amount int64  `json:"amount,omitempty"`
	Result string `json:"result,omitempty"`
}

func buildHand(h blackjack.HandSnapshot) HandView {
	out := HandView{
		Sum:    h.Sum,
		Bet:    h.Bet,
		Result: blackjack.ResultDictionary[h.Result],
		Cards:  make([]CardView, 0, len(h.Cards)),
	}
	for _, hc := range h.Cards {
		out.Cards = append(out.Cards, CardView{Card: hc.Card.String(), Value: hc.Value})
	}
	return out
}

// buildHiddenDealer shows the up card and a face-down placeholder; the
// visible sum counts the up card alone.
func buildHiddenDealer(h blackjack.HandSnapshot) HandView {
	out := HandView{Result: blackjack.ResultDictionary[blackjack.ResultNone]}
	if len(h.Cards) == 0 {
		return out
	}
	up := h.Cards[0]
	out.Cards = append(out.Cards, CardView{Card: up.Card.String(), Value: up.Value})
	out.Sum = up.Value
	for range h.Cards[1:] {
		out.Cards = append(out.Cards, CardView{Card: card.CardRear.String()})
	}
	return out
}

func BuildTableView(snap blackjack.Snapshot, legal []blackjack.ActionType) TableView {
	out := TableView{
		Round:          snap.Round,
		Phase:          blackjack.PhaseDictionary[snap.Phase],
		ActiveHand:     snap.ActiveHand,
		DealerRevealed: snap.DealerRevealed,
		Balance:        snap.Balance,
		StagedBet:      snap.StagedBet,
		ShoeRemaining:  snap.ShoeRemaining,
		ChipValues:     blackjack.ChipValues,
		GameOver:       snap.GameOver,
		Hands:          make([]HandView, 0, len(snap.Hands)),
		LegalActions:   make([]string, 0, len(legal)),
	}
	for _, h := range snap.Hands {
		out.Hands = append(out.Hands, buildHand(h))
	}
	if snap.DealerRevealed {
		out.Dealer = buildHand(snap.DealerHand)
	} else {
		out.Dealer = buildHiddenDealer(snap.DealerHand)
	}
	for _, a := range legal {
		out.LegalActions = append(out.LegalActions, blackjack.PlayerActionTypeDictionary[a])
	}
	return out
}

func BuildEvents(events []blackjack.Event) []EventView {
	out := make([]EventView, 0, len(events))
	for _, e := range events {
		ev := EventView{
			Type:   string(e.Type),
			Hand:   e.Hand,
			Dealer: e.Dealer,
			Amount: e.Amount,
		}
		if e.Card != card.CardInvalid {
			ev.Card = e.Card.String()
		}
		if e.Result != blackjack.ResultNone {
			ev.Result = blackjack.ResultDictionary[e.Result]
		}
		out = append(out, ev)
	}
	return out
}
