package blackjack

import "blackjack-lite/card"

// EventType names a thing the engine just did. The presentation layer
// subscribes through Game.SetListener and re-renders; the engine never
// waits on a subscriber.
type EventType string

const (
	EventBetStaged      EventType = "bet_staged"
	EventBetCancelled   EventType = "bet_cancelled"
	EventRoundStarted   EventType = "round_started"
	EventCardDealt      EventType = "card_dealt"
	EventHoleCard       EventType = "hole_card"
	EventHandFinished   EventType = "hand_finished"
	EventHandActivated  EventType = "hand_activated"
	EventShoeReshuffled EventType = "shoe_reshuffled"
	EventDealerReveal   EventType = "dealer_reveal"
	EventDealerCard     EventType = "dealer_card"
	EventRoundSettled   EventType = "round_settled"
	EventNewRound       EventType = "new_round"
	EventGameOver       EventType = "game_over"
)

// Event carries the minimum a renderer needs. The hole card is announced
// as EventHoleCard without its identity; EventDealerReveal names it later.
type Event struct {
	Type   EventType `json:"type"`
	Hand   int       `json:"hand,omitempty"`
	Dealer bool      `json:"dealer,omitempty"`
	Card   card.Card `json:"card,omitempty"`
	Amount int64     `json:"amount,omitempty"`
	Result Result    `json:"result,omitempty"`
	Phase  Phase     `json:"phase"`
}

// Listener receives events synchronously with the game mutex held; it must
// not call back into the Game.
type Listener func(Event)
