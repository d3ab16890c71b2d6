package blackjack

import "blackjack-lite/card"

// Phase is the round engine's position in the state machine.
type Phase byte

const (
	PhaseAwaitingBet Phase = 0
	PhasePlayerTurn  Phase = 1
	PhaseDealerTurn  Phase = 2
	PhaseSettled     Phase = 3
)

var PhaseDictionary = map[Phase]string{
	PhaseAwaitingBet: "awaiting_bet",
	PhasePlayerTurn:  "player_turn",
	PhaseDealerTurn:  "dealer_turn",
	PhaseSettled:     "settled",
}

// Result is the terminal outcome of a single hand.
type Result byte

const (
	ResultNone        Result = 0
	ResultBlackjack   Result = 1
	ResultWin         Result = 2
	ResultTie         Result = 3
	ResultLose        Result = 4
	ResultSurrendered Result = 5
)

var ResultDictionary = map[Result]string{
	ResultNone:        "NONE",
	ResultBlackjack:   "BLACKJACK",
	ResultWin:         "WIN",
	ResultTie:         "TIE",
	ResultLose:        "LOSE",
	ResultSurrendered: "SURRENDERED",
}

// ActionType is a player action code: 0-NONE 1-HIT 2-STAND 3-DOUBLE 4-SPLIT 5-SURRENDER
type ActionType byte

const (
	PlayerActionTypeNone      ActionType = 0
	PlayerActionTypeHit       ActionType = 1
	PlayerActionTypeStand     ActionType = 2
	PlayerActionTypeDouble    ActionType = 3
	PlayerActionTypeSplit     ActionType = 4
	PlayerActionTypeSurrender ActionType = 5
)

var PlayerActionTypeDictionary = map[ActionType]string{
	PlayerActionTypeNone:      "NONE",
	PlayerActionTypeHit:       "HIT",
	PlayerActionTypeStand:     "STAND",
	PlayerActionTypeDouble:    "DOUBLE",
	PlayerActionTypeSplit:     "SPLIT",
	PlayerActionTypeSurrender: "SURRENDER",
}

// The dealer stands at 17 or better.
const dealerStandSum = 17

// StandardDeck is one 52-card deck in fixed order; the shoe holds
// Config.Decks copies of it.
var StandardDeck = []card.Card{
	card.CardSpadeA, card.CardSpade2, card.CardSpade3, card.CardSpade4, card.CardSpade5, card.CardSpade6,
	card.CardSpade7, card.CardSpade8, card.CardSpade9, card.CardSpadeT, card.CardSpadeJ, card.CardSpadeQ, card.CardSpadeK,
	card.CardHeartA, card.CardHeart2, card.CardHeart3, card.CardHeart4, card.CardHeart5, card.CardHeart6,
	card.CardHeart7, card.CardHeart8, card.CardHeart9, card.CardHeartT, card.CardHeartJ, card.CardHeartQ, card.CardHeartK,
	card.CardClubA, card.CardClub2, card.CardClub3, card.CardClub4, card.CardClub5, card.CardClub6,
	card.CardClub7, card.CardClub8, card.CardClub9, card.CardClubT, card.CardClubJ, card.CardClubQ, card.CardClubK,
	card.CardDiamondA, card.CardDiamond2, card.CardDiamond3, card.CardDiamond4, card.CardDiamond5, card.CardDiamond6,
	card.CardDiamond7, card.CardDiamond8, card.CardDiamond9, card.CardDiamondT, card.CardDiamondJ, card.CardDiamondQ, card.CardDiamondK,
}
