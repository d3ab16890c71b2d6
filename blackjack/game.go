package blackjack

import (
	"math/rand"
	"sync"
	"time"

	"blackjack-lite/card"
)

// Game is the round engine for a single-seat blackjack table. Every entry
// point is synchronous and guarded by one mutex, so reshuffle-and-draw and
// every other mutation is a single atomic step.
type Game struct {
	cfg Config
	rng *rand.Rand

	mu sync.Mutex

	shoe   *Shoe
	player *Player
	dealer *Dealer
	chips  *ChipStack

	round uint16
	phase Phase

	lastAction     ActionType
	lastSettlement *SettlementResult
	gameOver       bool

	listener Listener
}

func NewGame(cfg Config) (*Game, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		player: NewPlayer(),
		dealer: NewDealer(),
		chips:  NewChipStack(cfg.InitialBalance),
		phase:  PhaseAwaitingBet,
	}
	if len(cfg.DeckOverride) > 0 {
		g.shoe = newFixedShoe(cfg.DeckOverride)
	} else {
		g.shoe = newShoe(cfg.Decks, g.rng)
	}
	return g, nil
}

// SetListener registers the presentation callback. Set it before play
// starts; it runs with the game mutex held and must not call back in.
func (g *Game) SetListener(fn Listener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listener = fn
}

func (g *Game) emitLocked(e Event) {
	if g.listener == nil {
		return
	}
	e.Phase = g.phase
	g.listener(e)
}

// LastSettlement returns the most recent round's settlement, or nil while
// a round is open.
func (g *Game) LastSettlement() *SettlementResult {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastSettlement
}

// IncreaseBet stages amount chips onto the coming round's bet.
func (g *Game) IncreaseBet(amount int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameOver {
		return ErrGameOver
	}
	if g.phase != PhaseAwaitingBet {
		return ErrRoundInProgress
	}
	if err := g.chips.IncreaseBet(amount); err != nil {
		return err
	}
	g.emitLocked(Event{Type: EventBetStaged, Amount: g.chips.Bet()})
	return nil
}

// RestartBet cancels the staged bet before the deal.
func (g *Game) RestartBet() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseAwaitingBet {
		return ErrRoundInProgress
	}
	g.chips.RestartBet()
	g.emitLocked(Event{Type: EventBetCancelled})
	return nil
}

// Deal locks the staged bet in and opens the round: two cards to the
// player and two to the dealer in strict alternation, the dealer's second
// face down. A natural settles on the spot without any dealer play.
func (g *Game) Deal() (*SettlementResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameOver {
		return nil, ErrGameOver
	}
	if g.phase != PhaseAwaitingBet {
		return nil, ErrRoundInProgress
	}
	if g.chips.Bet() <= 0 {
		return nil, ErrNoBet
	}

	g.round++
	bet := g.chips.takeBet()
	g.player.resetForNewRound(bet)
	g.dealer.resetForNewRound()
	g.lastSettlement = nil
	g.lastAction = PlayerActionTypeNone

	g.phase = PhasePlayerTurn
	g.emitLocked(Event{Type: EventRoundStarted, Amount: bet})

	first := g.player.hands[0]
	g.dealToHandLocked(first, 0)
	g.dealToDealerLocked()
	g.dealToHandLocked(first, 0)

	hole := g.drawLocked()
	g.dealer.Hand().AddCard(hole)
	g.emitLocked(Event{Type: EventHoleCard, Dealer: true})

	if first.evaluate() != ResultNone {
		g.emitLocked(Event{Type: EventHandFinished, Hand: 0, Result: first.Result()})
		return g.settleLocked(), nil
	}
	return nil, nil
}

// Hit draws one card into the active hand.
func (g *Game) Hit() (*SettlementResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	hand, err := g.requireLegalLocked(PlayerActionTypeHit)
	if err != nil {
		return nil, err
	}
	g.lastAction = PlayerActionTypeHit
	g.dealToHandLocked(hand, g.player.ActiveHandIndex())

	if hand.evaluate() != ResultNone {
		g.emitLocked(Event{Type: EventHandFinished, Hand: g.player.ActiveHandIndex(), Result: hand.Result()})
		return g.advanceTurnLocked()
	}
	return nil, nil
}

// Stand ends play on the active hand without drawing. The hand keeps
// result None and meets the dealer at settlement.
func (g *Game) Stand() (*SettlementResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	hand, err := g.requireLegalLocked(PlayerActionTypeStand)
	if err != nil {
		return nil, err
	}
	g.lastAction = PlayerActionTypeStand
	hand.evaluate()
	hand.changeAceIfNotSplit()
	g.emitLocked(Event{Type: EventHandFinished, Hand: g.player.ActiveHandIndex(), Result: hand.Result()})
	return g.advanceTurnLocked()
}

// DoubleDown doubles the bet for exactly one more card, then the hand is
// done.
func (g *Game) DoubleDown() (*SettlementResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	hand, err := g.requireLegalLocked(PlayerActionTypeDouble)
	if err != nil {
		return nil, err
	}
	bet := hand.CurrentBet()
	if err := g.chips.debit(bet); err != nil {
		return nil, err
	}
	g.lastAction = PlayerActionTypeDouble

	g.dealToHandLocked(hand, g.player.ActiveHandIndex())
	hand.setCurrentBet(2 * bet)

	hand.evaluate()
	hand.changeAceIfNotSplit()
	g.emitLocked(Event{Type: EventHandFinished, Hand: g.player.ActiveHandIndex(), Result: hand.Result()})
	return g.advanceTurnLocked()
}

// Split breaks a two-card pair into two hands, each taking a fresh card
// and carrying the original bet. The cursor returns to hand 0.
func (g *Game) Split() (*SettlementResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	first, err := g.requireLegalLocked(PlayerActionTypeSplit)
	if err != nil {
		return nil, err
	}
	bet := first.CurrentBet()
	if err := g.chips.debit(bet); err != nil {
		return nil, err
	}
	g.lastAction = PlayerActionTypeSplit

	moved, err := first.RemoveSecondCard()
	if err != nil {
		return nil, err
	}
	second := &Hand{}
	second.AddCard(moved)
	second.setCurrentBet(bet)
	g.player.hands = append(g.player.hands, second)

	for i, h := range g.player.hands {
		g.dealToHandLocked(h, i)
	}
	g.player.activeHandIndex = 0

	first.evaluate()
	second.evaluate()
	if second.Result() != ResultNone {
		g.emitLocked(Event{Type: EventHandFinished, Hand: 1, Result: second.Result()})
	}
	if first.Result() != ResultNone {
		g.emitLocked(Event{Type: EventHandFinished, Hand: 0, Result: first.Result()})
		return g.advanceTurnLocked()
	}
	return nil, nil
}

// Surrender forfeits the hand for half the stake back. Only legal as the
// first action on an unsplit two-card hand.
func (g *Game) Surrender() (*SettlementResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	hand, err := g.requireLegalLocked(PlayerActionTypeSurrender)
	if err != nil {
		return nil, err
	}
	g.lastAction = PlayerActionTypeSurrender
	hand.setResult(ResultSurrendered)
	g.emitLocked(Event{Type: EventHandFinished, Hand: g.player.ActiveHandIndex(), Result: ResultSurrendered})
	return g.advanceTurnLocked()
}

// NextRound clears the table for a fresh bet.
func (g *Game) NextRound() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gameOver {
		return ErrGameOver
	}
	if g.phase != PhaseSettled {
		return ErrInvalidState("round not settled")
	}
	g.player.clearHands()
	g.dealer.resetForNewRound()
	g.lastAction = PlayerActionTypeNone
	g.phase = PhaseAwaitingBet
	g.emitLocked(Event{Type: EventNewRound})
	return nil
}

// LegalActions is a pure projection of what the active hand may do.
func (g *Game) LegalActions() []ActionType {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.legalActionsLocked()
}

func (g *Game) legalActionsLocked() []ActionType {
	if g.gameOver || g.phase != PhasePlayerTurn {
		return nil
	}
	hand := g.player.activeHand()
	if hand == nil || hand.Result() != ResultNone {
		return nil
	}
	acts := []ActionType{PlayerActionTypeHit, PlayerActionTypeStand}
	if hand.Count() == 2 && g.chips.Balance() >= hand.CurrentBet() {
		acts = append(acts, PlayerActionTypeDouble)
	}
	if len(g.player.hands) == 1 && hand.CanSplit() && g.chips.Balance() >= hand.CurrentBet() {
		acts = append(acts, PlayerActionTypeSplit)
	}
	if len(g.player.hands) == 1 && hand.Count() == 2 {
		acts = append(acts, PlayerActionTypeSurrender)
	}
	return acts
}

func (g *Game) requireLegalLocked(a ActionType) (*Hand, error) {
	if g.gameOver {
		return nil, ErrGameOver
	}
	if g.phase != PhasePlayerTurn {
		return nil, ErrInvalidState("no player turn in progress")
	}
	for _, legal := range g.legalActionsLocked() {
		if legal == a {
			return g.player.activeHand(), nil
		}
	}
	return nil, ErrIllegalAction
}

// advanceTurnLocked moves the cursor to the next live hand, or hands the
// round to the dealer. Explicit loop: consecutive already-terminal hands
// are skipped without recursion.
func (g *Game) advanceTurnLocked() (*SettlementResult, error) {
	for g.player.activeHandIndex+1 < len(g.player.hands) {
		g.player.activeHandIndex++
		g.emitLocked(Event{Type: EventHandActivated, Hand: g.player.activeHandIndex})
		if g.player.activeHand().Result() == ResultNone {
			return nil, nil
		}
	}
	return g.dealerTurnLocked(), nil
}

// dealerTurnLocked reveals the hole card, runs the dealer policy and
// settles. The dealer sits out when hand 0 was surrendered. Only hand 0
// is checked, deliberately matching the table rule this engine inherited.
func (g *Game) dealerTurnLocked() *SettlementResult {
	g.phase = PhaseDealerTurn
	dealerCards := g.dealer.Hand().Cards()
	if len(dealerCards) > 1 {
		g.emitLocked(Event{Type: EventDealerReveal, Dealer: true, Card: dealerCards[1].Card})
	}

	if g.player.hands[0].Result() != ResultSurrendered {
		g.dealer.playTurn(func() card.Card {
			c := g.drawLocked()
			g.emitLocked(Event{Type: EventDealerCard, Dealer: true, Card: c})
			return c
		})
	}
	g.player.activeHandIndex = 0
	return g.settleLocked()
}

func (g *Game) drawLocked() card.Card {
	before := g.shoe.Reshuffles()
	c := g.shoe.Draw()
	if g.shoe.Reshuffles() != before {
		g.emitLocked(Event{Type: EventShoeReshuffled})
	}
	return c
}

func (g *Game) dealToHandLocked(h *Hand, idx int) {
	c := g.drawLocked()
	h.AddCard(c)
	g.emitLocked(Event{Type: EventCardDealt, Hand: idx, Card: c})
}

func (g *Game) dealToDealerLocked() {
	c := g.drawLocked()
	g.dealer.Hand().AddCard(c)
	g.emitLocked(Event{Type: EventCardDealt, Dealer: true, Card: c})
}
