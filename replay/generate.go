package replay

import (
	"fmt"

	"blackjack-lite/blackjack"
)

const defaultTableID = "replay_local"

// GenerateRoundTape plays the scripted round against a real engine and
// records everything it emits. The script must be exact: an action the
// table would refuse, an action after settlement, or a settled round
// left without one all fail with a ReplayError naming the step.
func GenerateRoundTape(spec RoundSpec) (tape *RoundTape, err error) {
	ns, nErr := normalizeSpec(spec)
	if nErr != nil {
		return nil, nErr
	}

	game, gErr := blackjack.NewGame(blackjack.Config{
		Decks:          ns.decks,
		InitialBalance: ns.balance,
		Seed:           seedFromSpec(spec.RNG),
		DeckOverride:   ns.deck,
	})
	if gErr != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "engine_init_failed", Message: gErr.Error()}
	}

	builder := newTapeBuilder(defaultTableID)
	game.SetListener(builder.addEvent)

	// A fixed deck panics when the script draws past its end; surface
	// that as a step-indexed error instead of killing the caller.
	step := int32(-1)
	defer func() {
		if r := recover(); r != nil {
			tape = nil
			err = &ReplayError{
				StepIndex: step,
				Reason:    "deck_exhausted",
				Message:   fmt.Sprintf("the fixed deck ran out of cards: %v", r),
			}
		}
	}()

	if bErr := game.IncreaseBet(ns.bet); bErr != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "bet_failed", Message: bErr.Error()}
	}
	settled, dErr := game.Deal()
	if dErr != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "deal_failed", Message: dErr.Error()}
	}
	builder.addState(game.Snapshot())

	for stepIdx, action := range ns.actions {
		step = int32(stepIdx)
		if settled != nil {
			return nil, &ReplayError{
				StepIndex: step,
				Reason:    "no_action_expected",
				Message:   "round is already settled; no further actions are allowed",
			}
		}
		if !isLegalAction(game, action) {
			return nil, &ReplayError{
				StepIndex: step,
				Reason:    "illegal_action",
				Message:   fmt.Sprintf("action %s is not legal for the active hand", actionName(action)),
				Expected:  expectedState(game),
			}
		}

		settled, err = applyAction(game, action)
		if err != nil {
			return nil, &ReplayError{
				StepIndex: step,
				Reason:    "action_apply_failed",
				Message:   err.Error(),
				Expected:  expectedState(game),
			}
		}
		builder.addState(game.Snapshot())
	}

	if settled == nil {
		return nil, &ReplayError{
			StepIndex: int32(len(ns.actions)),
			Reason:    "incomplete_script",
			Message:   "actions ran out before the round settled",
			Expected:  expectedState(game),
		}
	}
	builder.addSettlement(settled)

	return &RoundTape{
		TapeVersion: 1,
		TableID:     builder.tableID,
		Steps:       builder.steps,
	}, nil
}

func applyAction(g *blackjack.Game, a blackjack.ActionType) (*blackjack.SettlementResult, error) {
	switch a {
	case blackjack.PlayerActionTypeHit:
		return g.Hit()
	case blackjack.PlayerActionTypeStand:
		return g.Stand()
	case blackjack.PlayerActionTypeDouble:
		return g.DoubleDown()
	case blackjack.PlayerActionTypeSplit:
		return g.Split()
	case blackjack.PlayerActionTypeSurrender:
		return g.Surrender()
	default:
		return nil, fmt.Errorf("unhandled action %d", a)
	}
}

func isLegalAction(g *blackjack.Game, a blackjack.ActionType) bool {
	for _, legal := range g.LegalActions() {
		if legal == a {
			return true
		}
	}
	return false
}

func expectedState(g *blackjack.Game) *ExpectedState {
	legal := g.LegalActions()
	names := make([]string, 0, len(legal))
	for _, a := range legal {
		names = append(names, actionName(a))
	}
	return &ExpectedState{
		Phase:        phaseName(g.Snapshot().Phase),
		LegalActions: names,
	}
}

type tapeBuilder struct {
	tableID string
	seq     uint64
	steps   []TapeStep
}

func newTapeBuilder(tableID string) *tapeBuilder {
	return &tapeBuilder{
		tableID: tableID,
		steps:   make([]TapeStep, 0, 32),
	}
}

func (b *tapeBuilder) push(step TapeStep) {
	b.seq++
	step.Seq = b.seq
	b.steps = append(b.steps, step)
}

// addEvent runs as the engine listener, inside the game lock; it only
// appends and never calls back into the game.
func (b *tapeBuilder) addEvent(e blackjack.Event) {
	b.push(TapeStep{Type: string(e.Type), Event: toWireEvent(e)})
}

func (b *tapeBuilder) addState(snap blackjack.Snapshot) {
	b.push(TapeStep{Type: "state", State: toWireState(snap)})
}

func (b *tapeBuilder) addSettlement(s *blackjack.SettlementResult) {
	b.push(TapeStep{Type: "settlement", Settlement: toWireSettlement(s)})
}
