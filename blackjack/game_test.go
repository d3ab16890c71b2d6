package blackjack

import (
	"errors"
	"testing"

	"blackjack-lite/card"
)

// deal order is player, dealer, player, dealer hole; every card after
// the fourth belongs to whoever draws next.
func fixedGame(t *testing.T, balance int64, deck ...card.Card) *Game {
	t.Helper()
	g, err := NewGame(Config{InitialBalance: balance, DeckOverride: deck})
	if err != nil {
		t.Fatalf("NewGame err: %v", err)
	}
	return g
}

func mustBetAndDeal(t *testing.T, g *Game, bet int64) *SettlementResult {
	t.Helper()
	if err := g.IncreaseBet(bet); err != nil {
		t.Fatalf("IncreaseBet err: %v", err)
	}
	settled, err := g.Deal()
	if err != nil {
		t.Fatalf("Deal err: %v", err)
	}
	return settled
}

func hasAction(acts []ActionType, a ActionType) bool {
	for _, x := range acts {
		if x == a {
			return true
		}
	}
	return false
}

func TestStandOnNineteenWins(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpadeT, card.CardHeart6, card.CardSpade9, card.CardDiamondT,
		card.CardClub2)
	if settled := mustBetAndDeal(t, g, 100); settled != nil {
		t.Fatal("round must stay open after a plain deal")
	}

	settled, err := g.Stand()
	if err != nil {
		t.Fatalf("Stand err: %v", err)
	}
	if settled == nil {
		t.Fatal("expected the stand to settle the round")
	}
	if settled.Hands[0].Result != ResultWin {
		t.Fatalf("expected WIN, got %s", ResultDictionary[settled.Hands[0].Result])
	}
	if settled.DealerSum != 18 {
		t.Fatalf("expected dealer to stop at 18, got %d", settled.DealerSum)
	}
	if settled.TotalPayout != 200 || settled.Balance != 1100 {
		t.Fatalf("expected payout 200 / balance 1100, got %d / %d",
			settled.TotalPayout, settled.Balance)
	}

	snap := g.Snapshot()
	if snap.Phase != PhaseSettled || !snap.DealerRevealed {
		t.Fatalf("expected a settled, revealed table, got phase=%s revealed=%v",
			PhaseDictionary[snap.Phase], snap.DealerRevealed)
	}
}

func TestNaturalBlackjackSettlesOnTheDeal(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpadeA, card.CardHeart5, card.CardSpadeK, card.CardDiamond9)

	settled := mustBetAndDeal(t, g, 100)
	if settled == nil {
		t.Fatal("a natural must settle inside Deal")
	}
	if settled.Hands[0].Result != ResultBlackjack {
		t.Fatalf("expected BLACKJACK, got %s", ResultDictionary[settled.Hands[0].Result])
	}
	if settled.TotalPayout != 250 || settled.Balance != 1150 {
		t.Fatalf("expected 3:2 payout 250 / balance 1150, got %d / %d",
			settled.TotalPayout, settled.Balance)
	}
	if g.Snapshot().ShoeRemaining != 0 {
		t.Fatal("the dealer must not draw against a settled natural")
	}
	if got := g.LastSettlement(); got == nil || got.TotalPayout != 250 {
		t.Fatalf("LastSettlement mismatch: %+v", got)
	}
}

func TestDealerNaturalBeatsTwenty(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpadeT, card.CardHeartA, card.CardHeartT, card.CardHeartK)
	mustBetAndDeal(t, g, 100)

	settled, err := g.Stand()
	if err != nil {
		t.Fatalf("Stand err: %v", err)
	}
	if !settled.DealerBlackjack {
		t.Fatal("expected a dealer natural")
	}
	if settled.Hands[0].Result != ResultLose || settled.Balance != 900 {
		t.Fatalf("expected LOSE at balance 900, got %s / %d",
			ResultDictionary[settled.Hands[0].Result], settled.Balance)
	}
}

func TestPushReturnsTheStake(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpadeT, card.CardHeartT, card.CardSpade9, card.CardHeart9)
	mustBetAndDeal(t, g, 100)

	settled, err := g.Stand()
	if err != nil {
		t.Fatalf("Stand err: %v", err)
	}
	if settled.Hands[0].Result != ResultTie || settled.Balance != 1000 {
		t.Fatalf("expected TIE at balance 1000, got %s / %d",
			ResultDictionary[settled.Hands[0].Result], settled.Balance)
	}
}

func TestDoubleDownTakesOneCardAndDoublesTheStake(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpade9, card.CardHeart5, card.CardSpade2, card.CardDiamondT,
		card.CardClub9, card.CardSpade6)
	mustBetAndDeal(t, g, 100)

	if acts := g.LegalActions(); !hasAction(acts, PlayerActionTypeDouble) {
		t.Fatalf("double must be offered on a fresh two-card hand, got %v", acts)
	}
	settled, err := g.DoubleDown()
	if err != nil {
		t.Fatalf("DoubleDown err: %v", err)
	}
	if settled == nil {
		t.Fatal("a single-hand double must run through to settlement")
	}
	if settled.Hands[0].Bet != 200 {
		t.Fatalf("expected doubled stake 200, got %d", settled.Hands[0].Bet)
	}
	// Player 20 against a dealer 21: stake lost, nothing back.
	if settled.Hands[0].Result != ResultLose || settled.Balance != 800 {
		t.Fatalf("expected LOSE at balance 800, got %s / %d",
			ResultDictionary[settled.Hands[0].Result], settled.Balance)
	}
}

func TestDoubleNotOfferedWithoutCover(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpade9, card.CardHeart5, card.CardSpade2, card.CardDiamondT,
		card.CardClub9, card.CardSpade6)
	mustBetAndDeal(t, g, 600)

	acts := g.LegalActions()
	if hasAction(acts, PlayerActionTypeDouble) {
		t.Fatal("double needs the balance to cover a second stake")
	}
	if _, err := g.DoubleDown(); !errors.Is(err, ErrIllegalAction) {
		t.Fatalf("expected ErrIllegalAction, got %v", err)
	}
}

func TestSplitEightsPlaysTwoHands(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpade8, card.CardHeart5, card.CardDiamond8, card.CardDiamondT,
		card.CardClub2, card.CardClub3, card.CardHeart6)
	mustBetAndDeal(t, g, 100)

	if acts := g.LegalActions(); !hasAction(acts, PlayerActionTypeSplit) {
		t.Fatalf("a pair must offer split, got %v", acts)
	}
	if settled, err := g.Split(); err != nil || settled != nil {
		t.Fatalf("Split: settled=%v err=%v", settled, err)
	}

	snap := g.Snapshot()
	if len(snap.Hands) != 2 {
		t.Fatalf("expected two hands, got %d", len(snap.Hands))
	}
	if snap.Hands[0].Sum != 10 || snap.Hands[1].Sum != 11 {
		t.Fatalf("expected sums 10 and 11, got %d and %d", snap.Hands[0].Sum, snap.Hands[1].Sum)
	}
	if snap.Hands[0].Bet != 100 || snap.Hands[1].Bet != 100 {
		t.Fatalf("each split hand carries the original stake, got %d / %d",
			snap.Hands[0].Bet, snap.Hands[1].Bet)
	}
	// Conservation mid-round: 800 in the stack, 100 on each hand.
	if snap.Balance+snap.Hands[0].Bet+snap.Hands[1].Bet != 1000 {
		t.Fatalf("chips leaked: balance=%d", snap.Balance)
	}
	if acts := g.LegalActions(); hasAction(acts, PlayerActionTypeSurrender) || hasAction(acts, PlayerActionTypeSplit) {
		t.Fatalf("split hands can neither resplit nor surrender, got %v", acts)
	}

	if settled, err := g.Stand(); err != nil || settled != nil {
		t.Fatalf("first stand must pass the turn, got settled=%v err=%v", settled, err)
	}
	if g.Snapshot().ActiveHand != 1 {
		t.Fatalf("expected the cursor on hand 1, got %d", g.Snapshot().ActiveHand)
	}
	settled, err := g.Stand()
	if err != nil {
		t.Fatalf("second Stand err: %v", err)
	}
	if settled == nil || len(settled.Hands) != 2 {
		t.Fatalf("expected a two-hand settlement, got %+v", settled)
	}
	// Dealer 15 draws to 21; both hands lose.
	if settled.DealerSum != 21 || settled.Balance != 800 {
		t.Fatalf("expected dealer 21 / balance 800, got %d / %d",
			settled.DealerSum, settled.Balance)
	}
}

func TestSplitAcesBothLandNaturals(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpadeA, card.CardHeart5, card.CardDiamondA, card.CardDiamondT,
		card.CardSpadeK, card.CardSpadeQ, card.CardClub6)
	mustBetAndDeal(t, g, 100)

	settled, err := g.Split()
	if err != nil {
		t.Fatalf("Split err: %v", err)
	}
	if settled == nil {
		t.Fatal("two finished hands must run straight to the dealer")
	}
	for _, h := range settled.Hands {
		if h.Result != ResultBlackjack {
			t.Fatalf("hand %d: expected BLACKJACK, got %s", h.HandIndex, ResultDictionary[h.Result])
		}
		if h.Payout != 250 {
			t.Fatalf("hand %d: expected payout 250, got %d", h.HandIndex, h.Payout)
		}
	}
	// Two stakes out, two 3:2 payouts back.
	if settled.Balance != 1300 {
		t.Fatalf("expected balance 1300, got %d", settled.Balance)
	}
	// The dealer still plays out the 15 behind them.
	if settled.DealerSum != 21 {
		t.Fatalf("expected dealer 21, got %d", settled.DealerSum)
	}
}

func TestSurrenderHalvesTheStakeAndSkipsTheDealer(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpadeT, card.CardHeart6, card.CardSpade9, card.CardDiamondT)
	mustBetAndDeal(t, g, 100)

	var dealerDraws int
	g.SetListener(func(e Event) {
		if e.Type == EventDealerCard {
			dealerDraws++
		}
	})

	settled, err := g.Surrender()
	if err != nil {
		t.Fatalf("Surrender err: %v", err)
	}
	if settled.Hands[0].Result != ResultSurrendered {
		t.Fatalf("expected SURRENDERED, got %s", ResultDictionary[settled.Hands[0].Result])
	}
	if settled.TotalPayout != 50 || settled.Balance != 950 {
		t.Fatalf("expected half the stake back, got payout=%d balance=%d",
			settled.TotalPayout, settled.Balance)
	}
	if dealerDraws != 0 {
		t.Fatalf("the dealer sits out a surrendered round, drew %d", dealerDraws)
	}
	if g.Snapshot().ShoeRemaining != 0 {
		t.Fatal("no cards may leave the shoe after a surrender")
	}
}

func TestSurrenderOnlyAsFirstAction(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpade2, card.CardHeart6, card.CardSpade3, card.CardDiamondT,
		card.CardClub2)
	mustBetAndDeal(t, g, 100)

	if _, err := g.Hit(); err != nil {
		t.Fatalf("Hit err: %v", err)
	}
	if _, err := g.Surrender(); !errors.Is(err, ErrIllegalAction) {
		t.Fatalf("expected ErrIllegalAction after a hit, got %v", err)
	}
}

func TestHitUntilBustLosesImmediately(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpadeT, card.CardHeart6, card.CardSpade9, card.CardDiamondT,
		card.CardClub5, card.CardHeart2)
	mustBetAndDeal(t, g, 100)

	settled, err := g.Hit()
	if err != nil {
		t.Fatalf("Hit err: %v", err)
	}
	if settled == nil || settled.Hands[0].Result != ResultLose {
		t.Fatalf("a hard bust must settle as LOSE, got %+v", settled)
	}
	// The dealer still finishes the round against a busted hand.
	if settled.DealerSum < dealerStandSum {
		t.Fatalf("dealer stopped short at %d", settled.DealerSum)
	}
}

func TestLegalActionsNarrowAfterAHit(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpade2, card.CardHeart6, card.CardSpade3, card.CardDiamondT,
		card.CardClub2)
	mustBetAndDeal(t, g, 100)
	if _, err := g.Hit(); err != nil {
		t.Fatalf("Hit err: %v", err)
	}

	acts := g.LegalActions()
	if !hasAction(acts, PlayerActionTypeHit) || !hasAction(acts, PlayerActionTypeStand) {
		t.Fatalf("hit and stand stay open, got %v", acts)
	}
	if len(acts) != 2 {
		t.Fatalf("three-card hands only hit or stand, got %v", acts)
	}
}

func TestActionGuards(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpadeT, card.CardHeart6, card.CardSpade9, card.CardDiamondT,
		card.CardClub2)

	if _, err := g.Deal(); !errors.Is(err, ErrNoBet) {
		t.Fatalf("expected ErrNoBet, got %v", err)
	}
	var ise InvalidStateError
	if _, err := g.Hit(); !errors.As(err, &ise) {
		t.Fatalf("expected an invalid-state error outside the player turn, got %v", err)
	}

	mustBetAndDeal(t, g, 100)
	if err := g.IncreaseBet(25); !errors.Is(err, ErrRoundInProgress) {
		t.Fatalf("expected ErrRoundInProgress, got %v", err)
	}
	if _, err := g.Deal(); !errors.Is(err, ErrRoundInProgress) {
		t.Fatalf("expected ErrRoundInProgress, got %v", err)
	}
	if _, err := g.Split(); !errors.Is(err, ErrIllegalAction) {
		t.Fatalf("T-9 is not a pair, expected ErrIllegalAction, got %v", err)
	}
	if err := g.NextRound(); err == nil {
		t.Fatal("NextRound must fail before settlement")
	}
}

func TestRestartBetRefundsBeforeTheDeal(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpadeT, card.CardHeart6, card.CardSpade9, card.CardDiamondT)
	if err := g.IncreaseBet(250); err != nil {
		t.Fatalf("IncreaseBet err: %v", err)
	}
	if err := g.RestartBet(); err != nil {
		t.Fatalf("RestartBet err: %v", err)
	}
	snap := g.Snapshot()
	if snap.Balance != 1000 || snap.StagedBet != 0 {
		t.Fatalf("expected full refund, got balance=%d staged=%d", snap.Balance, snap.StagedBet)
	}
}

func TestNextRoundClearsTheTable(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpadeA, card.CardHeart5, card.CardSpadeK, card.CardDiamond9,
		card.CardSpadeT, card.CardHeart6, card.CardSpade9, card.CardDiamondT,
		card.CardClub2)
	mustBetAndDeal(t, g, 100)

	if err := g.NextRound(); err != nil {
		t.Fatalf("NextRound err: %v", err)
	}
	snap := g.Snapshot()
	if snap.Phase != PhaseAwaitingBet || len(snap.Hands) != 0 || snap.DealerHand.Sum != 0 {
		t.Fatalf("expected a cleared table, got %+v", snap)
	}

	settled := mustBetAndDeal(t, g, 100)
	if settled != nil {
		t.Fatal("second round must stay open after the deal")
	}
	settled, err := g.Stand()
	if err != nil {
		t.Fatalf("Stand err: %v", err)
	}
	if settled.Balance != 1250 {
		t.Fatalf("expected balance 1250 after natural then win, got %d", settled.Balance)
	}
	if g.Snapshot().Round != 2 {
		t.Fatalf("expected round 2, got %d", g.Snapshot().Round)
	}
}

func TestGameOverWhenTheStackCannotCoverAChip(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpadeT, card.CardHeartT, card.CardSpade9, card.CardDiamondJ)
	mustBetAndDeal(t, g, 1000)

	settled, err := g.Stand()
	if err != nil {
		t.Fatalf("Stand err: %v", err)
	}
	if settled.Balance != 0 {
		t.Fatalf("expected an empty stack, got %d", settled.Balance)
	}
	if !g.Snapshot().GameOver {
		t.Fatal("expected the session flagged over")
	}
	if err := g.NextRound(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if err := g.IncreaseBet(5); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestEventStreamOfANatural(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpadeA, card.CardHeart5, card.CardSpadeK, card.CardDiamond9)

	var events []Event
	g.SetListener(func(e Event) { events = append(events, e) })
	mustBetAndDeal(t, g, 100)

	want := []EventType{
		EventBetStaged, EventRoundStarted,
		EventCardDealt, EventCardDealt, EventCardDealt, EventHoleCard,
		EventHandFinished, EventRoundSettled,
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %d: %+v", len(want), len(events), events)
	}
	for i, e := range events {
		if e.Type != want[i] {
			t.Fatalf("event %d: expected %s, got %s", i, want[i], e.Type)
		}
	}
	// The hole card is announced without its identity.
	if events[5].Card != card.CardInvalid || !events[5].Dealer {
		t.Fatalf("hole card event leaked: %+v", events[5])
	}
	if events[7].Amount != 250 {
		t.Fatalf("settlement event carries the payout, got %d", events[7].Amount)
	}
}

func TestDealerRevealEventNamesTheHoleCard(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpadeT, card.CardHeart6, card.CardSpade9, card.CardDiamondT,
		card.CardClub2)
	mustBetAndDeal(t, g, 100)

	var reveal *Event
	g.SetListener(func(e Event) {
		if e.Type == EventDealerReveal {
			copied := e
			reveal = &copied
		}
	})
	if _, err := g.Stand(); err != nil {
		t.Fatalf("Stand err: %v", err)
	}
	if reveal == nil || reveal.Card != card.CardDiamondT {
		t.Fatalf("expected the reveal to name %s, got %+v", card.CardDiamondT, reveal)
	}
}

func TestSnapshotIsDetachedFromTheEngine(t *testing.T) {
	g := fixedGame(t, 1000,
		card.CardSpadeT, card.CardHeart6, card.CardSpade9, card.CardDiamondT,
		card.CardClub2)
	mustBetAndDeal(t, g, 100)

	snap := g.Snapshot()
	snap.Hands[0].Cards[0].Value = 99
	if g.Snapshot().Hands[0].Cards[0].Value == 99 {
		t.Fatal("mutating a snapshot reached the engine")
	}
}

func TestConfigValidation(t *testing.T) {
	if _, err := NewGame(Config{Decks: 0, InitialBalance: 1000}); err == nil {
		t.Fatal("expected error on zero decks")
	}
	if _, err := NewGame(Config{Decks: 9, InitialBalance: 1000}); err == nil {
		t.Fatal("expected error on nine decks")
	}
	if _, err := NewGame(Config{Decks: 6, InitialBalance: 500}); err == nil {
		t.Fatal("expected error on a sub-minimum bankroll")
	}
	if _, err := NewGame(Config{InitialBalance: 1000, DeckOverride: []card.Card{card.CardSpadeA}}); err == nil {
		t.Fatal("expected error on a deck override too short to deal")
	}
	if _, err := NewGame(Config{Decks: 6, InitialBalance: 1000, Seed: 42}); err != nil {
		t.Fatalf("expected a valid config, got %v", err)
	}
}
