package blackjack

// Chip denominations offered at the table; MinChip is the smallest stake
// the table accepts. A balance below it after settlement ends the session.
var ChipValues = []int64{5, 10, 25, 100}

const MinChip int64 = 5

// ChipStack is the player's bankroll: chips still available plus the bet
// being assembled before the deal. Exactly one exists per session and the
// Game owns it. Money is conserved: between bet lock-in and payout,
// balance + staged bet + every hand's bet is a constant.
type ChipStack struct {
	balance int64
	bet     int64
}

func NewChipStack(balance int64) *ChipStack {
	return &ChipStack{balance: balance}
}

func (cs *ChipStack) Balance() int64 { return cs.balance }
func (cs *ChipStack) Bet() int64     { return cs.bet }

// IncreaseBet moves amount from the balance onto the staged bet.
func (cs *ChipStack) IncreaseBet(amount int64) error {
	if amount <= 0 {
		return ErrInvalidState("bet amount must be positive")
	}
	if amount > cs.balance {
		return ErrInsufficientChips
	}
	cs.bet += amount
	cs.balance -= amount
	return nil
}

// RestartBet cancels the staged bet and restores it to the balance.
func (cs *ChipStack) RestartBet() {
	cs.balance += cs.bet
	cs.bet = 0
}

// takeBet locks the staged bet in: it leaves the stack and rides on a hand.
func (cs *ChipStack) takeBet() int64 {
	bet := cs.bet
	cs.bet = 0
	return bet
}

// debit removes chips committed to a double or a split.
func (cs *ChipStack) debit(amount int64) error {
	if amount > cs.balance {
		return ErrInsufficientChips
	}
	cs.balance -= amount
	return nil
}

func (cs *ChipStack) credit(amount int64) {
	cs.balance += amount
}

// Busted reports whether the stack can no longer cover the smallest chip.
func (cs *ChipStack) Busted() bool {
	return cs.balance+cs.bet < MinChip
}
