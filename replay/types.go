package replay

// RoundSpec scripts a single round: the stake, the draw order and the
// player actions in sequence. Decks and Balance default when omitted.
// The draw order must be pinned one way or the other, either by a fixed
// Deck or by a nonzero RNG seed; an unpinned replay proves nothing.
type RoundSpec struct {
	Decks   int      `json:"decks,omitempty"`
	Balance int64    `json:"balance,omitempty"`
	Bet     int64    `json:"bet"`
	Deck    []string `json:"deck"`
	Actions []string `json:"actions"`
	RNG     *RNGSpec `json:"rng,omitempty"`
}

type RNGSpec struct {
	Seed int64 `json:"seed"`
}

// RoundTape is the deterministic transcript a scripted round produces:
// every engine event in order, a table state after each step, and the
// settlement at the end.
type RoundTape struct {
	TapeVersion int        `json:"tape_version"`
	TableID     string     `json:"table_id"`
	Steps       []TapeStep `json:"steps"`
}

type TapeStep struct {
	Type       string          `json:"type"`
	Seq        uint64          `json:"seq"`
	Event      *WireEvent      `json:"event,omitempty"`
	State      *WireState      `json:"state,omitempty"`
	Settlement *WireSettlement `json:"settlement,omitempty"`
}
