package blackjack

// Player holds the one or two hands in play and the cursor over them.
// The five table actions are Game entry points; the Game owns turn order,
// the shoe and the chips, so the Player stays a plain hands container.
type Player struct {
	hands           []*Hand
	activeHandIndex int
}

func NewPlayer() *Player { return &Player{} }

func (p *Player) Hands() []*Hand { return p.hands }

func (p *Player) ActiveHandIndex() int { return p.activeHandIndex }

func (p *Player) activeHand() *Hand {
	if p.activeHandIndex >= len(p.hands) {
		return nil
	}
	return p.hands[p.activeHandIndex]
}

func (p *Player) resetForNewRound(bet int64) {
	for _, h := range p.hands {
		h.Clear()
	}
	first := &Hand{}
	first.setCurrentBet(bet)
	p.hands = []*Hand{first}
	p.activeHandIndex = 0
}

func (p *Player) clearHands() {
	for _, h := range p.hands {
		h.Clear()
	}
	p.hands = nil
	p.activeHandIndex = 0
}
