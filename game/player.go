package game

import (
	"github.com/minaorangina/phaseten/deck"
	"github.com/minaorangina/phaseten/phase"
	uuid "github.com/satori/go.uuid"
)

// NewID constructs a player or game ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player owns a hand and the claims for the phase they are working on
type Player struct {
	ID     string
	Name   string
	Hand   *deck.Hand
	Phase  int
	Claims []*phase.Claim
	Points int
	Out    bool // completed their phase this round
}

// NewPlayer constructs a player starting on phase 1
func NewPlayer(id, name string) *Player {
	p := &Player{
		ID:    id,
		Name:  name,
		Hand:  deck.NewHand(),
		Phase: 1,
	}
	p.resetClaims()
	return p
}

// Finished reports whether the player has completed every phase
func (p *Player) Finished() bool {
	return p.Phase > phase.NumPhases
}

// CardCount counts the hand and every claim
func (p *Player) CardCount() int {
	n := p.Hand.Size()
	for _, c := range p.Claims {
		n += c.Len()
	}
	return n
}

func (p *Player) resetClaims() {
	claims, err := phase.NewClaims(p.Phase)
	if err != nil {
		// finished players have nothing left to claim
		claims = nil
	}
	p.Claims = claims
}

func (p *Player) unstage() int {
	n := 0
	for _, c := range p.Claims {
		n += c.ReturnCards(p.Hand)
	}
	return n
}
