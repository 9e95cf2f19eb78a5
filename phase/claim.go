package phase

import (
	"fmt"

	"github.com/minaorangina/phaseten/deck"
)

// Pusher receives cards handed back by a claim. *deck.Hand satisfies it.
type Pusher interface {
	Push(cards ...deck.Card)
}

// Claim is an attempt to satisfy one requirement. Cards are staged one at a
// time and only become confirmed through Merge.
type Claim struct {
	Requirement
	staged    deck.Stack
	confirmed deck.Stack
	skips     int
}

func NewClaim(r Requirement) *Claim {
	return &Claim{Requirement: r}
}

// Push stages a card
func (c *Claim) Push(card deck.Card) {
	if card.IsSkip() {
		c.skips++
	}
	c.staged.Push(card)
}

// Pop unstages the most recently staged card
func (c *Claim) Pop() (deck.Card, error) {
	card, err := c.staged.Pop()
	if err != nil {
		return deck.Card{}, err
	}
	if card.IsSkip() {
		c.skips--
	}
	return card, nil
}

// Valid reports whether the staged and confirmed cards together satisfy the
// requirement. It does not change the claim.
func (c *Claim) Valid() bool {
	if c.skips > 0 {
		return false
	}
	return Satisfies(c.Requirement, c.Cards())
}

// Merge confirms the staged cards
func (c *Claim) Merge() error {
	if !c.Valid() {
		return fmt.Errorf("%w: %s with %d cards", ErrInvalidClaimState, c.Requirement, c.Len())
	}

	c.confirmed.Push(c.staged.Cards()...)
	c.confirmed.SortByValue()
	c.staged.Clear()
	return nil
}

// ReturnCards moves every staged card to dst, in staging order, and
// returns how many were moved. Confirmed cards stay.
func (c *Claim) ReturnCards(dst Pusher) int {
	cards := c.staged.Cards()
	c.staged.Clear()
	c.skips = 0
	dst.Push(cards...)
	return len(cards)
}

// Complete reports whether the claim has been satisfied and merged
func (c *Claim) Complete() bool {
	return !c.confirmed.IsEmpty()
}

// Staged returns a copy of the cards waiting to be verified
func (c *Claim) Staged() []deck.Card {
	return c.staged.Cards()
}

// Confirmed returns a copy of the verified cards, ordered by value
func (c *Claim) Confirmed() []deck.Card {
	return c.confirmed.Cards()
}

// Cards returns confirmed then staged cards
func (c *Claim) Cards() []deck.Card {
	return append(c.confirmed.Cards(), c.staged.Cards()...)
}

// Len counts confirmed and staged cards. Requirement.Size is the target.
func (c *Claim) Len() int {
	return c.confirmed.Size() + c.staged.Size()
}
