package deck

import (
	"fmt"
	"sort"
)

// Hand is a player's stack of cards
type Hand struct {
	Stack
}

func NewHand(cards ...Card) *Hand {
	h := &Hand{}
	h.Push(cards...)
	return h
}

// Find returns the index of the first card matching id, or -1 if the
// identifier is malformed or the card is not in the hand.
func (h *Hand) Find(id string) int {
	card, err := ParseCard(id)
	if err != nil {
		return -1
	}
	return h.index(card)
}

// Take removes the first card matching id. A malformed id is
// ErrUnknownCard; a card the hand does not hold is ErrCardNotFound.
func (h *Hand) Take(id string) (Card, error) {
	card, err := ParseCard(id)
	if err != nil {
		return Card{}, err
	}
	i := h.index(card)
	if i == -1 {
		return Card{}, fmt.Errorf("%w: %q", ErrCardNotFound, id)
	}
	return h.RemoveAt(i)
}

func (h *Hand) index(card Card) int {
	for i, c := range h.cards {
		if c == card {
			return i
		}
	}
	return -1
}

func (h *Hand) SortByFace() {
	h.SortByValue()
}

// SortByColor groups cards by color, ordered by value within a color
func (h *Hand) SortByColor() {
	sort.SliceStable(h.cards, func(i, j int) bool {
		a, b := h.cards[i], h.cards[j]
		if a.Color != b.Color {
			return a.Color < b.Color
		}
		return a.Value() < b.Value()
	})
}

// Sum is the penalty a hand is worth at the end of a round
func (h *Hand) Sum() int {
	total := 0
	for _, c := range h.cards {
		total += c.Value()
	}
	return total
}
