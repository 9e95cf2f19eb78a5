package deck

import "sort"

// Stack is an ordered pile of cards. The top of the stack is the last card.
type Stack struct {
	cards []Card
}

// NewStack constructs a Stack holding cards, bottom first
func NewStack(cards ...Card) *Stack {
	s := &Stack{}
	s.Push(cards...)
	return s
}

// Push puts cards on top of the stack, in order
func (s *Stack) Push(cards ...Card) {
	s.cards = append(s.cards, cards...)
}

// Pop removes and returns the top card
func (s *Stack) Pop() (Card, error) {
	return s.RemoveAt(len(s.cards) - 1)
}

// RemoveAt removes and returns the card at index i
func (s *Stack) RemoveAt(i int) (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrEmptyPile
	}
	if i < 0 || i >= len(s.cards) {
		return Card{}, ErrIndexOutOfRange
	}

	c := s.cards[i]
	s.cards = append(s.cards[:i], s.cards[i+1:]...)
	return c, nil
}

// Top returns the top card without removing it
func (s *Stack) Top() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrEmptyPile
	}
	return s.cards[len(s.cards)-1], nil
}

func (s *Stack) Size() int {
	return len(s.cards)
}

func (s *Stack) IsEmpty() bool {
	return len(s.cards) == 0
}

// Clear empties the stack. Callers must have moved any cards they still need.
func (s *Stack) Clear() {
	s.cards = nil
}

// Cards returns a copy of the cards, bottom first
func (s *Stack) Cards() []Card {
	cards := make([]Card, len(s.cards))
	copy(cards, s.cards)
	return cards
}

// drain empties the stack and hands back its cards
func (s *Stack) drain() []Card {
	cards := s.cards
	s.cards = nil
	return cards
}

// SortByValue orders cards by ascending value, keeping the relative order of equal values
func (s *Stack) SortByValue() {
	sort.SliceStable(s.cards, func(i, j int) bool {
		return s.cards[i].Value() < s.cards[j].Value()
	})
}
