package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	ErrEmptyPile       = errors.New("pile is empty")
	ErrIndexOutOfRange = errors.New("card index out of range")
	ErrInvalidRecycle  = errors.New("cannot recycle an empty discard pile")
	ErrDeckExhausted   = errors.New("draw and discard piles are exhausted")
	ErrCardNotFound    = errors.New("card not found")
	ErrUnknownCard     = errors.New("unknown card")
)

// Deck composition
const (
	MinRank       = 1
	MaxRank       = 12
	NumColors     = 4
	CopiesPerCard = 2
	NumWilds      = 8
	NumSkips      = 4
	NumPlayable   = (MaxRank - MinRank + 1) * NumColors * CopiesPerCard
	DeckSize      = NumPlayable + NumWilds + NumSkips
)

// DrawPile is the face-down deck. It owns the discard pile it recycles from.
type DrawPile struct {
	pile    Stack
	discard *DiscardPile
	rng     *rand.Rand
}

// NewDrawPile constructs an empty draw pile. A nil rng is seeded from the clock.
func NewDrawPile(rng *rand.Rand) *DrawPile {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DrawPile{
		discard: &DiscardPile{rng: rng},
		rng:     rng,
	}
}

// Discard returns the discard pile paired with this draw pile
func (d *DrawPile) Discard() *DiscardPile {
	return d.discard
}

// Shuffle rebuilds the full deck into the draw pile, empties the discard
// pile and randomises the order. This is the only place cards are created.
func (d *DrawPile) Shuffle() {
	cards := make([]Card, 0, DeckSize)
	for _, color := range PlayableColors {
		for face := Face(MinRank); face <= MaxRank; face++ {
			for i := 0; i < CopiesPerCard; i++ {
				cards = append(cards, Card{Face: face, Color: color})
			}
		}
	}
	for i := 0; i < NumWilds; i++ {
		cards = append(cards, NewWild())
	}
	for i := 0; i < NumSkips; i++ {
		cards = append(cards, NewSkip())
	}
	shuffleCards(d.rng, cards)

	d.discard.Clear()
	d.pile.Clear()
	d.pile.Push(cards...)
}

// Draw takes the top card. When the draw pile is empty the discard pile is
// recycled into it first and recycled is true.
func (d *DrawPile) Draw() (card Card, recycled bool, err error) {
	if d.pile.IsEmpty() {
		if d.discard.Size() <= 1 {
			return Card{}, false, ErrDeckExhausted
		}
		rest, err := d.discard.Recycle()
		if err != nil {
			return Card{}, false, fmt.Errorf("%w: %v", ErrDeckExhausted, err)
		}
		d.pile.Push(rest...)
		recycled = true
	}

	card, err = d.pile.Pop()
	return card, recycled, err
}

func (d *DrawPile) Size() int {
	return d.pile.Size()
}

func (d *DrawPile) IsEmpty() bool {
	return d.pile.IsEmpty()
}

// Cards returns a copy of the undealt cards, bottom first
func (d *DrawPile) Cards() []Card {
	return d.pile.Cards()
}

// DiscardPile is the face-up pile. Only its top card is public.
type DiscardPile struct {
	Stack
	rng *rand.Rand
}

// Recycle keeps the top card in place and returns the rest, shuffled
func (d *DiscardPile) Recycle() ([]Card, error) {
	top, err := d.Top()
	if err != nil {
		return nil, ErrInvalidRecycle
	}

	cards := d.drain()
	rest := cards[:len(cards)-1]
	d.Push(top)

	shuffleCards(d.rng, rest)
	return rest, nil
}

func shuffleCards(rng *rand.Rand, cards []Card) {
	if rng == nil {
		rand.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})
		return
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
