package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Face represents a card's rank. Playable faces carry their numeric value.
type Face int

const (
	One Face = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Eleven
	Twelve
	Skip Face = 15
	Wild Face = 25
)

var faceNames = map[Face]string{
	One:    "One",
	Two:    "Two",
	Three:  "Three",
	Four:   "Four",
	Five:   "Five",
	Six:    "Six",
	Seven:  "Seven",
	Eight:  "Eight",
	Nine:   "Nine",
	Ten:    "Ten",
	Eleven: "Eleven",
	Twelve: "Twelve",
	Skip:   "Skip",
	Wild:   "Wild",
}

func (f Face) String() string {
	if name, ok := faceNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Face(%d)", int(f))
}

// Playable reports whether the face is one of the numbered ranks
func (f Face) Playable() bool {
	return f >= MinRank && f <= MaxRank
}

// Color represents a card's color
type Color int

const (
	None Color = iota
	Red
	Green
	Yellow
	Blue
	Any
)

var colorNames = []string{"None", "Red", "Green", "Yellow", "Blue", "Any"}

func (c Color) String() string {
	if c < None || c > Any {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// PlayableColors are the colors numbered cards come in
var PlayableColors = []Color{Red, Green, Yellow, Blue}

// Card is an immutable face and color pair
type Card struct {
	Face  Face
	Color Color
}

// NewCard constructs a numbered card
func NewCard(face Face, color Color) (Card, error) {
	if !face.Playable() {
		return Card{}, fmt.Errorf("%w: face %d out of range", ErrUnknownCard, int(face))
	}
	if color < Red || color > Blue {
		return Card{}, fmt.Errorf("%w: color %d is not playable", ErrUnknownCard, int(color))
	}
	return Card{Face: face, Color: color}, nil
}

// NewWild returns a wild card
func NewWild() Card {
	return Card{Face: Wild, Color: Any}
}

// NewSkip returns a skip card
func NewSkip() Card {
	return Card{Face: Skip, Color: None}
}

// Value is used for run adjacency, sorting and end of round scoring
func (c Card) Value() int {
	return int(c.Face)
}

func (c Card) IsWild() bool {
	return c.Face == Wild
}

func (c Card) IsSkip() bool {
	return c.Face == Skip
}

// ID returns the short identifier players type to select the card,
// e.g. "r3", "b12", "w", "s".
func (c Card) ID() string {
	if c.IsWild() || c.IsSkip() {
		return strings.ToLower(c.Face.String()[:1])
	}
	return strings.ToLower(c.Color.String()[:1]) + strconv.Itoa(c.Value())
}

func (c Card) String() string {
	if c.IsWild() || c.IsSkip() {
		return c.Face.String()
	}
	return fmt.Sprintf("%s %d", c.Color, c.Value())
}

var idColors = map[byte]Color{
	'r': Red,
	'g': Green,
	'y': Yellow,
	'b': Blue,
}

// ParseCard is the inverse of Card.ID
func ParseCard(id string) (Card, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	switch id {
	case "":
		return Card{}, fmt.Errorf("%w: empty identifier", ErrUnknownCard)
	case "w":
		return NewWild(), nil
	case "s":
		return NewSkip(), nil
	}

	color, ok := idColors[id[0]]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, id)
	}
	rank, err := strconv.Atoi(id[1:])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, id)
	}

	return NewCard(Face(rank), color)
}
