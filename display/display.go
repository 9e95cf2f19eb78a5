// Package display renders cards and piles as terminal text. It only reads
// the engine's values; it never changes them.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/minaorangina/phaseten/deck"
	"github.com/minaorangina/phaseten/phase"
)

// Placeholder is a display-only card: an empty pile or a face-down card.
// Placeholders never take part in play.
type Placeholder int

const (
	Back  Placeholder = -1
	Blank Placeholder = 0
)

func (p Placeholder) String() string {
	if p == Back {
		return "Back"
	}
	return "Blank"
}

// Value mirrors Card.Value for placeholders. It is never a playable value.
func (p Placeholder) Value() int {
	return int(p)
}

var (
	cardColors = map[deck.Color]lipgloss.Color{
		deck.Red:    lipgloss.Color("196"),
		deck.Green:  lipgloss.Color("34"),
		deck.Yellow: lipgloss.Color("220"),
		deck.Blue:   lipgloss.Color("33"),
		deck.Any:    lipgloss.Color("201"),
		deck.None:   lipgloss.Color("250"),
	}
	backColor   = lipgloss.Color("239")
	borderColor = lipgloss.Color("240")

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(6).
			Height(3).
			Align(lipgloss.Center, lipgloss.Center)

	labelStyle = lipgloss.NewStyle().Width(8).Align(lipgloss.Center)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

func faceLabel(c deck.Card) string {
	switch c.Face {
	case deck.Wild:
		return "WILD"
	case deck.Skip:
		return "SKIP"
	default:
		return fmt.Sprintf("%d", c.Value())
	}
}

// Card renders one face-up card
func Card(c deck.Card) string {
	color := cardColors[c.Color]
	return cardStyle.
		BorderForeground(color).
		Foreground(color).
		Render(faceLabel(c))
}

// Empty renders a placeholder
func Empty(p Placeholder) string {
	if p == Back {
		return cardStyle.
			BorderForeground(backColor).
			Foreground(backColor).
			Render("P10")
	}
	return cardStyle.BorderForeground(borderColor).Render("")
}

// Row renders cards side by side. An empty row renders a blank placeholder.
func Row(cards []deck.Card) string {
	if len(cards) == 0 {
		return Empty(Blank)
	}
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, Card(c))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// Hand renders cards with the identifier to type under each one
func Hand(h *deck.Hand) string {
	cards := h.Cards()
	if len(cards) == 0 {
		return Empty(Blank)
	}

	columns := make([]string, 0, len(cards))
	for _, c := range cards {
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Center, Card(c), labelStyle.Render(c.ID())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// Table renders the top of the discard pile next to the draw pile
func Table(pile *deck.DrawPile) string {
	discard := Empty(Blank)
	if top, err := pile.Discard().Top(); err == nil {
		discard = Card(top)
	}
	draw := Empty(Blank)
	if !pile.IsEmpty() {
		draw = Empty(Back)
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top, discard, draw)
	labels := lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("Discard"),
		labelStyle.Render(fmt.Sprintf("Deck %d", pile.Size())),
	)
	return lipgloss.JoinVertical(lipgloss.Left, cards, labels)
}

// Claim renders a claim's description above its cards
func Claim(c *phase.Claim) string {
	title := c.Description()
	if c.Complete() {
		title += " (complete)"
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), Row(c.Cards()))
}

// Claims renders a player's claims, one under the other, numbered from 1
func Claims(claims []*phase.Claim) string {
	var b strings.Builder
	for i, c := range claims {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, Claim(c))
	}
	return b.String()
}
