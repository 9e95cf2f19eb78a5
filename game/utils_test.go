package game

import (
	"testing"

	"github.com/minaorangina/phaseten/deck"
	utils "github.com/minaorangina/phaseten/internal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	wild = deck.NewWild()
	skip = deck.NewSkip()
)

func card(f deck.Face, c deck.Color) deck.Card {
	return deck.Card{Face: f, Color: c}
}

func newTestGame(t *testing.T, names ...string) *Game {
	t.Helper()
	return newTestGameWithLogger(t, zap.NewNop(), names...)
}

func newTestGameWithLogger(t *testing.T, logger *zap.Logger, names ...string) *Game {
	t.Helper()
	if len(names) == 0 {
		names = []string{"Harry", "Sally"}
	}
	g, err := New(Opts{
		ID:     "test-game",
		Names:  names,
		Rand:   utils.SeededRand(10),
		Logger: logger,
	})
	require.NoError(t, err)
	return g
}

// startedGame deals a round and has the current player draw
func startedGame(t *testing.T, names ...string) *Game {
	t.Helper()
	g := newTestGame(t, names...)
	require.NoError(t, g.StartRound())
	_, _, err := g.DrawFromPile()
	require.NoError(t, err)
	return g
}

// rigHand swaps the current player's hand for cards. Card conservation
// does not hold afterwards.
func rigHand(g *Game, cards ...deck.Card) *Player {
	p := g.CurrentPlayer()
	p.Hand = deck.NewHand(cards...)
	return p
}

func stageAll(t *testing.T, g *Game, claimIdx int, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, g.Stage(claimIdx, id))
	}
}

func phaseOneHand() []deck.Card {
	return []deck.Card{
		card(deck.Five, deck.Red), card(deck.Five, deck.Blue), card(deck.Five, deck.Green),
		card(deck.Nine, deck.Red), card(deck.Nine, deck.Yellow), wild,
		card(deck.One, deck.Red),
	}
}
