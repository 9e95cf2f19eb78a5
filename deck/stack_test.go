package deck

import (
	"testing"

	utils "github.com/minaorangina/phaseten/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	t.Run("push and pop are last in first out", func(t *testing.T) {
		s := NewStack()
		s.Push(Card{One, Red}, Card{Two, Red})
		s.Push(NewWild())

		c, err := s.Pop()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, c, NewWild())

		c, err = s.Pop()
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, c, Card{Two, Red})
		utils.AssertEqual(t, s.Size(), 1)
	})

	t.Run("pop and top fail on an empty stack", func(t *testing.T) {
		s := NewStack()
		_, err := s.Pop()
		assert.ErrorIs(t, err, ErrEmptyPile)

		_, err = s.Top()
		assert.ErrorIs(t, err, ErrEmptyPile)

		_, err = s.RemoveAt(0)
		assert.ErrorIs(t, err, ErrEmptyPile)
	})

	t.Run("top does not remove", func(t *testing.T) {
		s := NewStack(Card{Five, Blue}, Card{Six, Blue})
		c, err := s.Top()
		require.NoError(t, err)
		assert.Equal(t, Card{Six, Blue}, c)
		assert.Equal(t, 2, s.Size())
	})

	t.Run("remove at index", func(t *testing.T) {
		s := NewStack(Card{One, Red}, Card{Two, Green}, Card{Three, Blue})
		c, err := s.RemoveAt(1)
		require.NoError(t, err)
		assert.Equal(t, Card{Two, Green}, c)
		assert.Equal(t, []Card{{One, Red}, {Three, Blue}}, s.Cards())

		_, err = s.RemoveAt(2)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		_, err = s.RemoveAt(-1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Equal(t, 2, s.Size())
	})

	t.Run("duplicates are allowed", func(t *testing.T) {
		s := NewStack(Card{Four, Red}, Card{Four, Red})
		assert.Equal(t, 2, s.Size())
	})

	t.Run("clear empties", func(t *testing.T) {
		s := NewStack(Card{Four, Red}, NewSkip())
		s.Clear()
		assert.True(t, s.IsEmpty())
		assert.Equal(t, 0, s.Size())
	})

	t.Run("cards is a copy", func(t *testing.T) {
		s := NewStack(Card{Four, Red})
		cards := s.Cards()
		cards[0] = NewWild()

		c, err := s.Top()
		require.NoError(t, err)
		assert.Equal(t, Card{Four, Red}, c)
	})

	t.Run("sort by value is stable", func(t *testing.T) {
		s := NewStack(NewWild(), Card{Three, Blue}, NewSkip(), Card{Three, Red}, Card{One, Green})
		s.SortByValue()
		assert.Equal(t, []Card{{One, Green}, {Three, Blue}, {Three, Red}, NewSkip(), NewWild()}, s.Cards())
	})
}

func TestHand(t *testing.T) {
	t.Run("find by identifier", func(t *testing.T) {
		h := NewHand(Card{Three, Green}, NewWild(), Card{Twelve, Yellow})
		utils.AssertEqual(t, h.Find("w"), 1)
		utils.AssertEqual(t, h.Find("y12"), 2)
		utils.AssertEqual(t, h.Find("g4"), -1)
		utils.AssertEqual(t, h.Find(" Y12 "), 2)
	})

	t.Run("take removes the matching card", func(t *testing.T) {
		h := NewHand(Card{Three, Green}, NewWild(), Card{Twelve, Yellow})
		c, err := h.Take("g3")
		require.NoError(t, err)
		assert.Equal(t, Card{Three, Green}, c)
		assert.Equal(t, 2, h.Size())

		_, err = h.Take("g3")
		assert.ErrorIs(t, err, ErrCardNotFound)
		assert.Equal(t, 2, h.Size())
	})

	t.Run("malformed identifiers are not missing cards", func(t *testing.T) {
		h := NewHand(Card{Three, Green}, NewWild())
		for _, id := range []string{"zz", "g13", "x3", ""} {
			_, err := h.Take(id)
			assert.ErrorIs(t, err, ErrUnknownCard, id)
			assert.NotErrorIs(t, err, ErrCardNotFound, id)
			utils.AssertEqual(t, h.Find(id), -1)
		}
		assert.Equal(t, 2, h.Size())

		c, err := h.Take(" W ")
		require.NoError(t, err)
		assert.Equal(t, NewWild(), c)
	})

	t.Run("sort by face", func(t *testing.T) {
		h := NewHand(NewWild(), Card{Nine, Red}, Card{Two, Blue})
		h.SortByFace()
		assert.Equal(t, []Card{{Two, Blue}, {Nine, Red}, NewWild()}, h.Cards())
	})

	t.Run("sort by colour", func(t *testing.T) {
		h := NewHand(NewWild(), Card{Nine, Blue}, Card{Two, Blue}, Card{Eleven, Red}, NewSkip())
		h.SortByColor()
		assert.Equal(t, []Card{NewSkip(), {Eleven, Red}, {Two, Blue}, {Nine, Blue}, NewWild()}, h.Cards())
	})

	t.Run("sum of values", func(t *testing.T) {
		h := NewHand(NewWild(), NewSkip(), Card{Two, Blue})
		assert.Equal(t, 42, h.Sum())
		assert.Equal(t, 0, NewHand().Sum())
	})
}
