package phase

import (
	"sort"

	"github.com/minaorangina/phaseten/deck"
)

// Satisfies reports whether cards meet the requirement.
// A skip anywhere in the group invalidates it, then the size is checked,
// then the rule for the requirement's kind.
func Satisfies(r Requirement, cards []deck.Card) bool {
	switch r.Kind {
	case SetByFace, SetByColor:
		return IsSet(cards, r.Size, r.Kind)
	case Run:
		return IsRun(cards, r.Size)
	default:
		return false
	}
}

// IsSet reports whether cards form a set of at least size cards sharing a
// face (SetByFace) or a color (SetByColor). Wilds match anything.
func IsSet(cards []deck.Card, size int, kind Kind) bool {
	if kind != SetByFace && kind != SetByColor {
		return false
	}
	if containsSkip(cards) || len(cards) < size {
		return false
	}

	seen := map[int]struct{}{}
	for _, c := range cards {
		if c.IsWild() {
			continue
		}
		switch kind {
		case SetByFace:
			seen[int(c.Face)] = struct{}{}
		case SetByColor:
			seen[int(c.Color)] = struct{}{}
		}
	}

	return len(seen) <= 1
}

// IsRun reports whether cards form a run of at least size cards: distinct
// ascending faces where each gap is filled by one wild.
func IsRun(cards []deck.Card, size int) bool {
	if containsSkip(cards) || len(cards) < size {
		return false
	}

	wilds := 0
	values := []int{}
	for _, c := range cards {
		if c.IsWild() {
			wilds++
			continue
		}
		values = append(values, c.Value())
	}

	// nothing to anchor the run, wilds alone can be any run
	if len(values) == 0 {
		return true
	}

	sort.Ints(values)
	expected := values[0] + 1
	for i := 1; i < len(values); i++ {
		if values[i] == values[i-1] {
			return false
		}
		if gap := values[i] - expected; gap > 0 {
			wilds -= gap
		}
		expected = values[i] + 1
	}

	return wilds >= 0
}

func containsSkip(cards []deck.Card) bool {
	for _, c := range cards {
		if c.IsSkip() {
			return true
		}
	}
	return false
}
