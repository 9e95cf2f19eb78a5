package phase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownRequirement = errors.New("unknown requirement")
	ErrInvalidClaimState  = errors.New("claim is not valid")
	ErrUnknownPhase       = errors.New("unknown phase")
)

// Kind is the type of combination a requirement asks for
type Kind int

const (
	SetByFace Kind = iota
	SetByColor
	Run
)

var kindNames = []string{"SetByFace", "SetByColor", "Run"}

func (k Kind) String() string {
	if k < SetByFace || k > Run {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Requirement is one combination a phase asks for, e.g. a run of 4
type Requirement struct {
	Kind Kind
	Size int
}

// ParseRequirement reads the short form: "set3", "set7c", "run4"
func ParseRequirement(s string) (Requirement, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 4 {
		return Requirement{}, fmt.Errorf("%w: %q", ErrUnknownRequirement, s)
	}

	var kind Kind
	rest := s[3:]
	switch s[:3] {
	case "set":
		kind = SetByFace
		if strings.HasSuffix(rest, "c") {
			kind = SetByColor
			rest = strings.TrimSuffix(rest, "c")
		}
	case "run":
		kind = Run
	default:
		return Requirement{}, fmt.Errorf("%w: %q", ErrUnknownRequirement, s)
	}

	size, err := strconv.Atoi(rest)
	if err != nil || size < 1 {
		return Requirement{}, fmt.Errorf("%w: %q", ErrUnknownRequirement, s)
	}

	return Requirement{Kind: kind, Size: size}, nil
}

// MustParseRequirement is ParseRequirement for static tables
func MustParseRequirement(s string) Requirement {
	r, err := ParseRequirement(s)
	if err != nil {
		panic(err)
	}
	return r
}

// String returns the short form accepted by ParseRequirement
func (r Requirement) String() string {
	switch r.Kind {
	case SetByColor:
		return fmt.Sprintf("set%dc", r.Size)
	case Run:
		return fmt.Sprintf("run%d", r.Size)
	default:
		return fmt.Sprintf("set%d", r.Size)
	}
}

// Description is the human readable form, e.g. "A Set of 7 Colors"
func (r Requirement) Description() string {
	switch r.Kind {
	case SetByColor:
		return fmt.Sprintf("A Set of %d Colors", r.Size)
	case Run:
		return fmt.Sprintf("A Run of %d", r.Size)
	default:
		return fmt.Sprintf("A Set of %d", r.Size)
	}
}
