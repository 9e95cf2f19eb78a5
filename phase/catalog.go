package phase

import "fmt"

// NumPhases is the number of phases a player works through
const NumPhases = 10

// Catalog lists the requirements of each phase, phase 1 first
var Catalog = [NumPhases][]Requirement{
	{MustParseRequirement("set3"), MustParseRequirement("set3")},
	{MustParseRequirement("set3"), MustParseRequirement("run4")},
	{MustParseRequirement("set4"), MustParseRequirement("run4")},
	{MustParseRequirement("run7")},
	{MustParseRequirement("run8")},
	{MustParseRequirement("run9")},
	{MustParseRequirement("set4"), MustParseRequirement("set4")},
	{MustParseRequirement("set7c")},
	{MustParseRequirement("set5"), MustParseRequirement("set2")},
	{MustParseRequirement("set5"), MustParseRequirement("set3")},
}

// Requirements returns the requirements of phase n, counting from 1
func Requirements(n int) ([]Requirement, error) {
	if n < 1 || n > NumPhases {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPhase, n)
	}
	reqs := make([]Requirement, len(Catalog[n-1]))
	copy(reqs, Catalog[n-1])
	return reqs, nil
}

// NewClaims returns one fresh claim per requirement of phase n
func NewClaims(n int) ([]*Claim, error) {
	reqs, err := Requirements(n)
	if err != nil {
		return nil, err
	}

	claims := make([]*Claim, 0, len(reqs))
	for _, r := range reqs {
		claims = append(claims, NewClaim(r))
	}
	return claims, nil
}

// Describe joins the descriptions of phase n's requirements
func Describe(n int) string {
	reqs, err := Requirements(n)
	if err != nil {
		return ""
	}

	desc := ""
	for i, r := range reqs {
		if i > 0 {
			desc += " + "
		}
		desc += r.Description()
	}
	return desc
}
