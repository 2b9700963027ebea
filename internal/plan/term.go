package plan

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Term is the half-year a course is taught in.
// The values are the persisted Norwegian names.
type Term string

const (
	// TermAutumn courses may only be placed in semesters 1, 3 and 5.
	TermAutumn Term = "høst"

	// TermSpring courses may only be placed in semesters 2, 4 and 6.
	TermSpring Term = "vår"
)

// termAliases maps folded user input to a Term.
var termAliases = map[string]Term{
	"høst":   TermAutumn,
	"autumn": TermAutumn,
	"fall":   TermAutumn,
	"vår":    TermSpring,
	"spring": TermSpring,
}

// ParseTerm parses a term name. Matching ignores case, surrounding
// whitespace and Unicode composition, so "HØST" and a decomposed "vår" work.
func ParseTerm(s string) (Term, error) {
	t, ok := termAliases[foldKey(s)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTerm, s)
	}
	return t, nil
}

// Valid reports whether t is one of the two known terms.
func (t Term) Valid() bool {
	return t == TermAutumn || t == TermSpring
}

// AllowedSlots returns the 1-based semesters the term may occupy, for messages.
func (t Term) AllowedSlots() string {
	switch t {
	case TermAutumn:
		return "1/3/5"
	case TermSpring:
		return "2/4/6"
	default:
		return ""
	}
}

func (t Term) String() string {
	return string(t)
}

// TermForSlot returns the term a slot accepts: even slots are autumn,
// odd slots are spring.
func TermForSlot(slot int) Term {
	if slot%2 == 0 {
		return TermAutumn
	}
	return TermSpring
}

// foldKey normalizes s for case-insensitive comparison.
// A Caser keeps state, so a fresh one is created per call.
func foldKey(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}
