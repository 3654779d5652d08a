// Package grammar implements the Grammar Model, Grammar Parser, and Set
// Analyzer of spec.md §4.1-§4.3: parsing the compact textual grammar
// notation into an immutable Grammar value, and computing is_nullable,
// FNE, FIRST, and FOLLOW as fixed points over it.
package grammar

import (
	"sort"
	"strings"

	"github.com/tpham/grammarkit/internal/gkerrors"
	"github.com/tpham/grammarkit/internal/util"
)

// Reserved symbols, per spec.md §6. A grammar that uses any of these as a
// non-terminal head or as a body symbol fails to construct.
const (
	EndMarker      = "$"
	Epsilon        = "ɛ"
	AugmentedStart = "S'"
	Dot            = "•"
	Arrow          = "→"
	asciiArrow     = "->"
)

func isReserved(sym string) bool {
	switch sym {
	case EndMarker, Epsilon, AugmentedStart, Dot, Arrow:
		return true
	}
	return false
}

// Production is an ordered sequence of Symbols; the empty sequence denotes
// an ε-production (spec.md §3).
type Production []string

// Equal reports whether p and o have the same symbols in the same order.
func (p Production) Equal(o Production) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Nullable reports whether every symbol of p is nullable in g. An empty
// production is vacuously nullable (spec.md §9).
func (p Production) Nullable(g Grammar) bool {
	for _, sym := range p {
		if !g.IsNullable(sym) {
			return false
		}
	}
	return true
}

// String renders p the way original_source/grammar.py's rule2str joins a
// production's symbols, showing ɛ for the empty production.
func (p Production) String() string {
	if len(p) == 0 {
		return Epsilon
	}
	return strings.Join(p, " ")
}

// Grammar is the immutable tuple (axiom, rules) of spec.md §3. It is built
// once by FromText; FIRST/FOLLOW/nullability are computed once at
// construction time as pure fixed points and are read-only afterward, so a
// Grammar value may be freely shared and reused across analyses (spec.md §3
// Lifecycles).
type Grammar struct {
	axiom string
	rules map[string][]Production
	order []string // insertion order of non-terminal heads

	nullable util.StringSet
	fne      map[string]util.StringSet
	follow   map[string]util.StringSet
}

// New builds a Grammar directly from an axiom and rule map, validating the
// invariants of spec.md §3 and running the Set Analyzer fixed points. Most
// callers should use FromText; New is exported for callers (and tests) that
// already have a rule map in hand, mirroring how original_source/grammar.py's
// constructor takes axiom/rules directly.
func New(axiom string, rules map[string][]Production) (Grammar, error) {
	if isReserved(axiom) {
		return Grammar{}, gkerrors.WrapReserved(axiom)
	}
	if _, ok := rules[axiom]; !ok {
		return Grammar{}, gkerrors.Parsef(axiom, "axiom %q is not a key of rules", axiom)
	}
	for head, bodies := range rules {
		if isReserved(head) {
			return Grammar{}, gkerrors.WrapReserved(head)
		}
		for _, body := range bodies {
			for _, sym := range body {
				if isReserved(sym) {
					return Grammar{}, gkerrors.WrapReserved(sym)
				}
			}
		}
	}

	// rules is an unordered map, so fix a deterministic head order here
	// (lexical) rather than leak Go's randomized map iteration into
	// LL1Table/FOLLOW output. FromText instead builds order from the text's
	// actual head-definition order, which is the order real callers get.
	order := make([]string, 0, len(rules))
	for nt := range rules {
		order = append(order, nt)
	}
	sort.Strings(order)

	g := Grammar{
		axiom: axiom,
		rules: rules,
		order: order,
	}
	g.analyze()
	return g, nil
}

func newGrammar(axiom string, rules map[string][]Production, order []string) (Grammar, error) {
	g := Grammar{
		axiom: axiom,
		rules: rules,
		order: order,
	}
	g.analyze()
	return g, nil
}

// Axiom returns the designated start non-terminal.
func (g Grammar) Axiom() string {
	return g.axiom
}

// NonTerminals returns the non-terminal heads in the order they were first
// defined (lexical order for a Grammar built by New); LL(1) table rows,
// conflict reporting, and the grammar listing follow this order. LR(0)
// state numbering does not depend on it, since Build sweeps symbols in
// sorted order.
func (g Grammar) NonTerminals() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Terminals returns the set of symbols that occur in some production body
// but are never a rule key (spec.md §3).
func (g Grammar) Terminals() util.StringSet {
	terms := util.NewStringSet()
	for _, bodies := range g.rules {
		for _, body := range bodies {
			for _, sym := range body {
				if !g.IsNonTerminal(sym) {
					terms.Add(sym)
				}
			}
		}
	}
	return terms
}

// IsNonTerminal reports whether x is a key of the rule map.
func (g Grammar) IsNonTerminal(x string) bool {
	_, ok := g.rules[x]
	return ok
}

// IsTerminal reports whether x is not a key of the rule map. Per spec.md
// §3 this includes any symbol at all that isn't a declared non-terminal,
// so an unrecognized single character is still treated as a terminal.
func (g Grammar) IsTerminal(x string) bool {
	return !g.IsNonTerminal(x)
}

// Rules returns the alternatives for non-terminal nt, in the order they
// were written. Returns nil if nt is not a non-terminal.
func (g Grammar) Rules(nt string) []Production {
	return g.rules[nt]
}

// RuleCount returns the total number of alternatives across every
// non-terminal, reported by trace.Stats.
func (g Grammar) RuleCount() int {
	n := 0
	for _, bodies := range g.rules {
		n += len(bodies)
	}
	return n
}
