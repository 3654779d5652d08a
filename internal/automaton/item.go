// Package automaton implements the LR(0) Automaton of spec.md §4.5: item
// closure and goto, and the canonical collection of item sets reached from
// the augmented start item.
package automaton

import (
	"fmt"
	"strings"

	"github.com/tpham/grammarkit/internal/grammar"
)

// Item is an LR(0) item (H, body, dot) of spec.md §3: H is a non-terminal
// (possibly the augmented S'), body is a Rule, and dot is the parse
// position within it.
type Item struct {
	Head string
	Body grammar.Production
	Dot  int
}

// AtEnd reports whether the item is a reduce item (dot == len(body)).
func (it Item) AtEnd() bool {
	return it.Dot == len(it.Body)
}

// NextSymbol returns the symbol just past the dot and true, or ("", false)
// for a reduce item.
func (it Item) NextSymbol() (string, bool) {
	if it.AtEnd() {
		return "", false
	}
	return it.Body[it.Dot], true
}

// Advance returns the item with the dot moved one position to the right.
// Callers must only call this on a shift item.
func (it Item) Advance() Item {
	return Item{Head: it.Head, Body: it.Body, Dot: it.Dot + 1}
}

// String renders the item as "H → α • β", the pretty-printed form named in
// spec.md §6, grounded on original_source/grammar.py's sstate2str.
func (it Item) String() string {
	var sb strings.Builder
	sb.WriteString(it.Head)
	sb.WriteString(" ")
	sb.WriteString(grammar.Arrow)
	sb.WriteString(" ")

	for i, sym := range it.Body {
		if i == it.Dot {
			sb.WriteString(grammar.Dot)
			sb.WriteString(" ")
		}
		sb.WriteString(sym)
		sb.WriteString(" ")
	}
	if it.Dot == len(it.Body) {
		sb.WriteString(grammar.Dot)
	}

	return strings.TrimRight(sb.String(), " ")
}

// key is the canonicalized tuple (H, body, dot) used to sort and de-duplicate
// items, per spec.md §4.5/§9: "Implementations must canonicalize ... before
// hashing."
func (it Item) key() string {
	return fmt.Sprintf("%s\x00%s\x00%04d", it.Head, it.Body.String(), it.Dot)
}

func itemComparator(a, b interface{}) int {
	ka, kb := a.(Item).key(), b.(Item).key()
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}
