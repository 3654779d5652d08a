package parse

import (
	"fmt"

	"github.com/tpham/grammarkit/internal/grammar"
)

// LRActionType names the four kinds of LR(0) table cell (spec.md §4.6),
// grounded on dekarrin/tunaq's internal/ictiobus/parse/lraction.go LRAction.
type LRActionType int

const (
	LRShift LRActionType = iota
	LRReduce
	LRAccept
	LRError
)

func (t LRActionType) String() string {
	switch t {
	case LRShift:
		return "shift"
	case LRReduce:
		return "reduce"
	case LRAccept:
		return "accept"
	default:
		return "error"
	}
}

// LRAction is a single ACTION/GOTO table cell. Production/Symbol are only
// meaningful when Type is LRReduce; State is only meaningful when Type is
// LRShift.
type LRAction struct {
	Type       LRActionType
	State      int
	Symbol     string
	Production grammar.Production
}

func (act LRAction) String() string {
	switch act.Type {
	case LRShift:
		return fmt.Sprintf("shift %d", act.State)
	case LRReduce:
		return fmt.Sprintf("reduce %s %s %s", act.Symbol, grammar.Arrow, act.Production.String())
	case LRAccept:
		return "accept"
	default:
		return "error"
	}
}

// Equal reports whether two actions name the same move, used to detect
// whether writing a second action into a filled cell is actually a
// conflict (spec.md §4.6) or a harmless re-derivation of the same action.
func (act LRAction) Equal(o LRAction) bool {
	if act.Type != o.Type {
		return false
	}
	switch act.Type {
	case LRShift:
		return act.State == o.State
	case LRReduce:
		return act.Symbol == o.Symbol && act.Production.Equal(o.Production)
	default:
		return true
	}
}

// LRConflict is a diagnostic describing a table cell that a second action
// tried to overwrite (spec.md §4.6/§7): "A cell already holding a shift or
// a different reduce when a reduce is written is a conflict." The builder
// keeps the first action it wrote and surfaces the rest here.
type LRConflict struct {
	State    int
	Terminal string
	Kept     LRAction
	Lost     LRAction
}

func (c LRConflict) String() string {
	return fmt.Sprintf("state %d, terminal %q: kept %s, lost %s", c.State, c.Terminal, c.Kept, c.Lost)
}
