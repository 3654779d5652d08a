package parse

import (
	"github.com/tpham/grammarkit/internal/automaton"
	"github.com/tpham/grammarkit/internal/grammar"
)

// LR0Table is the ACTION/GOTO table of spec.md §4.6, built over the
// canonical collection of an automaton.StateGraph. ACTION is keyed by
// (state, terminal-or-$); GOTO is keyed by (state, non-terminal).
type LR0Table struct {
	Graph     *automaton.StateGraph
	action    map[int]map[string]LRAction
	goTo      map[int]map[string]int
	Conflicts []LRConflict
}

// BuildLR0Table derives the ACTION/GOTO table from sg over g (spec.md §4.6).
// For each state:
//   - a shift item (H, body, dot) with body[dot] a terminal a contributes
//     ACTION[state, a] = shift sg.Transitions[a];
//   - a reduce item (H, body, dot) at end with H != S' contributes
//     ACTION[state, t] = reduce (H, body) for every terminal t and for $ —
//     pure LR(0) reduces on any lookahead, unlike SLR(1)'s FOLLOW(H) gate;
//   - the item (S', [axiom], 1) contributes ACTION[state, $] = accept;
//   - every transition on a non-terminal X contributes GOTO[state, X].
//
// A cell already holding a shift or a different reduce when a second action
// is written is a conflict (spec.md §4.6/§7): the first action written is
// kept and the rest are recorded in Conflicts, never raised. Grounded on
// original_source/grammar.py's lr0_full_table, generalized to report rather
// than print conflicts, per the LL1Table precedent.
func BuildLR0Table(g grammar.Grammar, sg *automaton.StateGraph) LR0Table {
	tbl := LR0Table{
		Graph:  sg,
		action: make(map[int]map[string]LRAction),
		goTo:   make(map[int]map[string]int),
	}

	cols := append(g.Terminals().SortedElements(), grammar.EndMarker)

	for _, st := range sg.States {
		actionRow := make(map[string]LRAction)
		gotoRow := make(map[string]int)

		for sym, target := range st.Transitions {
			if g.IsNonTerminal(sym) {
				gotoRow[sym] = target
				continue
			}
			tbl.put(actionRow, st.Index, sym, LRAction{Type: LRShift, State: target})
		}

		for _, it := range st.Items.Items() {
			if !it.AtEnd() {
				continue
			}
			if it.Head == grammar.AugmentedStart {
				tbl.put(actionRow, st.Index, grammar.EndMarker, LRAction{Type: LRAccept})
				continue
			}
			for _, t := range cols {
				tbl.put(actionRow, st.Index, t, LRAction{Type: LRReduce, Symbol: it.Head, Production: it.Body})
			}
		}

		tbl.action[st.Index] = actionRow
		tbl.goTo[st.Index] = gotoRow
	}

	return tbl
}

// put writes act into row[sym] if empty, or records a conflict against
// whatever is already there (keeping the original, first-seen action).
func (tbl *LR0Table) put(row map[string]LRAction, state int, sym string, act LRAction) {
	if existing, ok := row[sym]; ok {
		if !existing.Equal(act) {
			tbl.Conflicts = append(tbl.Conflicts, LRConflict{State: state, Terminal: sym, Kept: existing, Lost: act})
		}
		return
	}
	row[sym] = act
}

// Action returns the ACTION table entry for (state, terminal), if any.
func (tbl LR0Table) Action(state int, terminal string) (LRAction, bool) {
	row, ok := tbl.action[state]
	if !ok {
		return LRAction{}, false
	}
	act, ok := row[terminal]
	return act, ok
}

// Goto returns the GOTO table entry for (state, nonTerminal), if any.
func (tbl LR0Table) Goto(state int, nonTerminal string) (int, bool) {
	row, ok := tbl.goTo[state]
	if !ok {
		return 0, false
	}
	target, ok := row[nonTerminal]
	return target, ok
}

// HasConflicts reports whether any ACTION cell received more than one
// distinct action during construction.
func (tbl LR0Table) HasConflicts() bool {
	return len(tbl.Conflicts) > 0
}
