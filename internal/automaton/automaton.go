package automaton

import (
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/tpham/grammarkit/internal/gkerrors"
	"github.com/tpham/grammarkit/internal/grammar"
	"github.com/tpham/grammarkit/internal/util"
)

// ItemSet is an ordered, deduplicated collection of Items (spec.md §3).
// Identity is by item membership, independent of insertion order; it is
// backed by a gods treeset keyed on the canonical (H, body, dot) tuple, the
// same ordered-set structure lr/tables.go (npillmayer/gorgo) uses for its
// item-set worklist.
type ItemSet struct {
	items *treeset.Set
}

func newItemSet(seed ...Item) *ItemSet {
	s := &ItemSet{items: treeset.NewWith(itemComparator)}
	for _, it := range seed {
		s.items.Add(it)
	}
	return s
}

// add inserts it if not already present, reporting whether it was new.
func (s *ItemSet) add(it Item) bool {
	if s.items.Contains(it) {
		return false
	}
	s.items.Add(it)
	return true
}

// Items returns the items of s in canonical (sorted) order.
func (s *ItemSet) Items() []Item {
	vals := s.items.Values()
	out := make([]Item, len(vals))
	for i, v := range vals {
		out[i] = v.(Item)
	}
	return out
}

// Len returns the number of items in s.
func (s *ItemSet) Len() int {
	return s.items.Size()
}

// Key is the canonical hash of the item set, used to recognize that two
// states are in fact the same state (spec.md §4.5: "two item sets with the
// same item membership are the same state").
func (s *ItemSet) Key() string {
	var sb strings.Builder
	for _, it := range s.Items() {
		sb.WriteString(it.key())
		sb.WriteByte(';')
	}
	return sb.String()
}

// String renders the item set as a semicolon-joined list of pretty-printed
// items, e.g. for the LR(0) state listing.
func (s *ItemSet) String() string {
	items := s.Items()
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, "; ")
}

// Closure computes the least set containing I and, for every item
// (H, body, dot) in it with body[dot] a non-terminal B, every item
// (B, body', 0) for each alternative body' of B, iterated to a fixed
// point (spec.md §4.5). Grounded on original_source/grammar.py's
// lr0_closure and lr/tables.go's closureSet, using an arraylist worklist
// in the latter's style instead of that function's recursive depth-capped
// version.
func Closure(seed *ItemSet, g grammar.Grammar) *ItemSet {
	out := newItemSet(seed.Items()...)

	worklist := arraylist.New()
	for _, it := range seed.Items() {
		worklist.Add(it)
	}

	for worklist.Size() > 0 {
		v, _ := worklist.Get(0)
		worklist.Remove(0)
		it := v.(Item)

		sym, ok := it.NextSymbol()
		if !ok || !g.IsNonTerminal(sym) {
			continue
		}
		for _, body := range g.Rules(sym) {
			cand := Item{Head: sym, Body: body, Dot: 0}
			if out.add(cand) {
				worklist.Add(cand)
			}
		}
	}

	return out
}

// Goto computes the closure of { (H, body, dot+1) | (H, body, dot) ∈ I,
// body[dot] == X } (spec.md §4.5). Returns an empty, non-closed ItemSet if
// no item of I has X past its dot.
func Goto(i *ItemSet, x string, g grammar.Grammar) *ItemSet {
	moved := newItemSet()
	for _, it := range i.Items() {
		sym, ok := it.NextSymbol()
		if ok && sym == x {
			moved.add(it.Advance())
		}
	}
	if moved.Len() == 0 {
		return moved
	}
	return Closure(moved, g)
}

// State is one numbered node of the LR(0) canonical collection (spec.md
// §3). Origins/InSymbols are the supplemented provenance view described in
// SPEC_FULL.md (grounded on original_source/grammar.py's lr0_states adding
// each new state's 'origin' and 'transition' sets): which other states lead
// here, and on what symbols, not just where this state leads.
type State struct {
	Index       int
	Items       *ItemSet
	Transitions map[string]int // outgoing: symbol -> successor state index
	Origins     map[int]bool   // predecessor state indices with an edge into this state
	InSymbols   util.StringSet // symbols used by some predecessor to reach this state
}

// StateGraph is the numbered LR(0) canonical collection with its
// transition graph (spec.md §3).
type StateGraph struct {
	States []*State
	index  map[string]int // canonical item-set key -> state index
}

func (sg *StateGraph) addState(items *ItemSet) int {
	idx := len(sg.States)
	st := &State{
		Index:       idx,
		Items:       items,
		Transitions: make(map[string]int),
		Origins:     make(map[int]bool),
		InSymbols:   util.NewStringSet(),
	}
	sg.States = append(sg.States, st)
	sg.index[items.Key()] = idx
	return idx
}

// Find returns the index of the state whose item set equals items, if any.
func (sg *StateGraph) Find(items *ItemSet) (int, bool) {
	idx, ok := sg.index[items.Key()]
	return idx, ok
}

// Build constructs the canonical collection of LR(0) item sets for g,
// starting from the closure of {(S', [axiom], 0)} as state 0 (spec.md
// §4.5). stateCap bounds the number of states constructed; exceeding it
// fails with a StateExplosion error (spec.md §5). Iteration order over
// symbols is the sorted union V ∪ T, to keep numbering deterministic.
func Build(g grammar.Grammar, stateCap int) (*StateGraph, error) {
	start := Item{Head: grammar.AugmentedStart, Body: grammar.Production{g.Axiom()}, Dot: 0}
	i0 := Closure(newItemSet(start), g)

	sg := &StateGraph{index: make(map[string]int)}
	sg.addState(i0)

	symbols := sortedSymbols(g)

	for {
		addedThisSweep := false
		statesAtSweepStart := len(sg.States)

		for idx := 0; idx < statesAtSweepStart; idx++ {
			st := sg.States[idx]
			for _, x := range symbols {
				j := Goto(st.Items, x, g)
				if j.Len() == 0 {
					continue
				}

				target, exists := sg.Find(j)
				if !exists {
					if len(sg.States) >= stateCap {
						return nil, gkerrors.StateExplosion(stateCap)
					}
					target = sg.addState(j)
					addedThisSweep = true
				}

				st.Transitions[x] = target
				sg.States[target].Origins[idx] = true
				sg.States[target].InSymbols.Add(x)
			}
		}

		if !addedThisSweep {
			break
		}
	}

	return sg, nil
}

// sortedSymbols returns the sorted union V ∪ T of g, using a gods treeset
// with the built-in string comparator (the DOMAIN STACK entry from
// npillmayer/gorgo's lr/tables.go) so canonical-collection numbering is
// deterministic.
func sortedSymbols(g grammar.Grammar) []string {
	set := treeset.NewWithStringComparator()
	for _, nt := range g.NonTerminals() {
		set.Add(nt)
	}
	for _, t := range g.Terminals().Elements() {
		set.Add(t)
	}

	vals := set.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.(string)
	}
	return out
}
