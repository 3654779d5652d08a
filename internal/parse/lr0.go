package parse

import (
	"fmt"

	"github.com/tpham/grammarkit/internal/gkerrors"
	"github.com/tpham/grammarkit/internal/grammar"
	"github.com/tpham/grammarkit/internal/util"
)

// LR0Step is one row of the LR(0) driver trace: the state stack and symbol
// stack as they stood before the action, the remaining input, the action
// taken, and a human-readable detail (spec.md §4.7, mirroring LL1Step).
type LR0Step struct {
	States  []int
	Symbols []string
	Input   []string
	Action  LRActionType
	Detail  string
}

// LR0Result is the outcome of driving an LR(0) parser over an input string
// (spec.md §4.7).
type LR0Result struct {
	Accepted     bool
	LimitReached bool
	Steps        []LR0Step
}

// LR0Parse drives the shift-reduce automaton of spec.md §4.7 over input
// using tbl. The state stack starts at [0]; input has $ appended. On shift,
// the terminal is pushed onto the symbol stack and the target state onto
// the state stack. On reduce by H -> body, len(body) symbols (and states)
// are popped, H is pushed, and the state reached by GOTO[top, H] is pushed.
// A reduce at a state with more than one applicable item is reported as a
// parse error naming the conflicting items, rather than silently picking
// one (spec.md §7). Grounded on original_source/grammar.py's Grammar.parse
// LR(0) branch, generalized to return a trace value instead of printing.
func LR0Parse(g grammar.Grammar, tbl LR0Table, input []string, limit int) LR0Result {
	terms := g.Terminals()
	for _, sym := range input {
		if !terms.Has(sym) {
			return LR0Result{
				Steps: []LR0Step{{
					Input:  append([]string{}, input...),
					Action: LRError,
					Detail: gkerrors.UnknownSymbol(sym).Error(),
				}},
			}
		}
	}

	states := util.Stack[int]{Of: []int{0}}
	symbols := util.Stack[string]{Of: nil}
	remaining := append(append([]string{}, input...), grammar.EndMarker)

	var steps []LR0Step

	for step := 0; step < limit; step++ {
		cur := states.Peek()
		a := remaining[0]

		snapStates := append([]int{}, states.Of...)
		snapSymbols := append([]string{}, symbols.Of...)
		snapInput := append([]string{}, remaining...)

		act, ok := tbl.Action(cur, a)
		if !ok {
			steps = append(steps, LR0Step{
				States: snapStates, Symbols: snapSymbols, Input: snapInput,
				Action: LRError, Detail: fmt.Sprintf("no action for state %d on %q", cur, a),
			})
			return LR0Result{Steps: steps}
		}

		switch act.Type {
		case LRAccept:
			steps = append(steps, LR0Step{
				States: snapStates, Symbols: snapSymbols, Input: snapInput,
				Action: LRAccept, Detail: "accept",
			})
			return LR0Result{Accepted: true, Steps: steps}

		case LRShift:
			states.Push(act.State)
			symbols.Push(a)
			remaining = remaining[1:]
			steps = append(steps, LR0Step{
				States: snapStates, Symbols: snapSymbols, Input: snapInput,
				Action: LRShift, Detail: fmt.Sprintf("shift %q, goto %d", a, act.State),
			})

		case LRReduce:
			var reduceItems []string
			for _, it := range tbl.Graph.States[cur].Items.Items() {
				if it.AtEnd() {
					reduceItems = append(reduceItems, it.String())
				}
			}
			if len(reduceItems) > 1 {
				steps = append(steps, LR0Step{
					States: snapStates, Symbols: snapSymbols, Input: snapInput,
					Action: LRError, Detail: fmt.Sprintf("reduce conflict in state %d between %s", cur, util.MakeTextList(reduceItems)),
				})
				return LR0Result{Steps: steps}
			}

			n := len(act.Production)
			for i := 0; i < n; i++ {
				states.Pop()
				symbols.Pop()
			}
			symbols.Push(act.Symbol)
			next, ok := tbl.Goto(states.Peek(), act.Symbol)
			if !ok {
				steps = append(steps, LR0Step{
					States: snapStates, Symbols: snapSymbols, Input: snapInput,
					Action: LRError, Detail: fmt.Sprintf("no goto for state %d on %q", states.Peek(), act.Symbol),
				})
				return LR0Result{Steps: steps}
			}
			states.Push(next)
			steps = append(steps, LR0Step{
				States: snapStates, Symbols: snapSymbols, Input: snapInput,
				Action: LRReduce, Detail: fmt.Sprintf("reduce %s %s %s, goto %d", act.Symbol, grammar.Arrow, act.Production.String(), next),
			})

		default:
			steps = append(steps, LR0Step{
				States: snapStates, Symbols: snapSymbols, Input: snapInput,
				Action: LRError, Detail: fmt.Sprintf("error action at state %d on %q", cur, a),
			})
			return LR0Result{Steps: steps}
		}
	}

	return LR0Result{LimitReached: true, Steps: steps}
}
