// Package parse implements the LL(1) Driver (spec.md §4.4) and the LR(0)
// Table Builder & Driver (spec.md §4.6-§4.7).
package parse

import (
	"fmt"

	"github.com/tpham/grammarkit/internal/gkerrors"
	"github.com/tpham/grammarkit/internal/grammar"
	"github.com/tpham/grammarkit/internal/util"
)

// LL1Action names what a single LL(1) driver step did, per spec.md §4.4.
type LL1Action int

const (
	LL1Match LL1Action = iota
	LL1Apply
	LL1Accept
	LL1ParseError
)

func (a LL1Action) String() string {
	switch a {
	case LL1Match:
		return "match"
	case LL1Apply:
		return "apply"
	case LL1Accept:
		return "accept"
	case LL1ParseError:
		return "parse error"
	default:
		return "unknown"
	}
}

// LL1Step is one row of the LL(1) driver trace: the stack and remaining
// input as they stood before the action was taken, the action, and a
// human-readable detail (spec.md §4.4: "a trace (stack, remaining input,
// action) per step").
type LL1Step struct {
	Stack  []string
	Input  []string
	Action LL1Action
	Detail string
}

// LL1Result is the outcome of driving an LL(1) parser over an input
// string: whether it was accepted, and the full step trace (spec.md §6
// Grammar.ll1_parse).
type LL1Result struct {
	Accepted    bool
	LimitReached bool
	Steps       []LL1Step
}

// LL1Parse drives the stack-based top-down parser of spec.md §4.4 over
// input using table. The initial stack (top first) is [axiom, $]; $ is
// appended to input. Grounded on original_source/grammar.py's
// Grammar.parse, generalized so the trace is returned as a value (spec.md
// §9 "Scoped trace capture") instead of printed.
func LL1Parse(g grammar.Grammar, table grammar.LL1Table, input []string, limit int) LL1Result {
	terms := g.Terminals()
	for _, sym := range input {
		if !terms.Has(sym) {
			return LL1Result{
				Accepted: false,
				Steps: []LL1Step{{
					Input:  append([]string{}, input...),
					Action: LL1ParseError,
					Detail: gkerrors.UnknownSymbol(sym).Error(),
				}},
			}
		}
	}

	stack := util.Stack[string]{Of: []string{grammar.EndMarker, g.Axiom()}}
	remaining := append(append([]string{}, input...), grammar.EndMarker)

	var steps []LL1Step

	for step := 0; step < limit; step++ {
		s := stack.Peek()
		a := remaining[0]

		snapStack := append([]string{}, stack.Of...)
		snapInput := append([]string{}, remaining...)

		switch {
		case s == grammar.EndMarker && a == grammar.EndMarker:
			steps = append(steps, LL1Step{Stack: snapStack, Input: snapInput, Action: LL1Accept, Detail: "accept"})
			return LL1Result{Accepted: true, Steps: steps}

		case s == a:
			stack.Pop()
			remaining = remaining[1:]
			steps = append(steps, LL1Step{Stack: snapStack, Input: snapInput, Action: LL1Match, Detail: fmt.Sprintf("match %q", s)})

		case g.IsTerminal(s):
			steps = append(steps, LL1Step{Stack: snapStack, Input: snapInput, Action: LL1ParseError, Detail: fmt.Sprintf("expected %q on input, stack has terminal %q", a, s)})
			return LL1Result{Accepted: false, Steps: steps}

		default:
			body, ok := table.Lookup(s, a)
			if !ok {
				steps = append(steps, LL1Step{Stack: snapStack, Input: snapInput, Action: LL1ParseError, Detail: fmt.Sprintf("no table entry for [%s, %s]", s, a)})
				return LL1Result{Accepted: false, Steps: steps}
			}

			stack.Pop()
			for i := len(body) - 1; i >= 0; i-- {
				stack.Push(body[i])
			}
			steps = append(steps, LL1Step{Stack: snapStack, Input: snapInput, Action: LL1Apply, Detail: fmt.Sprintf("apply %s %s %s", s, grammar.Arrow, body.String())})
		}
	}

	return LL1Result{Accepted: false, LimitReached: true, Steps: steps}
}
