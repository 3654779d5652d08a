// Package trace implements the Trace Formatter of spec.md §4.8: pure
// rendering functions turning a Grammar, its tables, and driver results into
// human-readable text. None of these functions print; callers decide where
// the string goes (stdout, a REPL pane, a test assertion).
//
// Table layout is grounded on dekarrin/tunaq's internal/ictiobus/parse
// table Strings (e.g. slr.go's Table), which all build a [][]string grid
// and render it with rosed.Edit("").InsertTableOpts(...). The trailing-row
// trace format is original to this package, since original_source/grammar.py
// printed its trace as it went rather than building a value for it first.
package trace

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/tpham/grammarkit/internal/automaton"
	"github.com/tpham/grammarkit/internal/grammar"
	"github.com/tpham/grammarkit/internal/parse"
	"github.com/tpham/grammarkit/internal/util"
)

const defaultWrap = 100

func renderTable(data [][]string, headers bool) string {
	opts := rosed.Options{
		TableHeaders:             headers,
		NoTrailingLineSeparators: true,
	}
	return rosed.Edit("").InsertTableOpts(0, data, defaultWrap, opts).String()
}

// Grammar renders g's non-terminals and their alternatives in the order
// they were defined, one "H → alt1 | alt2 | ..." line per head (spec.md
// §4.8, GLOSSARY "pretty-print").
func Grammar(g grammar.Grammar) string {
	var sb strings.Builder
	for _, nt := range g.NonTerminals() {
		bodies := g.Rules(nt)
		alts := make([]string, len(bodies))
		for i, b := range bodies {
			alts[i] = b.String()
		}
		fmt.Fprintf(&sb, "%s %s %s\n", nt, grammar.Arrow, strings.Join(alts, " | "))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Sets renders the nullable/FNE/FOLLOW table for every non-terminal of g
// (spec.md §4.8), one row per non-terminal.
func Sets(g grammar.Grammar) string {
	data := [][]string{{"non-terminal", "nullable", "FNE", "FOLLOW"}}
	for _, nt := range g.NonTerminals() {
		data = append(data, []string{
			nt,
			fmt.Sprintf("%v", g.IsNullable(nt)),
			strings.Join(g.FNE(nt).SortedElements(), " "),
			strings.Join(g.FOLLOW(nt).SortedElements(), " "),
		})
	}
	return renderTable(data, true)
}

// LL1Table renders tbl as a non-terminal x terminal grid, each cell holding
// the production(s) selected for that (non-terminal, lookahead) pair, and
// appends a conflict list if tbl.HasConflicts() (spec.md §4.8, §7).
func LL1Table(g grammar.Grammar, tbl grammar.LL1Table) string {
	terms := g.Terminals().SortedElements()
	terms = append(terms, grammar.EndMarker)

	header := append([]string{""}, terms...)
	data := [][]string{header}

	for _, nt := range g.NonTerminals() {
		row := []string{nt}
		for _, t := range terms {
			cell := tbl.Cell(nt, t)
			parts := make([]string, len(cell))
			for i, p := range cell {
				parts[i] = p.String()
			}
			row = append(row, strings.Join(parts, " / "))
		}
		data = append(data, row)
	}

	out := renderTable(data, true)
	if tbl.HasConflicts() {
		var sb strings.Builder
		sb.WriteString(out)
		sb.WriteString("\n\nconflicts:\n")
		for _, c := range tbl.Conflicts {
			bodies := make([]string, len(c.Bodies))
			for i, b := range c.Bodies {
				bodies[i] = b.String()
			}
			fmt.Fprintf(&sb, "  [%s, %s]: %s\n", c.NonTerminal, c.Terminal, util.MakeTextList(bodies))
		}
		return strings.TrimRight(sb.String(), "\n")
	}
	return out
}

// LL1Trace renders a step-by-step account of an LL1Parse result: one row per
// step with the stack, remaining input, and action taken (spec.md §4.8).
func LL1Trace(result parse.LL1Result) string {
	data := [][]string{{"stack", "input", "action"}}
	for _, s := range result.Steps {
		data = append(data, []string{
			strings.Join(s.Stack, " "),
			strings.Join(s.Input, " "),
			fmt.Sprintf("%s: %s", s.Action, s.Detail),
		})
	}
	out := renderTable(data, true)
	return fmt.Sprintf("%s\n\n%s", out, outcomeLine(result.Accepted, result.LimitReached))
}

// States renders the LR(0) canonical collection of sg: each state's index,
// its items, and the supplemented provenance view (which states lead here
// and on what symbols, and where this state leads), per SPEC_FULL.md's
// state-origin extension of original_source/grammar.py's lr0_pp.
func States(sg *automaton.StateGraph) string {
	var sb strings.Builder
	for _, st := range sg.States {
		fmt.Fprintf(&sb, "state %d:\n", st.Index)
		for _, it := range st.Items.Items() {
			fmt.Fprintf(&sb, "  %s\n", it.String())
		}

		if len(st.Origins) > 0 {
			origins := make([]string, 0, len(st.Origins))
			for from := range st.Origins {
				origins = append(origins, fmt.Sprintf("%d", from))
			}
			fmt.Fprintf(&sb, "  from: %s on %s\n", strings.Join(origins, ", "), strings.Join(st.InSymbols.SortedElements(), " "))
		}

		transitions := make([]string, 0, len(st.Transitions))
		for sym, to := range st.Transitions {
			transitions = append(transitions, fmt.Sprintf("%s -> %d", sym, to))
		}
		if len(transitions) > 0 {
			fmt.Fprintf(&sb, "  goes to: %s\n", strings.Join(transitions, ", "))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// LR0Table renders tbl's ACTION/GOTO grid, one row per state and one column
// per terminal (plus $) and non-terminal, in the idiom of
// dekarrin/tunaq's internal/ictiobus/parse/slr.go Table.
func LR0Table(g grammar.Grammar, tbl parse.LR0Table) string {
	terms := g.Terminals().SortedElements()
	terms = append(terms, grammar.EndMarker)
	nts := g.NonTerminals()

	header := []string{"state"}
	header = append(header, terms...)
	header = append(header, "|")
	header = append(header, nts...)
	data := [][]string{header}

	for _, st := range tbl.Graph.States {
		row := []string{fmt.Sprintf("%d", st.Index)}
		for _, t := range terms {
			cell := ""
			if act, ok := tbl.Action(st.Index, t); ok {
				cell = act.String()
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nts {
			cell := ""
			if to, ok := tbl.Goto(st.Index, nt); ok {
				cell = fmt.Sprintf("%d", to)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	out := renderTable(data, true)
	if tbl.HasConflicts() {
		var sb strings.Builder
		sb.WriteString(out)
		sb.WriteString("\n\nconflicts:\n")
		for _, c := range tbl.Conflicts {
			fmt.Fprintf(&sb, "  %s\n", c)
		}
		return strings.TrimRight(sb.String(), "\n")
	}
	return out
}

// LR0Trace renders a step-by-step account of an LR0Parse result: one row
// per step with the state stack, symbol stack, remaining input, and action
// taken (spec.md §4.8).
func LR0Trace(result parse.LR0Result) string {
	data := [][]string{{"states", "symbols", "input", "action"}}
	for _, s := range result.Steps {
		data = append(data, []string{
			fmt.Sprintf("%v", s.States),
			strings.Join(s.Symbols, " "),
			strings.Join(s.Input, " "),
			fmt.Sprintf("%s: %s", s.Action, s.Detail),
		})
	}
	out := renderTable(data, true)
	return fmt.Sprintf("%s\n\n%s", out, outcomeLine(result.Accepted, result.LimitReached))
}

func outcomeLine(accepted, limitReached bool) string {
	switch {
	case accepted:
		return "result: accepted"
	case limitReached:
		return "result: step limit reached without a decision"
	default:
		return "result: rejected"
	}
}

// Stats composes a short summary of g: non-terminal/terminal/rule counts,
// whether the strict LL1Table has conflicts, and the LR(0) state count,
// per SPEC_FULL.md's supplemented "stats" feature (grounded on
// original_source/grammar.py's stats/stats_ll1/stats_lr0). stateCap bounds
// the LR(0) construction attempted for the state count; a state-explosion
// error is reported as a line in the summary rather than returned, since
// Stats itself cannot fail.
func Stats(g grammar.Grammar, stateCap int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "non-terminals: %d\n", len(g.NonTerminals()))
	fmt.Fprintf(&sb, "terminals: %d\n", g.Terminals().Len())
	fmt.Fprintf(&sb, "rules: %d\n", g.RuleCount())

	ll1 := g.LL1Table(false)
	fmt.Fprintf(&sb, "LL(1): %s\n", ll1ConflictSummary(ll1))

	sg, err := automaton.Build(g, stateCap)
	if err != nil {
		fmt.Fprintf(&sb, "LR(0): %s\n", err.Error())
		return strings.TrimRight(sb.String(), "\n")
	}
	tbl := parse.BuildLR0Table(g, sg)
	fmt.Fprintf(&sb, "LR(0): %d states, %s\n", len(sg.States), lr0ConflictSummary(tbl))

	return strings.TrimRight(sb.String(), "\n")
}

func ll1ConflictSummary(tbl grammar.LL1Table) string {
	if !tbl.HasConflicts() {
		return "no conflicts"
	}
	return fmt.Sprintf("%d conflicting cell(s)", len(tbl.Conflicts))
}

func lr0ConflictSummary(tbl parse.LR0Table) string {
	if !tbl.HasConflicts() {
		return "no conflicts"
	}
	return fmt.Sprintf("%d conflicting cell(s)", len(tbl.Conflicts))
}
