package trace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpham/grammarkit/internal/automaton"
	"github.com/tpham/grammarkit/internal/grammar"
	"github.com/tpham/grammarkit/internal/parse"
)

const exprGrammar = `
E -> TA
A -> +TA | ɛ
T -> FB
B -> *FB | ɛ
F -> (E) | a
`

func mustGrammar(t *testing.T) grammar.Grammar {
	t.Helper()
	g, err := grammar.FromText(exprGrammar)
	require.NoError(t, err)
	return g
}

func TestGrammar_ListsEveryHead(t *testing.T) {
	g := mustGrammar(t)
	out := Grammar(g)
	for _, nt := range g.NonTerminals() {
		assert.Contains(t, out, nt)
	}
}

func TestSets_RendersWithoutPanicking(t *testing.T) {
	g := mustGrammar(t)
	out := Sets(g)
	assert.Contains(t, out, "nullable")
	assert.Contains(t, out, "FOLLOW")
}

func TestLL1Table_RendersConflictsWhenPresent(t *testing.T) {
	g, err := grammar.FromText(`
S -> Aa | Bb | ac
A -> a
B -> a
`)
	require.NoError(t, err)

	tbl := g.LL1Table(false)
	out := LL1Table(g, tbl)
	assert.Contains(t, out, "conflicts:")
}

func TestLL1Trace_ShowsOutcome(t *testing.T) {
	g := mustGrammar(t)
	tbl := g.LL1Table(false)

	sym := []string{"a", "+", "a", "*", "a"}
	result := parse.LL1Parse(g, tbl, sym, 50)

	out := LL1Trace(result)
	assert.True(t, strings.Contains(out, "result: accepted"))
}

func TestStates_RendersOriginsAndTransitions(t *testing.T) {
	g, err := grammar.FromText("S -> (S) | a\n")
	require.NoError(t, err)

	sg, err := automaton.Build(g, 100)
	require.NoError(t, err)

	out := States(sg)
	assert.Contains(t, out, "state 0:")
	assert.Contains(t, out, "goes to:")
}

func TestLR0Table_Renders(t *testing.T) {
	g, err := grammar.FromText("S -> (S) | a\n")
	require.NoError(t, err)

	sg, err := automaton.Build(g, 100)
	require.NoError(t, err)

	tbl := parse.BuildLR0Table(g, sg)
	out := LR0Table(g, tbl)
	assert.Contains(t, out, "state")
}

func TestStats_ComposesCounts(t *testing.T) {
	g := mustGrammar(t)
	out := Stats(g, 10000)
	assert.Contains(t, out, "non-terminals:")
	assert.Contains(t, out, "LL(1):")
	assert.Contains(t, out, "LR(0):")
}
