package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpham/grammarkit/internal/automaton"
	"github.com/tpham/grammarkit/internal/grammar"
)

const wikipediaGrammar = `
E -> E*B | E+B | B
B -> 0 | 1
`

// TestLR0Parse_WikipediaExample is scenario S5 of spec.md §8.
func TestLR0Parse_WikipediaExample(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := grammar.FromText(wikipediaGrammar)
	require.NoError(err)

	sg, err := automaton.Build(g, 100)
	require.NoError(err)

	tbl := BuildLR0Table(g, sg)

	result := LR0Parse(g, tbl, sym("1+1"), 20)

	require.True(result.Accepted)
	assert.Equal(LRAccept, result.Steps[len(result.Steps)-1].Action)
}

func TestLR0Parse_BalancedGrammar(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := grammar.FromText(`
S -> (S) | a
`)
	require.NoError(err)

	sg, err := automaton.Build(g, 100)
	require.NoError(err)
	assert.Len(sg.States, 6)

	tbl := BuildLR0Table(g, sg)

	accepted := LR0Parse(g, tbl, sym("((a))"), 20)
	assert.True(accepted.Accepted)

	rejected := LR0Parse(g, tbl, sym("((a)"), 20)
	assert.False(rejected.Accepted)
}

func TestLR0Parse_StepLimitReached(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := grammar.FromText(`
S -> (S) | a
`)
	require.NoError(err)

	sg, err := automaton.Build(g, 100)
	require.NoError(err)
	tbl := BuildLR0Table(g, sg)

	result := LR0Parse(g, tbl, sym("((a))"), 1)
	assert.False(result.Accepted)
	assert.True(result.LimitReached)
}
