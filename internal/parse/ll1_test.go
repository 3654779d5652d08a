package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpham/grammarkit/internal/grammar"
)

const exprGrammar = `
E -> TA
A -> +TA | ɛ
T -> FB
B -> *FB | ɛ
F -> (E) | a
`

func sym(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// TestLL1Parse_Accepts is scenario S1 of spec.md §8.
func TestLL1Parse_Accepts(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := grammar.FromText(exprGrammar)
	require.NoError(err)
	tbl := g.LL1Table(false)

	result := LL1Parse(g, tbl, sym("a+a*a"), 50)

	require.True(result.Accepted)
	assert.False(result.LimitReached)
	assert.Equal(LL1Accept, result.Steps[len(result.Steps)-1].Action)
}

// TestLL1Parse_Rejects is scenario S2 of spec.md §8.
func TestLL1Parse_Rejects(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := grammar.FromText(exprGrammar)
	require.NoError(err)
	tbl := g.LL1Table(false)

	result := LL1Parse(g, tbl, sym("a+"), 50)

	assert.False(result.Accepted)
	assert.Equal(LL1ParseError, result.Steps[len(result.Steps)-1].Action)
}

func TestLL1Parse_UnknownSymbol(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := grammar.FromText(exprGrammar)
	require.NoError(err)
	tbl := g.LL1Table(false)

	result := LL1Parse(g, tbl, sym("z"), 50)

	assert.False(result.Accepted)
	require.Len(result.Steps, 1)
	assert.Equal(LL1ParseError, result.Steps[0].Action)
}

func TestLL1Parse_StepLimitReached(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := grammar.FromText(exprGrammar)
	require.NoError(err)
	tbl := g.LL1Table(false)

	result := LL1Parse(g, tbl, sym("a+a*a"), 1)

	assert.False(result.Accepted)
	assert.True(result.LimitReached)
}
