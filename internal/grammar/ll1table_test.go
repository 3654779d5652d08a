package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLL1Table_ExprGrammar_NoConflicts(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := FromText(exprGrammar)
	require.NoError(err)

	tbl := g.LL1Table(false)
	assert.False(tbl.HasConflicts())

	body, ok := tbl.Lookup("E", "a")
	require.True(ok)
	assert.Equal(Production{"T", "A"}, body)

	body, ok = tbl.Lookup("A", EndMarker)
	require.True(ok)
	assert.True(body.Nullable(g))
	assert.Empty(body)

	_, ok = tbl.Lookup("A", "a")
	assert.False(ok)
}

// TestLL1Table_ConflictReporting is scenario S6 of spec.md §8.
func TestLL1Table_ConflictReporting(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := FromText(`
S -> Aa | Bb | ac
A -> a
B -> a
`)
	require.NoError(err)

	tbl := g.LL1Table(false)
	require.True(tbl.HasConflicts())

	var found *LL1Conflict
	for i := range tbl.Conflicts {
		if tbl.Conflicts[i].NonTerminal == "S" && tbl.Conflicts[i].Terminal == "a" {
			found = &tbl.Conflicts[i]
		}
	}
	require.NotNil(found)
	assert.Len(found.Bodies, 3)
}

func TestLL1Table_RawModeKeepsAllAlternatives(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := FromText(`
S -> Aa | Bb | ac
A -> a
B -> a
`)
	require.NoError(err)

	raw := g.LL1Table(true)
	strict := g.LL1Table(false)

	assert.Len(raw.Cell("S", "a"), 3)
	assert.Len(strict.Cell("S", "a"), 1)
}
