package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tpham/grammarkit/internal/grammar"
)

const balancedGrammar = `
S -> (S) | a
`

// TestBuild_BalancedGrammar is scenario S4 of spec.md §8.
func TestBuild_BalancedGrammar(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := grammar.FromText(balancedGrammar)
	require.NoError(err)

	sg, err := Build(g, 100)
	require.NoError(err)

	assert.Len(sg.States, 6)

	state0 := sg.States[0]
	items := state0.Items.Items()

	assert.Contains(items, Item{Head: grammar.AugmentedStart, Body: grammar.Production{"S"}, Dot: 0})
	assert.Contains(items, Item{Head: "S", Body: grammar.Production{"(", "S", ")"}, Dot: 0})
	assert.Contains(items, Item{Head: "S", Body: grammar.Production{"a"}, Dot: 0})
}

// TestBuild_ConflictGrammar is scenario S6 of spec.md §8: LR(0) should still
// construct 8 states for a grammar with LL(1) conflicts.
func TestBuild_ConflictGrammar(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := grammar.FromText(`
S -> Aa | Bb | ac
A -> a
B -> a
`)
	require.NoError(err)

	sg, err := Build(g, 100)
	require.NoError(err)

	assert.Len(sg.States, 8)
}

func TestBuild_StateExplosion(t *testing.T) {
	g, err := grammar.FromText(balancedGrammar)
	require.NoError(t, err)

	_, err = Build(g, 2)
	assert.Error(t, err)
}

// TestClosure_IsIdempotent is testable property 7 of spec.md §8.
func TestClosure_IsIdempotent(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := grammar.FromText(balancedGrammar)
	require.NoError(err)

	start := Item{Head: grammar.AugmentedStart, Body: grammar.Production{g.Axiom()}, Dot: 0}
	once := Closure(newItemSet(start), g)
	twice := Closure(once, g)

	assert.Equal(once.Key(), twice.Key())
}

func TestGoto_EmptyWhenNoItemAdvances(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := grammar.FromText(balancedGrammar)
	require.NoError(err)

	start := Item{Head: grammar.AugmentedStart, Body: grammar.Production{g.Axiom()}, Dot: 0}
	i0 := Closure(newItemSet(start), g)

	result := Goto(i0, "z", g)
	assert.Equal(0, result.Len())
}
