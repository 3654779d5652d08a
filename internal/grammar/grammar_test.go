package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exprGrammar = `
E -> TA
A -> +TA | ɛ
T -> FB
B -> *FB | ɛ
F -> (E) | a
`

func TestFromText_ExprGrammar(t *testing.T) {
	assert := assert.New(t)

	g, err := FromText(exprGrammar)
	require.NoError(t, err)

	assert.Equal("E", g.Axiom())
	assert.ElementsMatch([]string{"a", "(", ")", "+", "*"}, g.Terminals().Elements())

	assert.ElementsMatch([]string{"a", "("}, g.FNE("E").Elements())
	assert.ElementsMatch([]string{"+"}, g.FNE("A").Elements())
	assert.ElementsMatch([]string{"*"}, g.FNE("B").Elements())

	assert.ElementsMatch([]string{EndMarker, ")"}, g.FOLLOW("E").Elements())
	assert.ElementsMatch([]string{"+", EndMarker, ")"}, g.FOLLOW("T").Elements())
	assert.ElementsMatch([]string{"*", "+", EndMarker, ")"}, g.FOLLOW("F").Elements())
}

func TestFromText_NullableComposition(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	g, err := FromText(`
S -> ABC
A -> ɛ
B -> ɛ
C -> ABd
`)
	require.NoError(err)

	assert.False(g.IsNullable("S"))
	assert.ElementsMatch([]string{"d"}, g.FNE("S").Elements())
}

func TestFromText_Errors(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{name: "empty text", text: ""},
		{name: "malformed line, no arrow", text: "S a b c"},
		{name: "duplicate head", text: "S -> a\nS -> b\n"},
		{name: "reserved symbol as head", text: "$ -> a\n"},
		{name: "reserved symbol in body", text: "S -> a$\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromText(tc.text)
			assert.Error(t, err)
		})
	}
}

// TestFIRST_EqualsFNEPlusEpsilon is testable property 1 of spec.md §8.
func TestFIRST_EqualsFNEPlusEpsilon(t *testing.T) {
	g, err := FromText(exprGrammar)
	require.NoError(t, err)

	for _, nt := range g.NonTerminals() {
		first := g.FIRST(nt)
		fne := g.FNE(nt)

		if g.IsNullable(nt) {
			assert.True(t, first.Has(""))
			assert.Equal(t, fne.Len()+1, first.Len())
		} else {
			assert.False(t, first.Has(""))
			assert.Equal(t, fne.Len(), first.Len())
		}
		for _, sym := range fne.Elements() {
			assert.True(t, first.Has(sym))
		}
	}
}

// TestFNE_OfTerminalIsItself is testable property 2 of spec.md §8.
func TestFNE_OfTerminalIsItself(t *testing.T) {
	g, err := FromText(exprGrammar)
	require.NoError(t, err)

	for _, term := range g.Terminals().Elements() {
		assert.ElementsMatch(t, []string{term}, g.FNE(term).Elements())
	}
}

func TestGrammar_RuleCount(t *testing.T) {
	g, err := FromText(exprGrammar)
	require.NoError(t, err)

	assert.Equal(t, 8, g.RuleCount())
}
