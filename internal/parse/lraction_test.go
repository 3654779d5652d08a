package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tpham/grammarkit/internal/grammar"
)

func TestLRAction_Equal(t *testing.T) {
	a := LRAction{Type: LRShift, State: 3}
	b := LRAction{Type: LRShift, State: 3}
	c := LRAction{Type: LRShift, State: 4}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	r1 := LRAction{Type: LRReduce, Symbol: "S", Production: grammar.Production{"a"}}
	r2 := LRAction{Type: LRReduce, Symbol: "S", Production: grammar.Production{"a"}}
	r3 := LRAction{Type: LRReduce, Symbol: "S", Production: grammar.Production{"b"}}
	assert.True(t, r1.Equal(r2))
	assert.False(t, r1.Equal(r3))

	assert.False(t, a.Equal(r1))
}

func TestLRActionType_String(t *testing.T) {
	assert.Equal(t, "shift", LRShift.String())
	assert.Equal(t, "reduce", LRReduce.String())
	assert.Equal(t, "accept", LRAccept.String())
	assert.Equal(t, "error", LRError.String())
}
