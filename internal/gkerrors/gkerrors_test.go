package gkerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKind(t *testing.T) {
	err := Parse("S -> a b", "malformed line")
	assert.True(t, IsKind(err, "parse"))
	assert.False(t, IsKind(err, "unknown-symbol"))

	unk := UnknownSymbol("z")
	assert.True(t, IsKind(unk, "unknown-symbol"))

	assert.False(t, IsKind(nil, "parse"))
}

func TestStateExplosion_MentionsCap(t *testing.T) {
	err := StateExplosion(42)
	assert.Contains(t, err.Error(), "42")
}

func TestWrapReserved_MentionsSymbol(t *testing.T) {
	err := WrapReserved("$")
	assert.Contains(t, err.Error(), "$")
}
