// Package gkerrors defines the error types raised by grammar construction
// and the diagnostics surfaced (but not raised) by table building and
// parsing.
package gkerrors

import (
	"errors"
	"fmt"
)

// gkError is the common shape behind every error constructor in this
// package: a message for Error(), an optional wrapped cause, and a kind tag
// used so callers can type-switch without exporting a struct per kind.
type gkError struct {
	kind string
	msg  string
	wrap error
}

func (e *gkError) Error() string {
	return e.msg
}

func (e *gkError) Unwrap() error {
	return e.wrap
}

// Kind returns the short tag identifying which of the §7 error kinds this
// is ("parse", "unknown-symbol", "state-explosion").
func (e *gkError) Kind() string {
	return e.kind
}

// Parse builds a GrammarParseError for a malformed line of grammar text.
func Parse(line string, reason string) error {
	return &gkError{kind: "parse", msg: fmt.Sprintf("grammar parse error: %s: %q", reason, line)}
}

// Parsef is Parse with a formatted reason.
func Parsef(line string, reasonFmt string, a ...interface{}) error {
	return Parse(line, fmt.Sprintf(reasonFmt, a...))
}

// UnknownSymbol builds an error for a driver that observed an input symbol
// that is neither a grammar terminal nor the end marker.
func UnknownSymbol(sym string) error {
	return &gkError{kind: "unknown-symbol", msg: fmt.Sprintf("symbol %q is not a terminal of this grammar", sym)}
}

// StateExplosion builds an error for an LR(0) automaton that exceeded its
// configured state-count cap.
func StateExplosion(cap int) error {
	return &gkError{kind: "state-explosion", msg: fmt.Sprintf("LR(0) construction exceeded the state cap of %d states", cap)}
}

// WrapReserved wraps a construction failure caused by a grammar using one
// of the symbols reserved in spec.md §6 ($, ɛ, S', •, →).
func WrapReserved(sym string) error {
	return &gkError{kind: "parse", msg: fmt.Sprintf("grammar uses reserved symbol %q", sym)}
}

// IsKind reports whether err (or something it wraps) is a gkerrors value of
// the given kind.
func IsKind(err error, kind string) bool {
	var gk *gkError
	if !errors.As(err, &gk) {
		return false
	}
	return gk.kind == kind
}
