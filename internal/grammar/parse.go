package grammar

import (
	"strings"

	"github.com/tpham/grammarkit/internal/gkerrors"
)

// FromText parses grammar text in the notation of spec.md §4.1 / §6:
// non-empty, non-whitespace lines of the form
//
//	HEAD ARROW ALT ( '|' ALT )*
//
// where ARROW is "→" or "->", each ALT is a whitespace-trimmed
// concatenation of single-character symbols, and the character "ɛ" denotes
// ε and is elided from the symbol sequence. The first head encountered
// becomes the axiom. Grounded on original_source/grammar.py's
// Grammar.from_text, generalized to reject reserved symbols and duplicate
// heads per spec.md §4.1 and §9's "implementers should fail for clarity."
func FromText(text string) (Grammar, error) {
	var axiom string
	order := make([]string, 0)
	rules := make(map[string][]Production)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		head, altsPart, err := splitArrow(line)
		if err != nil {
			return Grammar{}, err
		}

		head = strings.TrimSpace(head)
		if head == "" {
			return Grammar{}, gkerrors.Parse(line, "empty non-terminal name")
		}
		if isReserved(head) {
			return Grammar{}, gkerrors.WrapReserved(head)
		}
		if _, exists := rules[head]; exists {
			return Grammar{}, gkerrors.Parsef(line, "duplicate rule head %q", head)
		}

		prods, err := parseAlts(head, altsPart)
		if err != nil {
			return Grammar{}, err
		}

		rules[head] = prods
		order = append(order, head)
		if axiom == "" {
			axiom = head
		}
	}

	if axiom == "" {
		return Grammar{}, gkerrors.Parse(text, "no grammar rules found")
	}

	return newGrammar(axiom, rules, order)
}

func parseAlts(head, altsPart string) ([]Production, error) {
	var prods []Production
	for _, altStr := range strings.Split(altsPart, "|") {
		altStr = strings.TrimSpace(altStr)
		if altStr == "" {
			return nil, gkerrors.Parsef(altsPart, "empty alternative for %q without an %s marker", head, Epsilon)
		}

		var body Production
		for _, r := range altStr {
			sym := string(r)
			if sym == Epsilon {
				continue
			}
			if isReserved(sym) {
				return nil, gkerrors.WrapReserved(sym)
			}
			body = append(body, sym)
		}
		prods = append(prods, body)
	}
	return prods, nil
}

func splitArrow(line string) (head, rest string, err error) {
	if idx := strings.Index(line, Arrow); idx >= 0 {
		return line[:idx], line[idx+len(Arrow):], nil
	}
	if idx := strings.Index(line, asciiArrow); idx >= 0 {
		return line[:idx], line[idx+len(asciiArrow):], nil
	}
	return "", "", gkerrors.Parse(line, "malformed line: no '→' or '->' arrow found")
}
