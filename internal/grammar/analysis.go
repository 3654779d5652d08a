package grammar

import "github.com/tpham/grammarkit/internal/util"

// analyze computes is_nullable, FNE, and FOLLOW as explicit worklist fixed
// points and caches them on g. spec.md §9 notes that the original source
// computes these by naive recursion with an ad-hoc guard against
// self-recursion in FOLLOW; this implementation instead iterates each set
// to a fixed point, which both eliminates the guard and makes termination
// obvious on left- or right-recursive grammars.
func (g *Grammar) analyze() {
	g.nullable = g.computeNullable()
	g.fne = g.computeFNE()
	g.follow = g.computeFollow()
}

func (g *Grammar) computeNullable() util.StringSet {
	nullable := util.NewStringSet()

	changed := true
	for changed {
		changed = false
		for _, nt := range g.order {
			if nullable.Has(nt) {
				continue
			}
			for _, body := range g.rules[nt] {
				if g.bodyNullableUnder(body, nullable) {
					nullable.Add(nt)
					changed = true
					break
				}
			}
		}
	}

	return nullable
}

// bodyNullableUnder reports whether every symbol of body is nullable,
// terminals never being nullable, under the nullable set computed so far.
func (g *Grammar) bodyNullableUnder(body Production, nullable util.StringSet) bool {
	for _, sym := range body {
		if g.IsTerminal(sym) {
			return false
		}
		if !nullable.Has(sym) {
			return false
		}
	}
	return true
}

func (g *Grammar) computeFNE() map[string]util.StringSet {
	fne := make(map[string]util.StringSet, len(g.order))
	for _, nt := range g.order {
		fne[nt] = util.NewStringSet()
	}

	changed := true
	for changed {
		changed = false
		for _, nt := range g.order {
			for _, body := range g.rules[nt] {
				for _, sym := range g.fneOfBodyUsing(body, fne) {
					if !fne[nt].Has(sym) {
						fne[nt].Add(sym)
						changed = true
					}
				}
			}
		}
	}

	return fne
}

// fneOfBodyUsing scans body left to right, accumulating the FNE of each
// terminal symbol as-is, and the FNE of each non-terminal symbol from the
// partial result fne, stopping after (and including) the first symbol that
// is not known-nullable yet (spec.md §4.2 FNE_rule).
func (g *Grammar) fneOfBodyUsing(body Production, fne map[string]util.StringSet) []string {
	var out []string
	for _, sym := range body {
		if g.IsTerminal(sym) {
			out = append(out, sym)
			break
		}
		out = append(out, fne[sym].Elements()...)
		if !g.nullable.Has(sym) {
			break
		}
	}
	return out
}

func (g *Grammar) computeFollow() map[string]util.StringSet {
	follow := make(map[string]util.StringSet, len(g.order))
	for _, nt := range g.order {
		follow[nt] = util.NewStringSet()
	}
	if _, ok := follow[g.axiom]; ok {
		follow[g.axiom].Add(EndMarker)
	}

	changed := true
	for changed {
		changed = false
		for _, head := range g.order {
			for _, body := range g.rules[head] {
				for i, sym := range body {
					if g.IsTerminal(sym) {
						continue
					}
					beta := body[i+1:]

					before := follow[sym].Len()
					for _, t := range g.fneOfSequence(beta) {
						follow[sym].Add(t)
					}
					if g.isSequenceNullable(beta) {
						for _, t := range follow[head].Elements() {
							follow[sym].Add(t)
						}
					}
					if follow[sym].Len() != before {
						changed = true
					}
				}
			}
		}
	}

	return follow
}

// fneOfSequence is FNE_rule(beta) using the grammar's fully-converged FNE
// table (valid once computeFNE has run).
func (g *Grammar) fneOfSequence(beta Production) []string {
	var out []string
	for _, sym := range beta {
		out = append(out, g.FNE(sym).Elements()...)
		if !g.IsNullable(sym) {
			break
		}
	}
	return out
}

func (g *Grammar) isSequenceNullable(beta Production) bool {
	for _, sym := range beta {
		if !g.IsNullable(sym) {
			return false
		}
	}
	return true
}

// IsNullable reports whether x can derive the empty string. Terminals are
// never nullable (spec.md §4.2).
func (g Grammar) IsNullable(x string) bool {
	if g.IsTerminal(x) {
		return false
	}
	return g.nullable.Has(x)
}

// FNE returns the first-non-epsilon set of x: {x} for a terminal, or the
// union over x's alternatives of FNE_rule(body) for a non-terminal. Never
// contains ε (spec.md §4.2).
func (g Grammar) FNE(x string) util.StringSet {
	if g.IsTerminal(x) {
		return util.StringSetOf([]string{x})
	}
	return util.NewStringSet(g.fne[x])
}

// FIRST returns FNE(x) unioned with {""} when x is nullable (spec.md §4.2,
// GLOSSARY).
func (g Grammar) FIRST(x string) util.StringSet {
	first := util.NewStringSet()
	first.AddAll(g.FNE(x))
	if g.IsNullable(x) {
		first.Add("")
	}
	return first
}

// FOLLOW returns the terminals (plus $) that can appear immediately after
// x in some sentential form. Only defined for non-terminals; callers must
// not call it on a terminal (spec.md §8 property 2).
func (g Grammar) FOLLOW(x string) util.StringSet {
	return util.NewStringSet(g.follow[x])
}
