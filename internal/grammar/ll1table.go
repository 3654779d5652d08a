package grammar

import "github.com/tpham/grammarkit/internal/util"

// LL1Conflict is a diagnostic describing a table cell that received more
// than one distinct production, per spec.md §4.3 / §7: conflicts are
// reported, never raised, and the builder keeps going.
type LL1Conflict struct {
	NonTerminal string
	Terminal    string
	Bodies      []Production
}

// LL1Table is the predictive parsing table of spec.md §3/§4.3. In strict
// mode each cell keeps only the first alternative encountered; in raw mode
// every colliding alternative is retained for display. Each row is a
// util.SVSet[[]Production] keyed by terminal (and $), the same
// string-keyed-value set util.VSet was built for, rather than a bare
// map[string][]Production.
type LL1Table struct {
	Raw       bool
	cells     map[string]util.SVSet[[]Production]
	Conflicts []LL1Conflict
}

// LL1Table builds the predictive parsing table for g. When raw is false
// (strict mode) a conflicting cell keeps only its first alternative, the
// same one the LL1 driver will use; when raw is true every alternative that
// mapped to the cell is retained so a caller can render the full conflict.
// Grounded on original_source/grammar.py's parse_table/parse_table_cell,
// generalized per spec.md §4.3 to report rather than silently print
// conflicts.
func (g Grammar) LL1Table(raw bool) LL1Table {
	tbl := LL1Table{Raw: raw, cells: make(map[string]util.SVSet[[]Production])}

	terminals := g.Terminals().SortedElements()
	terminals = append(terminals, EndMarker)

	for _, v := range g.order {
		row := util.NewSVSet[[]Production]()
		for _, t := range terminals {
			cell := g.ll1Cell(v, t)
			if len(cell) == 0 {
				continue
			}
			if len(cell) > 1 {
				tbl.Conflicts = append(tbl.Conflicts, LL1Conflict{
					NonTerminal: v,
					Terminal:    t,
					Bodies:      cell,
				})
			}
			if raw {
				row.Set(t, cell)
			} else {
				row.Set(t, cell[:1])
			}
		}
		tbl.cells[v] = row
	}

	return tbl
}

// ll1Cell computes the raw (possibly multi-entry) cell for [v, t], per
// spec.md §4.3: an alternative is added if t is in its FNE_rule, and
// additionally every entirely-nullable alternative is added if t is in
// FOLLOW(v). Identical alternatives reached by both rules are folded into
// one entry rather than reported as a self-conflict.
func (g Grammar) ll1Cell(v, t string) []Production {
	var out []Production
	for _, body := range g.Rules(v) {
		if hasSymbol(g.fneOfSequence(body), t) {
			out = appendUniqueProduction(out, body)
		}
	}
	if g.FOLLOW(v).Has(t) {
		for _, body := range g.Rules(v) {
			if body.Nullable(g) {
				out = appendUniqueProduction(out, body)
			}
		}
	}
	return out
}

func hasSymbol(syms []string, t string) bool {
	for _, s := range syms {
		if s == t {
			return true
		}
	}
	return false
}

func appendUniqueProduction(into []Production, p Production) []Production {
	for _, existing := range into {
		if existing.Equal(p) {
			return into
		}
	}
	return append(into, p)
}

// Cell returns the (possibly multi-entry, in raw mode) contents of the
// table cell for non-terminal v on lookahead t.
func (tbl LL1Table) Cell(v, t string) []Production {
	row, ok := tbl.cells[v]
	if !ok || !row.Has(t) {
		return nil
	}
	return row.Get(t)
}

// Lookup returns the single production the driver should apply for
// (v, t), and whether one exists. In raw mode it still returns only the
// first entry, matching what strict mode would have kept.
func (tbl LL1Table) Lookup(v, t string) (Production, bool) {
	cell := tbl.Cell(v, t)
	if len(cell) == 0 {
		return nil, false
	}
	return cell[0], true
}

// HasConflicts reports whether any cell received more than one alternative.
func (tbl LL1Table) HasConflicts() bool {
	return len(tbl.Conflicts) > 0
}
