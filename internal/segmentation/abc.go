package segmentation

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ClassifyABC ranks rows by the selected value descending, accumulates the
// value share and assigns A/B/C tiers at the cutoff percentages. Ties keep
// their original relative order (stable sort), which decides which of two
// equal rows lands inside a cutoff boundary. A zero total classifies every
// row as C with a zero cumulative share.
func ClassifyABC(rows []Row, value Selector, aPct, bPct float64) ([]Classified, error) {
	if aPct <= 0 || aPct >= 100 || bPct < 0 {
		return nil, &InvalidCutoffError{APct: aPct, BPct: bPct}
	}

	out := make([]Classified, len(rows))
	values := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = Classified{Row: r, Value: value(r)}
		values[i] = out[i].Value
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })

	total := floats.Sum(values)
	if total == 0 {
		for i := range out {
			out[i].Class = ClassC
		}
		return out, nil
	}

	cum := 0.0
	for i := range out {
		cum += out[i].Value
		out[i].CumulativePct = 100 * cum / total
		out[i].Class = tierFor(out[i].CumulativePct, aPct, bPct)
	}

	return out, nil
}

// tierFor maps a cumulative share to its tier. Boundaries are inclusive on
// the higher tier: a row landing exactly on the A cutoff is an A.
func tierFor(pct, aPct, bPct float64) string {
	switch {
	case pct <= aPct:
		return ClassA
	case pct <= aPct+bPct:
		return ClassB
	default:
		return ClassC
	}
}
