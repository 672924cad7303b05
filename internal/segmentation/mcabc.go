package segmentation

import "gonum.org/v1/gonum/floats"

// ClassifyMCABC blends several normalized attributes into one score and
// runs the ABC pipeline on it. Each criterion with a positive weight and a
// positive maximum across rows contributes attribute/max (min-max scaling
// anchored at zero, so one outlier compresses everything else toward zero
// and stands out). Weights are renormalized to sum to one. When no
// criterion qualifies the fallback selector scores the rows directly.
func ClassifyMCABC(rows []Row, criteria []Criterion, fallback Selector, aPct, bPct float64) ([]Classified, error) {
	type component struct {
		sel    Selector
		max    float64
		weight float64
	}

	var (
		comps     []component
		weightSum float64
	)
	if len(rows) > 0 {
		vals := make([]float64, len(rows))
		for _, c := range criteria {
			if c.Weight <= 0 {
				continue
			}
			for i, r := range rows {
				vals[i] = c.Select(r)
			}
			max := floats.Max(vals)
			if max <= 0 {
				continue
			}
			comps = append(comps, component{sel: c.Select, max: max, weight: c.Weight})
			weightSum += c.Weight
		}
	}

	score := fallback
	if len(comps) > 0 {
		score = func(r Row) float64 {
			s := 0.0
			for _, c := range comps {
				s += (c.weight / weightSum) * (c.sel(r) / c.max)
			}
			return s
		}
	}

	return ClassifyABC(rows, score, aPct, bPct)
}
