package segmentation

// ClassifyQuadrant assigns each row one of four labels from a 2x2 threshold
// split on two axes. "High" is inclusive: a value exactly at its threshold
// counts as high. No ranking or cumulation is involved; input order is
// preserved.
func ClassifyQuadrant(rows []Row, x, y Selector, xThreshold, yThreshold float64, labels QuadrantLabels) []Classified {
	out := make([]Classified, len(rows))
	for i, r := range rows {
		highX := x(r) >= xThreshold
		highY := y(r) >= yThreshold

		var label string
		switch {
		case highX && highY:
			label = labels.HighHigh
		case highX:
			label = labels.HighLow
		case highY:
			label = labels.LowHigh
		default:
			label = labels.LowLow
		}
		out[i] = Classified{Row: r, Class: label}
	}
	return out
}
