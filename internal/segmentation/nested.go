package segmentation

// ClassifyNested runs a two-level ABC: rows get a primary tier, then each
// primary partition is re-classified independently on the secondary
// selector, with cumulative shares scoped to the partition total. The final
// label is "{primary}-{secondary}", so a high-volume-but-low-value item
// ("A-C") is distinguishable from a high-volume-and-high-value one ("A-A").
func ClassifyNested(rows []Row, primary, secondary Selector, aPct, bPct float64) ([]Classified, error) {
	first, err := ClassifyABC(rows, primary, aPct, bPct)
	if err != nil {
		return nil, err
	}

	partitions := make(map[string][]Row, 3)
	for _, c := range first {
		partitions[c.Class] = append(partitions[c.Class], c.Row)
	}

	out := make([]Classified, 0, len(rows))
	for _, tier := range []string{ClassA, ClassB, ClassC} {
		part := partitions[tier]
		if len(part) == 0 {
			continue
		}
		sub, err := ClassifyABC(part, secondary, aPct, bPct)
		if err != nil {
			return nil, err
		}
		for _, c := range sub {
			c.Class = tier + "-" + c.Class
			out = append(out, c)
		}
	}

	return out, nil
}
