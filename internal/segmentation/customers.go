package segmentation

import "sort"

// Customer attribute names used by SegmentCustomers. They double as the
// column headers of uploaded customer tables.
const (
	AttrRevenue     = "Revenue"
	AttrCostToServe = "CostToServe"
	AttrProfit      = "Profit"
	AttrMargin      = "ProfitMargin"
)

// Customer segment labels.
const (
	SegmentKeyAccount       = "Key Account"
	SegmentHighRevLowMargin = "High Rev - Low Margin"
	SegmentGrowthNiche      = "Growth / Niche"
	SegmentStandard         = "Standard"
)

// SegmentCustomers aggregates revenue and profit per customer key, derives
// the profit margin (zero when a customer has no revenue) and splits the
// customers into four segments against the median revenue and the given
// margin threshold (in percent). Duplicate rows for one customer are summed
// before thresholding. The result keeps first-seen customer order.
func SegmentCustomers(rows []Row, marginThresholdPct float64) []Classified {
	index := make(map[string]int, len(rows))
	agg := make([]Row, 0, len(rows))
	for _, r := range rows {
		i, ok := index[r.Key]
		if !ok {
			i = len(agg)
			index[r.Key] = i
			agg = append(agg, Row{Key: r.Key, Attrs: map[string]float64{}})
		}
		revenue := r.Attrs[AttrRevenue]
		agg[i].Attrs[AttrRevenue] += revenue
		agg[i].Attrs[AttrProfit] += revenue - r.Attrs[AttrCostToServe]
	}

	revenues := make([]float64, len(agg))
	for i, r := range agg {
		if rev := r.Attrs[AttrRevenue]; rev > 0 {
			r.Attrs[AttrMargin] = r.Attrs[AttrProfit] / rev
		} else {
			r.Attrs[AttrMargin] = 0
		}
		revenues[i] = r.Attrs[AttrRevenue]
	}

	return ClassifyQuadrant(agg,
		Attr(AttrRevenue), Attr(AttrMargin),
		median(revenues), marginThresholdPct/100,
		QuadrantLabels{
			HighHigh: SegmentKeyAccount,
			HighLow:  SegmentHighRevLowMargin,
			LowHigh:  SegmentGrowthNiche,
			LowLow:   SegmentStandard,
		})
}

// median is the midpoint median: the mean of the two middle values for an
// even count. Returns 0 for an empty input.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
