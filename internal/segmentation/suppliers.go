package segmentation

// Supplier attribute names used by SegmentSuppliers. They double as the
// column headers of uploaded supplier tables.
const (
	AttrProfitImpact = "ProfitImpact"
	AttrSupplyRisk   = "SupplyRisk"
)

// Kraljic matrix labels.
const (
	SegmentStrategic   = "Strategic"
	SegmentLeverage    = "Leverage"
	SegmentBottleneck  = "Bottleneck"
	SegmentNonCritical = "Non-Critical"
)

// SegmentSuppliers places suppliers in the Kraljic matrix: profit impact on
// the x axis, supply risk on the y axis, one shared threshold for both.
func SegmentSuppliers(rows []Row, threshold float64) []Classified {
	return ClassifyQuadrant(rows,
		Attr(AttrProfitImpact), Attr(AttrSupplyRisk),
		threshold, threshold,
		QuadrantLabels{
			HighHigh: SegmentStrategic,
			HighLow:  SegmentLeverage,
			LowHigh:  SegmentBottleneck,
			LowLow:   SegmentNonCritical,
		})
}
