package segmentation

// Row is one entity (product, customer, supplier) with named numeric
// attributes. Attributes a row does not carry read as zero, matching the
// coercion policy applied at ingestion.
type Row struct {
	Key   string
	Attrs map[string]float64
}

// Selector extracts the numeric value a classification ranks or splits on.
type Selector func(Row) float64

// Attr returns a Selector reading the named attribute.
func Attr(name string) Selector {
	return func(r Row) float64 { return r.Attrs[name] }
}

// Product returns a Selector multiplying two attributes, e.g. annual value
// as demand x unit cost.
func Product(a, b string) Selector {
	return func(r Row) float64 { return r.Attrs[a] * r.Attrs[b] }
}

// ABC tier labels.
const (
	ClassA = "A"
	ClassB = "B"
	ClassC = "C"
)

// Classified is a row with its derived classification columns. For ranked
// classifications the slice is ordered by descending Value and
// CumulativePct is scoped to the classified set (the partition, for nested
// runs). Quadrant classifications fill only Class.
type Classified struct {
	Row
	Value         float64 `json:"value"`
	CumulativePct float64 `json:"cumulative_pct"`
	Class         string  `json:"class"`
}

// Criterion is one weighted attribute in a multi-criteria classification.
type Criterion struct {
	Name   string
	Select Selector
	Weight float64
}

// QuadrantLabels names the four cells of a 2x2 threshold split, keyed by
// whether the x and y values sit on the high side of their thresholds.
type QuadrantLabels struct {
	HighHigh string
	HighLow  string
	LowHigh  string
	LowLow   string
}
