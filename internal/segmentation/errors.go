package segmentation

import "fmt"

// InvalidCutoffError reports cutoff percentages outside their domain.
// The A cutoff must lie strictly between 0 and 100 and the B cutoff must be
// non-negative. A+B above 100 is legal but leaves the C tier unreachable;
// that is the caller's call.
type InvalidCutoffError struct {
	APct float64
	BPct float64
}

func (e *InvalidCutoffError) Error() string {
	return fmt.Sprintf("invalid cutoffs: a=%.2f b=%.2f (need 0 < a < 100 and b >= 0)", e.APct, e.BPct)
}
