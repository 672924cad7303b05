package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/andresuchdata/sc-toolkit/backend-go/internal/domain"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/eoq"
)

// WriteRanked renders a ranked classification (ABC, MCABC, nested) as CSV:
// the key column, the listed attributes, then the derived value, cumulative
// share and class.
func WriteRanked(w io.Writer, keyHeader string, attrCols []string, rows []domain.ClassifiedRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := append([]string{keyHeader}, attrCols...)
	header = append(header, "Value", "Cumulative%", "Class")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		record := make([]string, 0, len(header))
		record = append(record, row.Key)
		for _, col := range attrCols {
			record = append(record, formatFloat(row.Attrs[col]))
		}
		record = append(record,
			formatFloat(row.Value),
			formatFloat(roundFloat(row.CumulativePct, 4)),
			row.Class,
		)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSegments renders a quadrant classification as CSV: the key column,
// the listed attributes and the segment label.
func WriteSegments(w io.Writer, keyHeader string, attrCols []string, rows []domain.ClassifiedRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := append([]string{keyHeader}, attrCols...)
	header = append(header, "Segment")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		record := make([]string, 0, len(header))
		record = append(record, row.Key)
		for _, col := range attrCols {
			record = append(record, formatFloat(row.Attrs[col]))
		}
		record = append(record, row.Class)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteEOQ renders an EOQ result as a metric,value CSV, matching the
// download format of the toolkit frontend.
func WriteEOQ(w io.Writer, res *eoq.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	records := [][]string{
		{"Metric", "Value"},
		{"EOQ", formatFloat(res.OptimalQuantity)},
		{"OrderingCost", formatFloat(res.OrderingCostYear)},
		{"HoldingCost", formatFloat(res.HoldingCostYear)},
		{"TLC", formatFloat(res.TotalLogisticsCost)},
		{"CycleTimeMonths", formatFloat(res.CycleTimeMonths)},
		{"CycleTimeDays", formatFloat(res.CycleTimeDays)},
		{"ROP", formatFloat(res.ReorderPoint)},
		{"PurchaseCost", formatFloat(res.PurchaseCost)},
		{"TotalAnnualCost", formatFloat(res.TotalAnnualCost)},
	}
	if d := res.Discount; d != nil {
		records = append(records,
			[]string{"DiscountUnitPrice", formatFloat(d.UnitPrice)},
			[]string{"DiscountTotalAnnualCost", formatFloat(d.TotalAnnualCost)},
			[]string{"DiscountAccept", strconv.FormatBool(d.Accept)},
			[]string{"DiscountAnnualSavings", formatFloat(d.AnnualSavings)},
		)
	}

	for _, record := range records {
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// roundFloat rounds v to the given number of decimal places.
func roundFloat(v float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(v)
	}

	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
