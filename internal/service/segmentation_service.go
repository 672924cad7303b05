package service

import (
	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/sc-toolkit/backend-go/internal/config"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/domain"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/ingest"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/segmentation"
)

// SegmentationService resolves table schemas and runs the classifiers over
// uploaded product, customer and supplier tables.
type SegmentationService struct {
	defaults config.DefaultsConfig
}

func NewSegmentationService(defaults config.DefaultsConfig) *SegmentationService {
	return &SegmentationService{defaults: defaults}
}

// ProductSegments classifies a product table three ways: single-criterion
// ABC on annual value, multi-criteria weighted ABC, and the nested
// value-then-volume ABC. LeadTime and Criticality columns are optional;
// absent columns simply contribute no criterion.
func (s *SegmentationService) ProductSegments(t *ingest.Table, params domain.ProductParams) (*domain.ProductSegments, error) {
	aPct, bPct := s.cutoffs(params.APct, params.BPct)

	numericCols := []string{domain.ColDemand, domain.ColUnitCost}
	hasLeadTime := t.HasColumn(domain.ColLeadTime)
	hasCriticality := t.HasColumn(domain.ColCriticality)
	if hasLeadTime {
		numericCols = append(numericCols, domain.ColLeadTime)
	}
	if hasCriticality {
		numericCols = append(numericCols, domain.ColCriticality)
	}

	rows, err := t.Rows(domain.ColItem, numericCols...)
	if err != nil {
		return nil, err
	}

	annualValue := segmentation.Product(domain.ColDemand, domain.ColUnitCost)

	abc, err := segmentation.ClassifyABC(rows, annualValue, aPct, bPct)
	if err != nil {
		return nil, err
	}

	criteria := []segmentation.Criterion{
		{Name: "value", Select: annualValue, Weight: params.WeightValue},
	}
	if hasLeadTime {
		criteria = append(criteria, segmentation.Criterion{
			Name: "lead_time", Select: segmentation.Attr(domain.ColLeadTime), Weight: params.WeightLeadTime,
		})
	}
	if hasCriticality {
		criteria = append(criteria, segmentation.Criterion{
			Name: "criticality", Select: segmentation.Attr(domain.ColCriticality), Weight: params.WeightCriticality,
		})
	}

	mcabc, err := segmentation.ClassifyMCABC(rows, criteria, annualValue, aPct, bPct)
	if err != nil {
		return nil, err
	}

	nested, err := segmentation.ClassifyNested(rows, annualValue, segmentation.Attr(domain.ColDemand), aPct, bPct)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("rows", len(rows)).
		Float64("a_pct", aPct).
		Float64("b_pct", bPct).
		Msg("segmentation: product analysis done")

	return &domain.ProductSegments{
		ABC:    toClassifiedRows(abc),
		MCABC:  toClassifiedRows(mcabc),
		Nested: toClassifiedRows(nested),
	}, nil
}

// CustomerSegments aggregates a customer table and splits it against the
// median revenue and the margin threshold (percent). A zero threshold takes
// the configured default.
func (s *SegmentationService) CustomerSegments(t *ingest.Table, marginThresholdPct float64) ([]domain.ClassifiedRow, error) {
	if marginThresholdPct == 0 {
		marginThresholdPct = s.defaults.MarginThreshold
	}

	rows, err := t.Rows(domain.ColCustomer, segmentation.AttrRevenue, segmentation.AttrCostToServe)
	if err != nil {
		return nil, err
	}

	return toClassifiedRows(segmentation.SegmentCustomers(rows, marginThresholdPct)), nil
}

// SupplierSegments places a supplier table in the Kraljic matrix. A zero
// threshold takes the configured default.
func (s *SegmentationService) SupplierSegments(t *ingest.Table, threshold float64) ([]domain.ClassifiedRow, error) {
	if threshold == 0 {
		threshold = s.defaults.KraljicThreshold
	}

	rows, err := t.Rows(domain.ColSupplier, segmentation.AttrProfitImpact, segmentation.AttrSupplyRisk)
	if err != nil {
		return nil, err
	}

	return toClassifiedRows(segmentation.SegmentSuppliers(rows, threshold)), nil
}

func (s *SegmentationService) cutoffs(aPct, bPct float64) (float64, float64) {
	if aPct == 0 {
		aPct = s.defaults.ABCAPct
	}
	if bPct == 0 {
		bPct = s.defaults.ABCBPct
	}
	return aPct, bPct
}

func toClassifiedRows(rows []segmentation.Classified) []domain.ClassifiedRow {
	out := make([]domain.ClassifiedRow, len(rows))
	for i, r := range rows {
		out[i] = domain.ClassifiedRow{
			Key:           r.Key,
			Attrs:         r.Attrs,
			Value:         r.Value,
			CumulativePct: r.CumulativePct,
			Class:         r.Class,
		}
	}
	return out
}
