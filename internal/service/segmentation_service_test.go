package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/sc-toolkit/backend-go/internal/config"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/domain"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/ingest"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/segmentation"
)

func testDefaults() config.DefaultsConfig {
	return config.DefaultsConfig{
		ABCAPct:          70,
		ABCBPct:          20,
		MarginThreshold:  20,
		KraljicThreshold: 5,
	}
}

func readTable(t *testing.T, csvData string) *ingest.Table {
	t.Helper()
	table, err := ingest.ReadCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	return table
}

func TestProductSegments(t *testing.T) {
	table := readTable(t, `Item,Demand,UnitCost,LeadTime,Criticality
P1,100,1,1,5
P2,80,1,2,1
P3,60,1,3,1
P4,40,1,1,1
P5,20,1,1,1
`)

	svc := NewSegmentationService(testDefaults())
	got, err := svc.ProductSegments(table, domain.ProductParams{
		WeightValue:       0.5,
		WeightLeadTime:    0.3,
		WeightCriticality: 0.2,
	})
	require.NoError(t, err)

	require.Len(t, got.ABC, 5)
	require.Len(t, got.MCABC, 5)
	require.Len(t, got.Nested, 5)

	// Unit cost 1 makes annual value equal demand: [100 80 60 40 20]
	// against the default 70/20 cutoffs.
	wantABC := map[string]string{"P1": "A", "P2": "A", "P3": "B", "P4": "C", "P5": "C"}
	for _, row := range got.ABC {
		assert.Equal(t, wantABC[row.Key], row.Class, "ABC row %s", row.Key)
	}

	// Every nested label carries a primary and a secondary tier.
	for _, row := range got.Nested {
		assert.Regexp(t, `^[ABC]-[ABC]$`, row.Class)
	}

	// MCABC scores are weighted blends of normalized attributes, so they
	// live in (0, 1].
	for _, row := range got.MCABC {
		assert.Greater(t, row.Value, 0.0)
		assert.LessOrEqual(t, row.Value, 1.0)
	}
	// P1: 0.5*(100/100) + 0.3*(1/3) + 0.2*(5/5) = 0.8, the top score.
	assert.Equal(t, "P1", got.MCABC[0].Key)
	assert.InDelta(t, 0.8, got.MCABC[0].Value, 1e-9)
}

func TestProductSegmentsOptionalColumns(t *testing.T) {
	table := readTable(t, `Item,Demand,UnitCost
P1,100,1
P2,10,1
`)

	svc := NewSegmentationService(testDefaults())
	got, err := svc.ProductSegments(table, domain.ProductParams{WeightValue: 0.5})
	require.NoError(t, err)

	// Without LeadTime and Criticality columns only the value criterion
	// contributes; the run must still succeed.
	require.Len(t, got.MCABC, 2)
	assert.Equal(t, "P1", got.MCABC[0].Key)
	assert.InDelta(t, 1.0, got.MCABC[0].Value, 1e-9)
	assert.InDelta(t, 0.1, got.MCABC[1].Value, 1e-9)
}

func TestProductSegmentsMissingRequiredColumn(t *testing.T) {
	table := readTable(t, `Item,Demand
P1,100
`)

	svc := NewSegmentationService(testDefaults())
	got, err := svc.ProductSegments(table, domain.ProductParams{})
	assert.Nil(t, got)

	var missingErr *ingest.MissingColumnError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{domain.ColUnitCost}, missingErr.Columns)
}

func TestCustomerSegmentsUsesDefaultThreshold(t *testing.T) {
	table := readTable(t, `Customer,Revenue,CostToServe
C1,200000,150000
C2,10000,9500
`)

	svc := NewSegmentationService(testDefaults())
	got, err := svc.CustomerSegments(table, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Zero threshold falls back to the configured 20%.
	assert.Equal(t, segmentation.SegmentKeyAccount, got[0].Class)
	assert.Equal(t, segmentation.SegmentStandard, got[1].Class)
}

func TestSupplierSegments(t *testing.T) {
	table := readTable(t, `Supplier,ProfitImpact,SupplyRisk
S1,9,8
S2,8,3
S3,3,8
S4,2,2
`)

	svc := NewSegmentationService(testDefaults())
	got, err := svc.SupplierSegments(table, 0)
	require.NoError(t, err)
	require.Len(t, got, 4)

	want := []string{
		segmentation.SegmentStrategic,
		segmentation.SegmentLeverage,
		segmentation.SegmentBottleneck,
		segmentation.SegmentNonCritical,
	}
	for i, row := range got {
		assert.Equal(t, want[i], row.Class)
	}
}
