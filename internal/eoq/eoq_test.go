package eoq

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeWorkedExample(t *testing.T) {
	res, err := Compute(Input{
		AnnualDemand:   6000,
		UnitCost:       1500,
		OrderingCost:   4000,
		HoldingRate:    0.10,
		LeadTimeMonths: 2,
	})
	require.NoError(t, err)

	assert.InDelta(t, 150, res.HoldingCostPerUnit, 1e-9)
	assert.InDelta(t, 565.685424949238, res.OptimalQuantity, 1e-6)
	assert.InDelta(t, 42426.4068711929, res.OrderingCostYear, 1e-5)
	assert.InDelta(t, 42426.4068711929, res.HoldingCostYear, 1e-5)
	assert.InDelta(t, 84852.8137423857, res.TotalLogisticsCost, 1e-5)
	assert.InDelta(t, 1000, res.ReorderPoint, 1e-9)
	assert.InDelta(t, 1.13137084989848, res.CycleTimeMonths, 1e-9)
	assert.InDelta(t, res.CycleTimeMonths*30.4375, res.CycleTimeDays, 1e-9)
	assert.InDelta(t, 9000000, res.PurchaseCost, 1e-6)
	assert.InDelta(t, 9084852.81374239, res.TotalAnnualCost, 1e-4)
	assert.Zero(t, res.SafetyStock)
	assert.Nil(t, res.Discount)
}

// Ordering and holding cost curves cross at the optimum, so the two annual
// costs must be equal at Q*.
func TestComputeCostCurvesCrossAtOptimum(t *testing.T) {
	inputs := []Input{
		{AnnualDemand: 6000, UnitCost: 1500, OrderingCost: 4000, HoldingRate: 0.10, LeadTimeMonths: 2},
		{AnnualDemand: 12000, UnitCost: 2000, OrderingCost: 5000, HoldingRate: 0.12, LeadTimeMonths: 3},
		{AnnualDemand: 1000, UnitCost: 10, OrderingCost: 50, HoldingRate: 0.2, LeadTimeMonths: 1},
		{AnnualDemand: 37, UnitCost: 3.25, OrderingCost: 12.5, HoldingRate: 0.07, LeadTimeMonths: 0.5},
	}

	for _, in := range inputs {
		res, err := Compute(in)
		require.NoError(t, err)
		relative := math.Abs(res.OrderingCostYear-res.HoldingCostYear) / res.HoldingCostYear
		assert.Less(t, relative, 1e-6,
			"ordering %.6f vs holding %.6f", res.OrderingCostYear, res.HoldingCostYear)
	}
}

func TestComputeZeroOrderingCost(t *testing.T) {
	res, err := Compute(Input{
		AnnualDemand:   1000,
		UnitCost:       10,
		OrderingCost:   0,
		HoldingRate:    0.2,
		LeadTimeMonths: 1,
	})
	require.NoError(t, err)

	// No setup cost means no trade-off: Q* is 0 and neither cost component
	// blows up.
	assert.Zero(t, res.OptimalQuantity)
	assert.Zero(t, res.OrderingCostYear)
	assert.Zero(t, res.HoldingCostYear)
	assert.Zero(t, res.TotalLogisticsCost)
	assert.Zero(t, res.CycleTimeMonths)
	assert.InDelta(t, 10000, res.TotalAnnualCost, 1e-9)
}

func TestComputeInvalidParameters(t *testing.T) {
	tests := []struct {
		name       string
		input      Input
		wantFields []string
	}{
		{
			name:       "zero demand",
			input:      Input{AnnualDemand: 0, UnitCost: 10, HoldingRate: 0.1},
			wantFields: []string{"annual_demand"},
		},
		{
			name:       "negative unit cost",
			input:      Input{AnnualDemand: 100, UnitCost: -5, HoldingRate: 0.1},
			wantFields: []string{"unit_cost"},
		},
		{
			name:       "holding rate above one",
			input:      Input{AnnualDemand: 100, UnitCost: 10, HoldingRate: 1.5},
			wantFields: []string{"holding_rate"},
		},
		{
			name:       "multiple violations",
			input:      Input{AnnualDemand: -1, UnitCost: 0, HoldingRate: 0},
			wantFields: []string{"annual_demand", "unit_cost", "holding_rate"},
		},
		{
			name: "negative lead time",
			input: Input{
				AnnualDemand: 100, UnitCost: 10, HoldingRate: 0.1, LeadTimeMonths: -2,
			},
			wantFields: []string{"lead_time_months"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(tt.input)
			assert.Nil(t, res)

			var paramErr *InvalidParameterError
			require.ErrorAs(t, err, &paramErr)
			assert.Equal(t, tt.wantFields, paramErr.Fields)
		})
	}
}

func TestComputeSafetyStockVariant(t *testing.T) {
	sigma := 50.0
	res, err := Compute(Input{
		AnnualDemand:   6000,
		UnitCost:       1500,
		OrderingCost:   4000,
		HoldingRate:    0.10,
		LeadTimeMonths: 4,
		DemandStdDev:   &sigma,
	})
	require.NoError(t, err)

	// z=1.65, sigma=50, sqrt(4)=2 -> 165 on top of the base reorder point.
	assert.InDelta(t, 165, res.SafetyStock, 1e-9)
	assert.InDelta(t, 6000.0/12*4+165, res.ReorderPoint, 1e-9)
}

func TestComputeDiscountAccepted(t *testing.T) {
	res, err := Compute(Input{
		AnnualDemand:   6000,
		UnitCost:       1500,
		OrderingCost:   4000,
		HoldingRate:    0.10,
		LeadTimeMonths: 2,
		Discount:       &DiscountOffer{ThresholdQuantity: 500, Rate: 0.10},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Discount)

	d := res.Discount
	assert.InDelta(t, 1350, d.UnitPrice, 1e-9)
	assert.InDelta(t, 48000, d.OrderingCostYear, 1e-9)
	assert.InDelta(t, 33750, d.HoldingCostYear, 1e-9)
	assert.InDelta(t, 81750, d.TotalLogisticsCost, 1e-9)
	assert.InDelta(t, 8100000, d.PurchaseCost, 1e-6)
	assert.InDelta(t, 8181750, d.TotalAnnualCost, 1e-6)
	assert.True(t, d.Accept)
	assert.InDelta(t, res.TotalAnnualCost-d.TotalAnnualCost, d.AnnualSavings, 1e-9)
	assert.Greater(t, d.AnnualSavings, 0.0)
}

func TestComputeDiscountRejected(t *testing.T) {
	// A tiny discount on a huge threshold quantity: the extra holding cost
	// swamps the price cut.
	res, err := Compute(Input{
		AnnualDemand:   1000,
		UnitCost:       100,
		OrderingCost:   50,
		HoldingRate:    0.25,
		LeadTimeMonths: 1,
		Discount:       &DiscountOffer{ThresholdQuantity: 100000, Rate: 0.01},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Discount)

	assert.False(t, res.Discount.Accept)
	assert.Negative(t, res.Discount.AnnualSavings)
}

// An exact cost tie keeps the base policy.
func TestComputeDiscountTieRejected(t *testing.T) {
	// With zero ordering cost the base total is D*C = 1000. The discount
	// scenario evaluates to C(1-r)(D + Q*h/2) = 0.8 * 1250 = 1000 exactly.
	res, err := Compute(Input{
		AnnualDemand:   1000,
		UnitCost:       1,
		OrderingCost:   0,
		HoldingRate:    0.5,
		LeadTimeMonths: 1,
		Discount:       &DiscountOffer{ThresholdQuantity: 1000, Rate: 0.2},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Discount)

	assert.Equal(t, res.TotalAnnualCost, res.Discount.TotalAnnualCost)
	assert.False(t, res.Discount.Accept)
	assert.Zero(t, res.Discount.AnnualSavings)
}

func TestComputeDegenerateDiscountOfferSkipped(t *testing.T) {
	tests := []struct {
		name  string
		offer DiscountOffer
	}{
		{"zero threshold", DiscountOffer{ThresholdQuantity: 0, Rate: 0.1}},
		{"zero rate", DiscountOffer{ThresholdQuantity: 500, Rate: 0}},
		{"rate of one", DiscountOffer{ThresholdQuantity: 500, Rate: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(Input{
				AnnualDemand:   6000,
				UnitCost:       1500,
				OrderingCost:   4000,
				HoldingRate:    0.10,
				LeadTimeMonths: 2,
				Discount:       &tt.offer,
			})
			require.NoError(t, err)
			assert.Nil(t, res.Discount)
		})
	}
}

func TestComputeNonFiniteFails(t *testing.T) {
	// Demand x unit cost overflows float64; the whole call must fail
	// instead of returning an Inf purchase cost.
	res, err := Compute(Input{
		AnnualDemand:   1e308,
		UnitCost:       1e308,
		OrderingCost:   0,
		HoldingRate:    0.5,
		LeadTimeMonths: 1,
	})
	assert.Nil(t, res)

	var domainErr *NumericDomainError
	require.True(t, errors.As(err, &domainErr))
}
