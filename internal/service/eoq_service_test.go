package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/sc-toolkit/backend-go/internal/config"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/domain"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/eoq"
)

func TestResolvePreset(t *testing.T) {
	svc := NewEOQService(config.BuiltinPresets())

	in, err := svc.ResolvePreset("Coffee Co")
	require.NoError(t, err)
	assert.InDelta(t, 6000, in.AnnualDemand, 1e-9)
	assert.InDelta(t, 1500, in.UnitCost, 1e-9)
	require.NotNil(t, in.Discount)
	assert.InDelta(t, 500, in.Discount.ThresholdQuantity, 1e-9)
	assert.InDelta(t, 0.10, in.Discount.Rate, 1e-9)

	_, err = svc.ResolvePreset("No Such Co")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestPresetInputWithoutDiscount(t *testing.T) {
	in := PresetInput(domain.Preset{
		Name:           "plain",
		AnnualDemand:   1000,
		UnitCost:       10,
		OrderingCost:   50,
		HoldingRate:    0.2,
		LeadTimeMonths: 1,
	})
	assert.Nil(t, in.Discount)
}

func TestEOQServiceCompute(t *testing.T) {
	svc := NewEOQService(nil)

	res, err := svc.Compute(eoq.Input{
		AnnualDemand:   6000,
		UnitCost:       1500,
		OrderingCost:   4000,
		HoldingRate:    0.10,
		LeadTimeMonths: 2,
	})
	require.NoError(t, err)
	assert.InDelta(t, 565.685424949238, res.OptimalQuantity, 1e-6)

	_, err = svc.Compute(eoq.Input{})
	var paramErr *eoq.InvalidParameterError
	require.ErrorAs(t, err, &paramErr)
}
