package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/sc-toolkit/backend-go/internal/domain"
	"github.com/andresuchdata/sc-toolkit/backend-go/internal/eoq"
)

// EOQService resolves presets and runs EOQ computations for the API and
// the CLI. The engine itself stays pure; logging happens here.
type EOQService struct {
	presets []domain.Preset
}

func NewEOQService(presets []domain.Preset) *EOQService {
	return &EOQService{presets: presets}
}

// Presets lists the configured sample cases.
func (s *EOQService) Presets() []domain.Preset {
	return s.presets
}

// ResolvePreset turns a named preset into a fully-specified engine input.
func (s *EOQService) ResolvePreset(name string) (eoq.Input, error) {
	for _, p := range s.presets {
		if p.Name == name {
			return PresetInput(p), nil
		}
	}
	return eoq.Input{}, fmt.Errorf("unknown preset: %s", name)
}

// Compute runs the EOQ engine on in.
func (s *EOQService) Compute(in eoq.Input) (*eoq.Result, error) {
	res, err := eoq.Compute(in)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Float64("annual_demand", in.AnnualDemand).
		Float64("eoq", res.OptimalQuantity).
		Float64("tlc", res.TotalLogisticsCost).
		Msg("eoq: computed")

	return res, nil
}

// PresetInput maps a preset record onto an engine input. A zero discount
// quantity means the preset has no discount offer.
func PresetInput(p domain.Preset) eoq.Input {
	in := eoq.Input{
		AnnualDemand:   p.AnnualDemand,
		UnitCost:       p.UnitCost,
		OrderingCost:   p.OrderingCost,
		HoldingRate:    p.HoldingRate,
		LeadTimeMonths: p.LeadTimeMonths,
	}
	if p.DiscountQuantity > 0 {
		in.Discount = &eoq.DiscountOffer{
			ThresholdQuantity: p.DiscountQuantity,
			Rate:              p.DiscountRate,
		}
	}
	return in
}
