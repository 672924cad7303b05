package domain

// Preset is a named sample EOQ case. Presets are configuration data
// resolved by the service layer; the calculation engine never reads them.
type Preset struct {
	Name           string  `json:"name" yaml:"name" mapstructure:"name"`
	AnnualDemand   float64 `json:"annual_demand" yaml:"annual_demand" mapstructure:"annual_demand"`
	UnitCost       float64 `json:"unit_cost" yaml:"unit_cost" mapstructure:"unit_cost"`
	OrderingCost   float64 `json:"ordering_cost" yaml:"ordering_cost" mapstructure:"ordering_cost"`
	HoldingRate    float64 `json:"holding_rate" yaml:"holding_rate" mapstructure:"holding_rate"`
	LeadTimeMonths float64 `json:"lead_time_months" yaml:"lead_time_months" mapstructure:"lead_time_months"`

	// Zero discount quantity means the preset carries no discount offer.
	DiscountQuantity float64 `json:"discount_quantity,omitempty" yaml:"discount_quantity" mapstructure:"discount_quantity"`
	DiscountRate     float64 `json:"discount_rate,omitempty" yaml:"discount_rate" mapstructure:"discount_rate"`
}

// ProductParams are the tunables for a product segmentation run.
type ProductParams struct {
	APct              float64 `json:"a_pct"`
	BPct              float64 `json:"b_pct"`
	WeightValue       float64 `json:"weight_value"`
	WeightLeadTime    float64 `json:"weight_lead_time"`
	WeightCriticality float64 `json:"weight_criticality"`
}

// ProductSegments bundles the three product classifications computed from
// one uploaded table.
type ProductSegments struct {
	ABC    []ClassifiedRow `json:"abc"`
	MCABC  []ClassifiedRow `json:"mcabc"`
	Nested []ClassifiedRow `json:"nested"`
}

// ClassifiedRow is the serializable form of one classified entity.
type ClassifiedRow struct {
	Key           string             `json:"key"`
	Attrs         map[string]float64 `json:"attrs"`
	Value         float64            `json:"value"`
	CumulativePct float64            `json:"cumulative_pct"`
	Class         string             `json:"class"`
}
