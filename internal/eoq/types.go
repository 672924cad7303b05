package eoq

// Input holds the parameters for a single EOQ computation.
// Monetary fields share one currency; demand is units per year.
type Input struct {
	AnnualDemand   float64 `json:"annual_demand"`
	UnitCost       float64 `json:"unit_cost"`
	OrderingCost   float64 `json:"ordering_cost"`
	HoldingRate    float64 `json:"holding_rate"` // annual holding cost as a fraction of unit cost
	LeadTimeMonths float64 `json:"lead_time_months"`

	// DemandStdDev (units/month) switches the reorder point to the
	// service-level variant with a safety stock term. Nil keeps the base model.
	DemandStdDev *float64 `json:"demand_std_dev,omitempty"`

	Discount *DiscountOffer `json:"discount,omitempty"`
}

// DiscountOffer is a supplier quantity discount: order at least
// ThresholdQuantity per order and pay Rate less per unit.
type DiscountOffer struct {
	ThresholdQuantity float64 `json:"threshold_quantity"`
	Rate              float64 `json:"rate"` // fraction, 0 < Rate < 1
}

// Result is the derived snapshot for one computation. It is never mutated
// after Compute returns.
type Result struct {
	OptimalQuantity    float64 `json:"optimal_quantity"`
	HoldingCostPerUnit float64 `json:"holding_cost_per_unit"`
	OrderingCostYear   float64 `json:"ordering_cost_year"`
	HoldingCostYear    float64 `json:"holding_cost_year"`
	TotalLogisticsCost float64 `json:"total_logistics_cost"`
	CycleTimeMonths    float64 `json:"cycle_time_months"`
	CycleTimeDays      float64 `json:"cycle_time_days"`
	ReorderPoint       float64 `json:"reorder_point"`
	SafetyStock        float64 `json:"safety_stock"` // 0 unless DemandStdDev was supplied
	PurchaseCost       float64 `json:"purchase_cost"`
	TotalAnnualCost    float64 `json:"total_annual_cost"`

	Discount *DiscountEvaluation `json:"discount,omitempty"`
}

// DiscountEvaluation compares the base EOQ policy against ordering exactly
// the discount threshold quantity at the reduced unit price.
type DiscountEvaluation struct {
	ThresholdQuantity  float64 `json:"threshold_quantity"`
	Rate               float64 `json:"rate"`
	UnitPrice          float64 `json:"unit_price"`
	OrderingCostYear   float64 `json:"ordering_cost_year"`
	HoldingCostYear    float64 `json:"holding_cost_year"`
	TotalLogisticsCost float64 `json:"total_logistics_cost"`
	PurchaseCost       float64 `json:"purchase_cost"`
	TotalAnnualCost    float64 `json:"total_annual_cost"`
	Accept             bool    `json:"accept"`
	AnnualSavings      float64 `json:"annual_savings"` // negative when accepting would lose money
}
