package eoq

import "math"

const (
	// daysPerMonth is the average month length used for cycle time. Fixed
	// constant, not calendar-aware.
	daysPerMonth = 30.4375

	// serviceLevelZ is the z-score behind the safety stock term (~95%
	// service level).
	serviceLevelZ = 1.65
)

// Compute derives the optimal order quantity and its cost and timing
// metrics from in, evaluating the discount offer when one is attached.
// It returns InvalidParameterError when a precondition fails and
// NumericDomainError when an intermediate value is not finite.
func Compute(in Input) (*Result, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	res := &Result{}

	// 1. Holding cost per unit = holding rate x unit cost
	res.HoldingCostPerUnit = in.HoldingRate * in.UnitCost

	// 2. EOQ = sqrt(2DS / H). Zero ordering cost gives Q* = 0: with no
	// setup cost there is no trade-off, so no orders are "needed".
	res.OptimalQuantity = math.Sqrt((2 * in.AnnualDemand * in.OrderingCost) / res.HoldingCostPerUnit)

	// 3. Annual ordering cost = (D / Q*) x S, guarded for Q* = 0.
	if res.OptimalQuantity > 0 {
		res.OrderingCostYear = (in.AnnualDemand / res.OptimalQuantity) * in.OrderingCost
	}

	// 4. Annual holding cost = (Q* / 2) x H
	res.HoldingCostYear = (res.OptimalQuantity / 2) * res.HoldingCostPerUnit

	// 5. Total logistics cost
	res.TotalLogisticsCost = res.OrderingCostYear + res.HoldingCostYear

	// 6. Cycle time between orders
	res.CycleTimeMonths = (res.OptimalQuantity / in.AnnualDemand) * 12
	res.CycleTimeDays = res.CycleTimeMonths * daysPerMonth

	// 7. Reorder point, with an opt-in safety stock term
	res.ReorderPoint = (in.AnnualDemand / 12) * in.LeadTimeMonths
	if in.DemandStdDev != nil {
		res.SafetyStock = serviceLevelZ * *in.DemandStdDev * math.Sqrt(in.LeadTimeMonths)
		res.ReorderPoint += res.SafetyStock
	}

	// 8. Base annual total = purchase cost + logistics cost
	res.PurchaseCost = in.AnnualDemand * in.UnitCost
	res.TotalAnnualCost = res.PurchaseCost + res.TotalLogisticsCost

	if q, ok := finiteResult(res); !ok {
		return nil, &NumericDomainError{Quantity: q}
	}

	if d := in.Discount; d != nil && d.ThresholdQuantity > 0 && d.Rate > 0 && d.Rate < 1 {
		eval, err := evaluateDiscount(in, *d, res.TotalAnnualCost)
		if err != nil {
			return nil, err
		}
		res.Discount = eval
	}

	return res, nil
}

// evaluateDiscount costs the scenario where every order is exactly the
// threshold quantity at the discounted unit price. The order quantity is
// deliberately not re-optimized under the new price; the buyer orders the
// minimum that qualifies.
func evaluateDiscount(in Input, offer DiscountOffer, baseTotal float64) (*DiscountEvaluation, error) {
	eval := &DiscountEvaluation{
		ThresholdQuantity: offer.ThresholdQuantity,
		Rate:              offer.Rate,
	}

	eval.UnitPrice = in.UnitCost * (1 - offer.Rate)
	holdingPerUnit := in.HoldingRate * eval.UnitPrice

	eval.OrderingCostYear = (in.AnnualDemand / offer.ThresholdQuantity) * in.OrderingCost
	eval.HoldingCostYear = (offer.ThresholdQuantity / 2) * holdingPerUnit
	eval.TotalLogisticsCost = eval.OrderingCostYear + eval.HoldingCostYear
	eval.PurchaseCost = in.AnnualDemand * eval.UnitPrice
	eval.TotalAnnualCost = eval.PurchaseCost + eval.TotalLogisticsCost

	// Ties keep the base policy.
	eval.Accept = eval.TotalAnnualCost < baseTotal
	eval.AnnualSavings = baseTotal - eval.TotalAnnualCost

	for _, v := range []struct {
		name  string
		value float64
	}{
		{"discounted ordering cost", eval.OrderingCostYear},
		{"discounted holding cost", eval.HoldingCostYear},
		{"discounted total annual cost", eval.TotalAnnualCost},
	} {
		if !isFinite(v.value) {
			return nil, &NumericDomainError{Quantity: v.name}
		}
	}

	return eval, nil
}

func validate(in Input) error {
	var bad []string
	if in.AnnualDemand <= 0 {
		bad = append(bad, "annual_demand")
	}
	if in.UnitCost <= 0 {
		bad = append(bad, "unit_cost")
	}
	if in.OrderingCost < 0 {
		bad = append(bad, "ordering_cost")
	}
	if in.HoldingRate <= 0 || in.HoldingRate > 1 {
		bad = append(bad, "holding_rate")
	}
	if in.LeadTimeMonths < 0 {
		bad = append(bad, "lead_time_months")
	}
	if in.DemandStdDev != nil && *in.DemandStdDev < 0 {
		bad = append(bad, "demand_std_dev")
	}
	if len(bad) > 0 {
		return &InvalidParameterError{Fields: bad}
	}
	return nil
}

func finiteResult(res *Result) (string, bool) {
	checks := []struct {
		name  string
		value float64
	}{
		{"optimal quantity", res.OptimalQuantity},
		{"ordering cost", res.OrderingCostYear},
		{"holding cost", res.HoldingCostYear},
		{"cycle time", res.CycleTimeMonths},
		{"reorder point", res.ReorderPoint},
		{"total annual cost", res.TotalAnnualCost},
	}
	for _, c := range checks {
		if !isFinite(c.value) {
			return c.name, false
		}
	}
	return "", true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
