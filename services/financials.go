package services

import "github.com/shopspring/decimal"

// RevenueItem is a billable line on a quotation. Its subtotal is always
// derived from quantity and unit price, never stored independently.
type RevenueItem struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

// Subtotal returns quantity × unit price.
func (i RevenueItem) Subtotal() float64 {
	return i.Quantity * i.UnitPrice
}

// CostItem is an estimated direct cost on a quotation. Costs carry a flat
// amount with no quantity/price decomposition.
type CostItem struct {
	Description     string
	EstimatedAmount float64
}

// PursuitCostItem is a pre-win sales or engineering cost to be recovered
// per shipment once the quotation is won.
type PursuitCostItem struct {
	Description string
	Amount      float64
}

// FinancialSnapshot holds the derived financial figures for a quotation.
// It is a cache of CalcFinancials over the item collections, never a
// source of truth.
type FinancialSnapshot struct {
	TotalRevenue           float64
	TotalCost              float64
	GrossProfit            float64
	ProfitMargin           float64
	TotalPursuitCost       float64
	PursuitCostPerShipment float64
}

// Round2 rounds a financial value to 2 decimal places, half away from
// zero. For positive amounts this matches plain half-up rounding; a
// negative half like -1.005 rounds to -1.01 rather than -1.00. Every
// rounded figure in the engine goes through here.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// CalcFinancials derives the full financial snapshot from a quotation's
// item collections. Empty collections sum to zero. Margin is defined as
// exactly 0 when revenue is 0.
func CalcFinancials(revenue []RevenueItem, costs []CostItem, pursuit []PursuitCostItem, estimatedShipments int) FinancialSnapshot {
	var s FinancialSnapshot
	for _, item := range revenue {
		s.TotalRevenue += item.Subtotal()
	}
	for _, item := range costs {
		s.TotalCost += item.EstimatedAmount
	}
	for _, item := range pursuit {
		s.TotalPursuitCost += item.Amount
	}
	s.GrossProfit = s.TotalRevenue - s.TotalCost
	if s.TotalRevenue != 0 {
		s.ProfitMargin = Round2(s.GrossProfit / s.TotalRevenue * 100)
	}
	s.PursuitCostPerShipment = CalcPursuitCostPerShipment(s.TotalPursuitCost, estimatedShipments)
	return s
}

// CalcPursuitCostPerShipment divides the total pursuit cost across the
// estimated shipments. When the shipment count is zero or negative there
// is nothing to divide by and the whole cost is returned unchanged.
func CalcPursuitCostPerShipment(totalPursuitCost float64, estimatedShipments int) float64 {
	if estimatedShipments <= 0 {
		return totalPursuitCost
	}
	return Round2(totalPursuitCost / float64(estimatedShipments))
}

// CalcVariance returns budget minus actual.
func CalcVariance(budget, actual float64) float64 {
	return budget - actual
}

// CalcVariancePercent returns the variance as a percentage of budget,
// rounded to 2 places, or 0 when budget is 0.
func CalcVariancePercent(budget, actual float64) float64 {
	if budget == 0 {
		return 0
	}
	return Round2((budget - actual) / budget * 100)
}
