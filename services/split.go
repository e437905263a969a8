package services

import "fmt"

// SplitShipments divides a won quotation into one proforma job order
// seed per estimated shipment. Each original item already represents the
// aggregate across all shipments, so its per-shipment slice is the item
// amount divided by the shipment count, rounded to 2 places; summing a
// slice across all seeds reconstructs the original amount within rounding
// tolerance. The pre-computed pursuit cost per shipment is carried onto
// every seed unchanged.
//
// A shipment count of zero or less is a hard error: silently producing
// the wrong number of drafts would corrupt the downstream job orders.
func SplitShipments(q Quotation, revenue []RevenueItem, costs []CostItem, pursuitCostPerShipment float64) ([]PJOSeed, error) {
	n := q.EstimatedShipments
	if n <= 0 {
		return nil, fmt.Errorf("cannot split quotation %s: estimated shipments must be positive, got %d", q.QuotationNumber, n)
	}

	revenueSlices := make([]SeedItem, len(revenue))
	for i, item := range revenue {
		revenueSlices[i] = SeedItem{
			Description: item.Description,
			Amount:      Round2(item.Subtotal() / float64(n)),
		}
	}
	costSlices := make([]SeedItem, len(costs))
	for i, item := range costs {
		costSlices[i] = SeedItem{
			Description: item.Description,
			Amount:      Round2(item.EstimatedAmount / float64(n)),
		}
	}

	var revenueAmount, costAmount float64
	for _, s := range revenueSlices {
		revenueAmount += s.Amount
	}
	for _, s := range costSlices {
		costAmount += s.Amount
	}

	seeds := make([]PJOSeed, 0, n)
	for shipment := 1; shipment <= n; shipment++ {
		seed := MapToPJOSeed(q)
		seed.ShipmentNumber = shipment
		seed.RevenueItems = append([]SeedItem(nil), revenueSlices...)
		seed.CostItems = append([]SeedItem(nil), costSlices...)
		seed.RevenueAmount = Round2(revenueAmount)
		seed.CostAmount = Round2(costAmount)
		seed.PursuitCostPerShipment = pursuitCostPerShipment
		seeds = append(seeds, seed)
	}
	return seeds, nil
}
