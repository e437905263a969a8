package services

import (
	"math"
	"strings"
	"testing"
)

func TestSplitShipments_Example(t *testing.T) {
	// One revenue item of 9000 over 3 shipments with 300 total pursuit
	// cost: each draft carries a 3000 slice and 100 pursuit cost.
	q := Quotation{
		ID:                 "q_1",
		QuotationNumber:    "QUO-2025-0007",
		Status:             StatusWon,
		EstimatedShipments: 3,
	}
	revenue := []RevenueItem{{Description: "Ocean freight", Quantity: 3, UnitPrice: 3000}}

	seeds, err := SplitShipments(q, revenue, nil, 100)
	if err != nil {
		t.Fatalf("SplitShipments() error = %v", err)
	}
	if len(seeds) != 3 {
		t.Fatalf("got %d seeds, want 3", len(seeds))
	}

	for i, seed := range seeds {
		if seed.ShipmentNumber != i+1 {
			t.Errorf("seed %d ShipmentNumber = %d, want %d", i, seed.ShipmentNumber, i+1)
		}
		if len(seed.RevenueItems) != 1 || seed.RevenueItems[0].Amount != 3000 {
			t.Errorf("seed %d revenue slices = %+v, want one slice of 3000", i, seed.RevenueItems)
		}
		if seed.PursuitCostPerShipment != 100 {
			t.Errorf("seed %d PursuitCostPerShipment = %v, want 100", i, seed.PursuitCostPerShipment)
		}
	}
}

func TestSplitShipments_CountAlwaysEqualsN(t *testing.T) {
	for n := 1; n <= 12; n++ {
		q := Quotation{ID: "q", EstimatedShipments: n}
		seeds, err := SplitShipments(q, []RevenueItem{{Quantity: 1, UnitPrice: 1000}}, nil, 0)
		if err != nil {
			t.Fatalf("SplitShipments(n=%d) error = %v", n, err)
		}
		if len(seeds) != n {
			t.Errorf("SplitShipments(n=%d) produced %d seeds", n, len(seeds))
		}
	}
}

func TestSplitShipments_SliceSumsReconstructOriginals(t *testing.T) {
	tests := []struct {
		name      string
		shipments int
		revenue   []RevenueItem
		costs     []CostItem
	}{
		{
			name:      "even amounts",
			shipments: 4,
			revenue:   []RevenueItem{{Description: "freight", Quantity: 2, UnitPrice: 5000}},
			costs:     []CostItem{{Description: "handling", EstimatedAmount: 2000}},
		},
		{
			name:      "awkward division",
			shipments: 3,
			revenue:   []RevenueItem{{Description: "freight", Quantity: 1, UnitPrice: 1000}},
			costs:     []CostItem{{Description: "customs", EstimatedAmount: 100}},
		},
		{
			name:      "many items",
			shipments: 7,
			revenue: []RevenueItem{
				{Description: "freight", Quantity: 3, UnitPrice: 1234.56},
				{Description: "surcharge", Quantity: 1, UnitPrice: 99.99},
			},
			costs: []CostItem{
				{Description: "trucking", EstimatedAmount: 777.77},
				{Description: "agency", EstimatedAmount: 450},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Quotation{ID: "q", EstimatedShipments: tt.shipments}
			seeds, err := SplitShipments(q, tt.revenue, tt.costs, 0)
			if err != nil {
				t.Fatalf("SplitShipments() error = %v", err)
			}

			for i, item := range tt.revenue {
				var sum float64
				for _, seed := range seeds {
					sum += seed.RevenueItems[i].Amount
				}
				// Tolerance 0.01 per unit of rounding, scaled by N slices.
				if math.Abs(sum-item.Subtotal()) > 0.01*float64(tt.shipments) {
					t.Errorf("revenue item %d: slices sum to %v, original %v", i, sum, item.Subtotal())
				}
			}
			for i, item := range tt.costs {
				var sum float64
				for _, seed := range seeds {
					sum += seed.CostItems[i].Amount
				}
				if math.Abs(sum-item.EstimatedAmount) > 0.01*float64(tt.shipments) {
					t.Errorf("cost item %d: slices sum to %v, original %v", i, sum, item.EstimatedAmount)
				}
			}
		})
	}
}

func TestSplitShipments_PursuitCostPassedThrough(t *testing.T) {
	q := Quotation{ID: "q", EstimatedShipments: 5}
	perShipment := CalcPursuitCostPerShipment(500, 5)

	seeds, err := SplitShipments(q, nil, nil, perShipment)
	if err != nil {
		t.Fatalf("SplitShipments() error = %v", err)
	}

	var total float64
	for _, seed := range seeds {
		if seed.PursuitCostPerShipment != perShipment {
			t.Errorf("seed pursuit cost = %v, want pass-through %v", seed.PursuitCostPerShipment, perShipment)
		}
		total += seed.PursuitCostPerShipment
	}
	if math.Abs(total-500) > 0.1*5 {
		t.Errorf("summed pursuit cost %v not within tolerance of 500", total)
	}
}

func TestSplitShipments_InvalidShipmentCount(t *testing.T) {
	for _, n := range []int{0, -1, -10} {
		q := Quotation{QuotationNumber: "QUO-2025-0001", EstimatedShipments: n}
		seeds, err := SplitShipments(q, nil, nil, 0)
		if err == nil {
			t.Errorf("SplitShipments(n=%d) = %d seeds, want error", n, len(seeds))
			continue
		}
		if !strings.Contains(err.Error(), "estimated shipments") {
			t.Errorf("SplitShipments(n=%d) error = %v, want estimated-shipments message", n, err)
		}
	}
}

func TestSplitShipments_SeedsDoNotShareItemSlices(t *testing.T) {
	q := Quotation{ID: "q", EstimatedShipments: 2}
	seeds, err := SplitShipments(q, []RevenueItem{{Description: "freight", Quantity: 1, UnitPrice: 100}}, nil, 0)
	if err != nil {
		t.Fatalf("SplitShipments() error = %v", err)
	}

	seeds[0].RevenueItems[0].Amount = -1
	if seeds[1].RevenueItems[0].Amount == -1 {
		t.Error("mutating one seed's items changed another seed")
	}
}
