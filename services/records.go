package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// QuotationFromRecord converts a quotations record into the engine's
// Quotation value. Status fields go through the parsers so a corrupted
// record surfaces as an error instead of an unknown-status branch later.
func QuotationFromRecord(record *core.Record) (Quotation, error) {
	status, err := ParseStatus(record.GetString("status"))
	if err != nil {
		return Quotation{}, fmt.Errorf("quotation %s: %w", record.Id, err)
	}
	engStatus, err := ParseEngineeringStatus(record.GetString("engineering_status"))
	if err != nil {
		return Quotation{}, fmt.Errorf("quotation %s: %w", record.Id, err)
	}

	return Quotation{
		ID:                  record.Id,
		QuotationNumber:     record.GetString("quotation_number"),
		CustomerID:          record.GetString("customer"),
		Status:              status,
		MarketType:          record.GetString("market_type"),
		ComplexityScore:     record.GetFloat("complexity_score"),
		Origin:              record.GetString("origin"),
		Destination:         record.GetString("destination"),
		CargoDescription:    record.GetString("cargo_description"),
		RequiresEngineering: record.GetBool("requires_engineering"),
		EngineeringStatus:   engStatus,
		EstimatedShipments:  record.GetInt("estimated_shipments"),
	}, nil
}

// LoadQuotationItems fetches all three item collections for a quotation.
func LoadQuotationItems(app core.App, quotationID string) ([]RevenueItem, []CostItem, []PursuitCostItem, error) {
	revenueRecords, err := app.FindAllRecords("revenue_items", dbx.HashExp{"quotation": quotationID})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fetch revenue items: %w", err)
	}
	costRecords, err := app.FindAllRecords("cost_items", dbx.HashExp{"quotation": quotationID})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fetch cost items: %w", err)
	}
	pursuitRecords, err := app.FindAllRecords("pursuit_cost_items", dbx.HashExp{"quotation": quotationID})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fetch pursuit cost items: %w", err)
	}

	revenue := make([]RevenueItem, 0, len(revenueRecords))
	for _, r := range revenueRecords {
		revenue = append(revenue, RevenueItem{
			Description: r.GetString("description"),
			Quantity:    r.GetFloat("quantity"),
			UnitPrice:   r.GetFloat("unit_price"),
		})
	}
	costs := make([]CostItem, 0, len(costRecords))
	for _, r := range costRecords {
		costs = append(costs, CostItem{
			Description:     r.GetString("description"),
			EstimatedAmount: r.GetFloat("estimated_amount"),
		})
	}
	pursuit := make([]PursuitCostItem, 0, len(pursuitRecords))
	for _, r := range pursuitRecords {
		pursuit = append(pursuit, PursuitCostItem{
			Description: r.GetString("description"),
			Amount:      r.GetFloat("amount"),
		})
	}
	return revenue, costs, pursuit, nil
}

// RecalcSnapshot recomputes the financial snapshot from the quotation's
// current items and writes the derived fields onto the record. The caller
// is responsible for saving. The stored snapshot is a display cache; this
// is the only code path allowed to set it.
func RecalcSnapshot(app core.App, record *core.Record) (FinancialSnapshot, error) {
	revenue, costs, pursuit, err := LoadQuotationItems(app, record.Id)
	if err != nil {
		return FinancialSnapshot{}, err
	}

	snapshot := CalcFinancials(revenue, costs, pursuit, record.GetInt("estimated_shipments"))
	record.Set("total_revenue", snapshot.TotalRevenue)
	record.Set("total_cost", snapshot.TotalCost)
	record.Set("gross_profit", snapshot.GrossProfit)
	record.Set("profit_margin", snapshot.ProfitMargin)
	record.Set("total_pursuit_cost", snapshot.TotalPursuitCost)
	record.Set("pursuit_cost_per_shipment", snapshot.PursuitCostPerShipment)
	return snapshot, nil
}

// PJOSeedToRecord builds a proforma_job_orders record from a seed.
func PJOSeedToRecord(col *core.Collection, seed PJOSeed) *core.Record {
	r := core.NewRecord(col)
	r.Set("quotation", seed.QuotationID)
	r.Set("customer", seed.CustomerID)
	r.Set("shipment_number", seed.ShipmentNumber)
	r.Set("market_type", seed.MarketType)
	r.Set("complexity_score", seed.ComplexityScore)
	r.Set("cargo_description", seed.CargoDescription)
	r.Set("pol", seed.POL)
	r.Set("pod", seed.POD)
	r.Set("requires_engineering", seed.RequiresEngineering)
	r.Set("engineering_status", string(seed.EngineeringStatus))
	r.Set("revenue_items", seed.RevenueItems)
	r.Set("cost_items", seed.CostItems)
	r.Set("revenue_amount", seed.RevenueAmount)
	r.Set("cost_amount", seed.CostAmount)
	r.Set("pursuit_cost_per_shipment", seed.PursuitCostPerShipment)
	return r
}

// NextQuotationNumber counts the quotations already numbered for the
// reference date's year and returns the next number in sequence.
func NextQuotationNumber(app *pocketbase.PocketBase, now time.Time) (string, error) {
	prefix := QuotationNumberPrefix(now)
	count, err := app.CountRecords(
		"quotations",
		dbx.Like("quotation_number", prefix).Match(false, true),
	)
	if err != nil {
		return "", fmt.Errorf("count quotations for %s: %w", prefix, err)
	}
	return GenerateQuotationNumber(int(count), now), nil
}
