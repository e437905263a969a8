// Package handlers wires the quotation engine to the HTTP surface. Every
// handler is thin: load records, call services, persist, respond JSON.
package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
)

// errorJSON writes a JSON error payload with the given status code.
func errorJSON(e *core.RequestEvent, statusCode int, message string) error {
	return e.JSON(statusCode, map[string]any{"error": message})
}

// quotationJSON renders a quotation record plus its derived state: the
// recomputed financial snapshot, the legal next statuses and the submit
// gate verdict. The snapshot comes from the items, never from the cached
// record fields, so a response can never show stale figures.
func quotationJSON(app *pocketbase.PocketBase, record *core.Record) (map[string]any, error) {
	quotation, err := services.QuotationFromRecord(record)
	if err != nil {
		return nil, err
	}

	revenue, costs, pursuit, err := services.LoadQuotationItems(app, record.Id)
	if err != nil {
		return nil, err
	}
	snapshot := services.CalcFinancials(revenue, costs, pursuit, quotation.EstimatedShipments)

	canSubmit, gateReason := services.CanSubmit(
		quotation.Status, quotation.RequiresEngineering, quotation.EngineeringStatus)

	return map[string]any{
		"id":                   quotation.ID,
		"quotation_number":     quotation.QuotationNumber,
		"customer":             quotation.CustomerID,
		"status":               quotation.Status,
		"market_type":          quotation.MarketType,
		"complexity_score":     quotation.ComplexityScore,
		"requires_engineering": quotation.RequiresEngineering,
		"engineering_status":   quotation.EngineeringStatus,
		"origin":               quotation.Origin,
		"destination":          quotation.Destination,
		"cargo_description":    quotation.CargoDescription,
		"estimated_shipments":  quotation.EstimatedShipments,
		"converted":            record.GetBool("converted"),
		"financials": map[string]any{
			"total_revenue":             snapshot.TotalRevenue,
			"total_cost":                snapshot.TotalCost,
			"gross_profit":              snapshot.GrossProfit,
			"profit_margin":             snapshot.ProfitMargin,
			"total_pursuit_cost":        snapshot.TotalPursuitCost,
			"pursuit_cost_per_shipment": snapshot.PursuitCostPerShipment,
		},
		"legal_targets": services.LegalTargets(quotation.Status),
		"can_submit":    canSubmit,
		"submit_reason": gateReason,
	}, nil
}
