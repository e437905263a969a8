package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
)

// HandleQuotationView returns a single quotation with its item lists
// and a freshly computed financial snapshot.
func HandleQuotationView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return errorJSON(e, http.StatusNotFound, "Quotation not found")
		}

		body, err := quotationJSON(app, record)
		if err != nil {
			log.Printf("quotation_view: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		revenue, costs, pursuit, err := services.LoadQuotationItems(app, record.Id)
		if err != nil {
			log.Printf("quotation_view: could not load items: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		revenueItems := make([]map[string]any, 0, len(revenue))
		for _, item := range revenue {
			revenueItems = append(revenueItems, map[string]any{
				"description": item.Description,
				"quantity":    item.Quantity,
				"unit_price":  item.UnitPrice,
				"subtotal":    item.Subtotal(),
			})
		}
		costItems := make([]map[string]any, 0, len(costs))
		for _, item := range costs {
			costItems = append(costItems, map[string]any{
				"description":      item.Description,
				"estimated_amount": item.EstimatedAmount,
			})
		}
		pursuitItems := make([]map[string]any, 0, len(pursuit))
		for _, item := range pursuit {
			pursuitItems = append(pursuitItems, map[string]any{
				"description": item.Description,
				"amount":      item.Amount,
			})
		}

		body["revenue_items"] = revenueItems
		body["cost_items"] = costItems
		body["pursuit_cost_items"] = pursuitItems

		return e.JSON(http.StatusOK, body)
	}
}
