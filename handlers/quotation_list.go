package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
)

// HandleQuotationList returns all quotations, optionally filtered by
// ?status=.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var filter []dbx.Expression
		if status := e.Request.URL.Query().Get("status"); status != "" {
			if _, err := services.ParseStatus(status); err != nil {
				return errorJSON(e, http.StatusBadRequest, "Unknown status: "+status)
			}
			filter = append(filter, dbx.HashExp{"status": status})
		}

		records, err := app.FindAllRecords("quotations", filter...)
		if err != nil {
			log.Printf("quotation_list: could not fetch quotations: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		items := make([]map[string]any, 0, len(records))
		for _, record := range records {
			items = append(items, map[string]any{
				"id":                  record.Id,
				"quotation_number":    record.GetString("quotation_number"),
				"customer":            record.GetString("customer"),
				"status":              record.GetString("status"),
				"market_type":         record.GetString("market_type"),
				"origin":              record.GetString("origin"),
				"destination":         record.GetString("destination"),
				"estimated_shipments": record.GetInt("estimated_shipments"),
				"total_revenue":       record.GetFloat("total_revenue"),
				"gross_profit":        record.GetFloat("gross_profit"),
				"created":             record.GetString("created"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{"quotations": items})
	}
}
