package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
)

// HandleQuotationConvert turns a won quotation into one proforma job
// order per estimated shipment. Conversion is one-shot: a quotation
// that already produced job orders refuses to produce another set.
func HandleQuotationConvert(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return errorJSON(e, http.StatusNotFound, "Quotation not found")
		}

		if record.GetString("status") != string(services.StatusWon) {
			return errorJSON(e, http.StatusConflict, "Only won quotations can be converted to job orders")
		}
		if record.GetBool("converted") {
			return errorJSON(e, http.StatusConflict, "Quotation has already been converted")
		}

		snapshot, err := services.RecalcSnapshot(app, record)
		if err != nil {
			log.Printf("quotation_convert: could not recompute snapshot: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		quotation, err := services.QuotationFromRecord(record)
		if err != nil {
			log.Printf("quotation_convert: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		revenue, costs, _, err := services.LoadQuotationItems(app, record.Id)
		if err != nil {
			log.Printf("quotation_convert: could not load items: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		seeds, err := services.SplitShipments(quotation, revenue, costs, snapshot.PursuitCostPerShipment)
		if err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}

		pjoCol, err := app.FindCollectionByNameOrId("proforma_job_orders")
		if err != nil {
			log.Printf("quotation_convert: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		// All job orders and the converted flag land together or not at
		// all; a partial set would let a retried convert duplicate the
		// shipments that did get through.
		created := make([]map[string]any, 0, len(seeds))
		err = app.RunInTransaction(func(txApp core.App) error {
			for _, seed := range seeds {
				pjo := services.PJOSeedToRecord(pjoCol, seed)
				if err := txApp.Save(pjo); err != nil {
					return fmt.Errorf("could not save job order %d: %w", seed.ShipmentNumber, err)
				}
				created = append(created, map[string]any{
					"id":                        pjo.Id,
					"shipment_number":           seed.ShipmentNumber,
					"pol":                       seed.POL,
					"pod":                       seed.POD,
					"revenue_amount":            seed.RevenueAmount,
					"cost_amount":               seed.CostAmount,
					"pursuit_cost_per_shipment": seed.PursuitCostPerShipment,
				})
			}

			record.Set("converted", true)
			return txApp.Save(record)
		})
		if err != nil {
			log.Printf("quotation_convert: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusCreated, map[string]any{
			"quotation_id": record.Id,
			"job_orders":   created,
		})
	}
}
