package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
)

type statusChangeRequest struct {
	Status string `json:"status"`
}

// HandleQuotationStatus moves a quotation along its lifecycle. The
// transition table is the single authority on what is legal, and the
// submission gate additionally guards the move to submitted.
func HandleQuotationStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return errorJSON(e, http.StatusNotFound, "Quotation not found")
		}

		var req statusChangeRequest
		if err := e.BindBody(&req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}

		target, err := services.ParseStatus(req.Status)
		if err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}

		current, err := services.ParseStatus(record.GetString("status"))
		if err != nil {
			log.Printf("quotation_status: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		if !services.CanTransition(current, target) {
			return errorJSON(e, http.StatusConflict,
				fmt.Sprintf("Cannot move quotation from %s to %s", current, target))
		}

		if target == services.StatusSubmitted {
			engStatus, err := services.ParseEngineeringStatus(record.GetString("engineering_status"))
			if err != nil {
				log.Printf("quotation_status: %v", err)
				return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
			}
			ok, reason := services.CanSubmit(current, record.GetBool("requires_engineering"), engStatus)
			if !ok {
				return errorJSON(e, http.StatusConflict, reason)
			}
		}

		record.Set("status", string(target))
		if err := app.Save(record); err != nil {
			log.Printf("quotation_status: could not save quotation: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		body, err := quotationJSON(app, record)
		if err != nil {
			log.Printf("quotation_status: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusOK, body)
	}
}
