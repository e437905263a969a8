package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
)

type engineeringRequest struct {
	EngineeringStatus string `json:"engineering_status"`
}

// HandleEngineering records engineering sign-off progress on a
// quotation. Only quotations flagged as requiring engineering carry
// this workflow, and closed quotations no longer accept it. Once the
// review is completed or waived a quotation parked in
// engineering_review moves back to draft so costing can continue.
func HandleEngineering(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return errorJSON(e, http.StatusNotFound, "Quotation not found")
		}

		if !record.GetBool("requires_engineering") {
			return errorJSON(e, http.StatusConflict, "Quotation does not require engineering review")
		}

		status, err := services.ParseStatus(record.GetString("status"))
		if err != nil {
			log.Printf("engineering: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		if services.IsTerminal(status) {
			return errorJSON(e, http.StatusConflict, "Quotation is closed and can no longer be edited")
		}

		var req engineeringRequest
		if err := e.BindBody(&req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		target, err := services.ParseEngineeringStatus(req.EngineeringStatus)
		if err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}
		switch target {
		case services.EngineeringInProgress, services.EngineeringCompleted, services.EngineeringWaived:
		default:
			return errorJSON(e, http.StatusBadRequest, "Engineering status must be in_progress, completed or waived")
		}

		record.Set("engineering_status", string(target))
		cleared := target == services.EngineeringCompleted || target == services.EngineeringWaived
		if cleared && status == services.StatusEngineeringReview {
			record.Set("status", string(services.StatusDraft))
		}

		if err := app.Save(record); err != nil {
			log.Printf("engineering: could not save quotation: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		body, err := quotationJSON(app, record)
		if err != nil {
			log.Printf("engineering: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusOK, body)
	}
}
