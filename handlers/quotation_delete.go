package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
)

// HandleQuotationDelete removes a draft quotation and, via cascade,
// its items. Anything past draft has history worth keeping and must be
// cancelled instead.
func HandleQuotationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return errorJSON(e, http.StatusNotFound, "Quotation not found")
		}

		if record.GetString("status") != string(services.StatusDraft) {
			return errorJSON(e, http.StatusConflict, "Only draft quotations can be deleted")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("quotation_delete: could not delete quotation: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusOK, map[string]any{"deleted": record.Id})
	}
}
