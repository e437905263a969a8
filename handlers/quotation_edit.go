package handlers

import (
	"log"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
)

type quotationEditRequest struct {
	Origin             string   `json:"origin"`
	Destination        string   `json:"destination"`
	CargoDescription   string   `json:"cargo_description"`
	EstimatedShipments int      `json:"estimated_shipments"`
	ComplexityScore    float64  `json:"complexity_score"`
	ComplexityFactors  []string `json:"complexity_factors"`
}

func (r quotationEditRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Origin, validation.Required),
		validation.Field(&r.Destination, validation.Required),
		validation.Field(&r.EstimatedShipments, validation.Min(1)),
	)
}

// HandleQuotationEdit updates a quotation's descriptive fields. The
// snapshot is recomputed because estimated_shipments feeds the
// per-shipment pursuit cost. Terminal quotations are immutable.
func HandleQuotationEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
		if err != nil {
			return errorJSON(e, http.StatusNotFound, "Quotation not found")
		}

		status, err := services.ParseStatus(record.GetString("status"))
		if err != nil {
			log.Printf("quotation_edit: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		if services.IsTerminal(status) {
			return errorJSON(e, http.StatusConflict, "Quotation is closed and can no longer be edited")
		}

		var req quotationEditRequest
		if err := e.BindBody(&req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if err := req.Validate(); err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}

		record.Set("origin", req.Origin)
		record.Set("destination", req.Destination)
		record.Set("cargo_description", req.CargoDescription)
		record.Set("estimated_shipments", req.EstimatedShipments)
		record.Set("complexity_score", req.ComplexityScore)

		if _, err := services.RecalcSnapshot(app, record); err != nil {
			log.Printf("quotation_edit: could not recompute snapshot: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		if err := app.Save(record); err != nil {
			log.Printf("quotation_edit: could not save quotation: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		body, err := quotationJSON(app, record)
		if err != nil {
			log.Printf("quotation_edit: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusOK, body)
	}
}
