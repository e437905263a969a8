package handlers

import (
	"log"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
)

type quotationCreateRequest struct {
	CustomerID          string   `json:"customer_id"`
	Origin              string   `json:"origin"`
	Destination         string   `json:"destination"`
	CargoDescription    string   `json:"cargo_description"`
	EstimatedShipments  int      `json:"estimated_shipments"`
	MarketType          string   `json:"market_type"`
	ComplexityScore     float64  `json:"complexity_score"`
	ComplexityFactors   []string `json:"complexity_factors"`
	RequiresEngineering bool     `json:"requires_engineering"`
}

func (r quotationCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CustomerID, validation.Required),
		validation.Field(&r.Origin, validation.Required),
		validation.Field(&r.Destination, validation.Required),
		validation.Field(&r.EstimatedShipments, validation.Min(1)),
		validation.Field(&r.MarketType,
			validation.Required,
			validation.In("general_cargo", "project_cargo", "coastal", "heavy_lift")),
	)
}

// HandleQuotationCreate creates a quotation: number from the yearly
// sequence, entry status from the market classification, empty item
// collections and a zeroed financial snapshot.
func HandleQuotationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req quotationCreateRequest
		if err := e.BindBody(&req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if err := req.Validate(); err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}

		if _, err := app.FindRecordById("customers", req.CustomerID); err != nil {
			return errorJSON(e, http.StatusNotFound, "Customer not found")
		}

		number, err := services.NextQuotationNumber(app, time.Now())
		if err != nil {
			log.Printf("quotation_create: could not generate quotation number: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		classification := services.MarketClassification{
			MarketType:          req.MarketType,
			ComplexityScore:     req.ComplexityScore,
			ComplexityFactors:   req.ComplexityFactors,
			RequiresEngineering: req.RequiresEngineering,
		}

		col, err := app.FindCollectionByNameOrId("quotations")
		if err != nil {
			log.Printf("quotation_create: could not find quotations collection: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("quotation_number", number)
		record.Set("customer", req.CustomerID)
		record.Set("status", string(services.InitialStatus(classification)))
		record.Set("market_type", req.MarketType)
		record.Set("complexity_score", req.ComplexityScore)
		record.Set("requires_engineering", req.RequiresEngineering)
		record.Set("engineering_status", string(services.InitialEngineeringStatus(classification)))
		record.Set("origin", req.Origin)
		record.Set("destination", req.Destination)
		record.Set("cargo_description", req.CargoDescription)
		record.Set("estimated_shipments", req.EstimatedShipments)

		if err := app.Save(record); err != nil {
			log.Printf("quotation_create: could not save quotation: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		body, err := quotationJSON(app, record)
		if err != nil {
			log.Printf("quotation_create: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		return e.JSON(http.StatusCreated, body)
	}
}
