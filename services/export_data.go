package services

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// ExportRow represents a single item line in a quotation export.
type ExportRow struct {
	Index       int
	Description string
	Qty         float64
	UnitPrice   float64
	Amount      float64
}

// QuotationExportData holds all data needed to generate a quotation
// document (Excel or PDF).
type QuotationExportData struct {
	QuotationNumber    string
	CustomerName       string
	Status             string
	MarketType         string
	Origin             string
	Destination        string
	CargoDescription   string
	EstimatedShipments int
	CreatedDate        string

	RevenueRows []ExportRow
	CostRows    []ExportRow
	PursuitRows []ExportRow

	Snapshot FinancialSnapshot
}

// BuildQuotationExportData assembles all data needed for document
// generation from PocketBase records. The financial snapshot is
// recomputed from the items rather than read back from the record, so an
// exported document can never show stale figures.
func BuildQuotationExportData(app *pocketbase.PocketBase, quotationID string) (*QuotationExportData, error) {
	record, err := app.FindRecordById("quotations", quotationID)
	if err != nil {
		return nil, fmt.Errorf("quotation not found: %w", err)
	}

	customerName := ""
	if customerID := record.GetString("customer"); customerID != "" {
		customer, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("export_data: could not find customer %s: %v", customerID, err)
		} else {
			customerName = customer.GetString("name")
		}
	}

	revenue, costs, pursuit, err := LoadQuotationItems(app, quotationID)
	if err != nil {
		return nil, err
	}

	data := &QuotationExportData{
		QuotationNumber:    record.GetString("quotation_number"),
		CustomerName:       customerName,
		Status:             record.GetString("status"),
		MarketType:         record.GetString("market_type"),
		Origin:             record.GetString("origin"),
		Destination:        record.GetString("destination"),
		CargoDescription:   record.GetString("cargo_description"),
		EstimatedShipments: record.GetInt("estimated_shipments"),
		CreatedDate:        record.GetDateTime("created").Time().Format("02 Jan 2006"),
		Snapshot:           CalcFinancials(revenue, costs, pursuit, record.GetInt("estimated_shipments")),
	}

	for i, item := range revenue {
		data.RevenueRows = append(data.RevenueRows, ExportRow{
			Index:       i + 1,
			Description: item.Description,
			Qty:         item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Subtotal(),
		})
	}
	for i, item := range costs {
		data.CostRows = append(data.CostRows, ExportRow{
			Index:       i + 1,
			Description: item.Description,
			Amount:      item.EstimatedAmount,
		})
	}
	for i, item := range pursuit {
		data.PursuitRows = append(data.PursuitRows, ExportRow{
			Index:       i + 1,
			Description: item.Description,
			Amount:      item.Amount,
		})
	}

	return data, nil
}
