package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func exportFixture() *QuotationExportData {
	return &QuotationExportData{
		QuotationNumber:    "QUO-2025-0042",
		CustomerName:       "Acme Offshore",
		Status:             "submitted",
		Origin:             "Rotterdam",
		Destination:        "Jakarta",
		CargoDescription:   "Turbine components",
		EstimatedShipments: 3,
		CreatedDate:        "15 Jun 2025",
		RevenueRows: []ExportRow{
			{Index: 1, Description: "Ocean freight", Qty: 3, UnitPrice: 3000, Amount: 9000},
		},
		CostRows: []ExportRow{
			{Index: 1, Description: "Port handling", Amount: 1500},
		},
		PursuitRows: []ExportRow{
			{Index: 1, Description: "Route survey", Amount: 300},
		},
		Snapshot: FinancialSnapshot{
			TotalRevenue:           9000,
			TotalCost:              1500,
			GrossProfit:            7500,
			ProfitMargin:           83.33,
			TotalPursuitCost:       300,
			PursuitCostPerShipment: 100,
		},
	}
}

func TestGenerateExcel_BasicQuotation(t *testing.T) {
	result, err := GenerateExcel(exportFixture())
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}

	// Verify it's a valid Excel file.
	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "QUO-2025-0042" {
		t.Errorf("expected sheet name 'QUO-2025-0042', got %v", sheets)
	}

	title, _ := f.GetCellValue(sheets[0], "A1")
	if title != "Quotation QUO-2025-0042" {
		t.Errorf("expected quotation title in A1, got %q", title)
	}
}

func TestGenerateExcel_EmptyItems(t *testing.T) {
	data := &QuotationExportData{
		QuotationNumber: "QUO-2025-0001",
		CreatedDate:     "01 Jan 2025",
	}

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"normal text", "normal text"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1234", "'+1234"},
		{"-deduction", "'-deduction"},
		{"@user", "'@user"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.input); got != tt.expect {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
