package services_test

import (
	"testing"
	"time"

	"freightdesk/services"
	"freightdesk/testhelpers"
)

func TestQuotationFromRecord(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Record Customer")
	record := testhelpers.CreateTestQuotation(t, app, customer.Id, "QUO-2025-1001", "draft")

	quotation, err := services.QuotationFromRecord(record)
	if err != nil {
		t.Fatalf("QuotationFromRecord() error: %v", err)
	}
	if quotation.QuotationNumber != "QUO-2025-1001" {
		t.Errorf("QuotationNumber = %q, want QUO-2025-1001", quotation.QuotationNumber)
	}
	if quotation.Status != services.StatusDraft {
		t.Errorf("Status = %q, want draft", quotation.Status)
	}
	if quotation.CustomerID != customer.Id {
		t.Errorf("CustomerID = %q, want %q", quotation.CustomerID, customer.Id)
	}
}

func TestQuotationFromRecord_CorruptStatus(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Corrupt Customer")
	record := testhelpers.CreateTestQuotation(t, app, customer.Id, "QUO-2025-1002", "draft")
	record.Set("status", "")

	if _, err := services.QuotationFromRecord(record); err == nil {
		t.Error("expected error for empty status, got nil")
	}
}

func TestRecalcSnapshot(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Calc Customer")
	record := testhelpers.CreateTestQuotation(t, app, customer.Id, "QUO-2025-1003", "draft")
	testhelpers.CreateTestRevenueItem(t, app, record.Id, "Ocean freight", 2, 5000)
	testhelpers.CreateTestCostItem(t, app, record.Id, "Port handling", 4000)
	testhelpers.CreateTestPursuitCostItem(t, app, record.Id, "Survey", 500)

	snapshot, err := services.RecalcSnapshot(app, record)
	if err != nil {
		t.Fatalf("RecalcSnapshot() error: %v", err)
	}
	if snapshot.TotalRevenue != 10000 {
		t.Errorf("TotalRevenue = %v, want 10000", snapshot.TotalRevenue)
	}
	if snapshot.GrossProfit != 6000 {
		t.Errorf("GrossProfit = %v, want 6000", snapshot.GrossProfit)
	}
	// default test quotation runs 2 shipments
	if snapshot.PursuitCostPerShipment != 250 {
		t.Errorf("PursuitCostPerShipment = %v, want 250", snapshot.PursuitCostPerShipment)
	}

	// Snapshot values are staged onto the record for the caller to save.
	if got := record.GetFloat("total_revenue"); got != 10000 {
		t.Errorf("record total_revenue = %v, want 10000", got)
	}
	if got := record.GetFloat("pursuit_cost_per_shipment"); got != 250 {
		t.Errorf("record pursuit_cost_per_shipment = %v, want 250", got)
	}
}

func TestNextQuotationNumber(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Numbering Customer")

	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	first, err := services.NextQuotationNumber(app, now)
	if err != nil {
		t.Fatalf("NextQuotationNumber() error: %v", err)
	}
	if first != "QUO-2025-0001" {
		t.Errorf("first number = %q, want QUO-2025-0001", first)
	}

	testhelpers.CreateTestQuotation(t, app, customer.Id, first, "draft")

	second, err := services.NextQuotationNumber(app, now)
	if err != nil {
		t.Fatalf("NextQuotationNumber() error: %v", err)
	}
	if second != "QUO-2025-0002" {
		t.Errorf("second number = %q, want QUO-2025-0002", second)
	}
}

func TestNextQuotationNumber_SequenceIsPerYear(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Year Customer")
	testhelpers.CreateTestQuotation(t, app, customer.Id, "QUO-2024-0007", "won")

	now := time.Date(2025, time.January, 2, 9, 0, 0, 0, time.UTC)
	number, err := services.NextQuotationNumber(app, now)
	if err != nil {
		t.Fatalf("NextQuotationNumber() error: %v", err)
	}
	if number != "QUO-2025-0001" {
		t.Errorf("number = %q, want QUO-2025-0001 (prior year does not count)", number)
	}
}

func TestLoadQuotationItems(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Items Customer")
	record := testhelpers.CreateTestQuotation(t, app, customer.Id, "QUO-2025-1004", "draft")
	testhelpers.CreateTestRevenueItem(t, app, record.Id, "Freight", 2, 100)
	testhelpers.CreateTestRevenueItem(t, app, record.Id, "Documentation", 1, 50)
	testhelpers.CreateTestCostItem(t, app, record.Id, "Handling", 80)

	// Items on another quotation must not leak in.
	other := testhelpers.CreateTestQuotation(t, app, customer.Id, "QUO-2025-1005", "draft")
	testhelpers.CreateTestRevenueItem(t, app, other.Id, "Unrelated", 1, 999)

	revenue, costs, pursuit, err := services.LoadQuotationItems(app, record.Id)
	if err != nil {
		t.Fatalf("LoadQuotationItems() error: %v", err)
	}
	if len(revenue) != 2 {
		t.Errorf("expected 2 revenue items, got %d", len(revenue))
	}
	if len(costs) != 1 {
		t.Errorf("expected 1 cost item, got %d", len(costs))
	}
	if len(pursuit) != 0 {
		t.Errorf("expected 0 pursuit cost items, got %d", len(pursuit))
	}
}
