// Package testhelpers provides utilities for testing PocketBase-based
// applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCustomer creates a customer record with the given name.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}

// CreateTestQuotation creates a quotation record in the given status,
// linked to a customer, and returns it. The quotation defaults to a
// general cargo Rotterdam→Jakarta route with 2 estimated shipments.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, customerID, number, status string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("failed to find quotations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation_number", number)
	record.Set("customer", customerID)
	record.Set("status", status)
	record.Set("market_type", "general_cargo")
	record.Set("complexity_score", 5)
	record.Set("requires_engineering", false)
	record.Set("engineering_status", "not_required")
	record.Set("origin", "Rotterdam")
	record.Set("destination", "Jakarta")
	record.Set("cargo_description", "Palletized machinery")
	record.Set("estimated_shipments", 2)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return record
}

// CreateTestRevenueItem creates a revenue item linked to a quotation.
func CreateTestRevenueItem(t *testing.T, app *pocketbase.PocketBase, quotationID, description string, quantity, unitPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("revenue_items")
	if err != nil {
		t.Fatalf("failed to find revenue_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation", quotationID)
	record.Set("description", description)
	record.Set("quantity", quantity)
	record.Set("unit_price", unitPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test revenue item: %v", err)
	}

	return record
}

// CreateTestCostItem creates a cost item linked to a quotation.
func CreateTestCostItem(t *testing.T, app *pocketbase.PocketBase, quotationID, description string, amount float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("cost_items")
	if err != nil {
		t.Fatalf("failed to find cost_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation", quotationID)
	record.Set("description", description)
	record.Set("estimated_amount", amount)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test cost item: %v", err)
	}

	return record
}

// CreateTestPursuitCostItem creates a pursuit cost item linked to a quotation.
func CreateTestPursuitCostItem(t *testing.T, app *pocketbase.PocketBase, quotationID, description string, amount float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("pursuit_cost_items")
	if err != nil {
		t.Fatalf("failed to find pursuit_cost_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quotation", quotationID)
	record.Set("description", description)
	record.Set("amount", amount)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test pursuit cost item: %v", err)
	}

	return record
}
