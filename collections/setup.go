// Package collections programmatically creates and seeds the PocketBase
// collections backing the freight back office.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the customers, quotations,
// item and proforma_job_orders collections exist.
func Setup(app *pocketbase.PocketBase) {
	customers := ensureCollection(app, "customers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact_person", Required: false})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "country", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotations := ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quotation_number", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "customer",
			Required:     true,
			CollectionId: customers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.SelectField{
			Name:     "status",
			Required: true,
			Values: []string{
				"draft", "engineering_review", "ready",
				"submitted", "won", "lost", "cancelled",
			},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "market_type",
			Required:  true,
			Values:    []string{"general_cargo", "project_cargo", "coastal", "heavy_lift"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "complexity_score", Required: false})
		c.Fields.Add(&core.BoolField{Name: "requires_engineering"})
		c.Fields.Add(&core.SelectField{
			Name:     "engineering_status",
			Required: true,
			Values: []string{
				"not_required", "pending", "in_progress", "completed", "waived",
			},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "origin", Required: true})
		c.Fields.Add(&core.TextField{Name: "destination", Required: true})
		c.Fields.Add(&core.TextField{Name: "cargo_description", Required: false})
		c.Fields.Add(&core.NumberField{Name: "estimated_shipments", Required: true})

		// Cached financial snapshot, recomputed on every item mutation.
		c.Fields.Add(&core.NumberField{Name: "total_revenue"})
		c.Fields.Add(&core.NumberField{Name: "total_cost"})
		c.Fields.Add(&core.NumberField{Name: "gross_profit"})
		c.Fields.Add(&core.NumberField{Name: "profit_margin"})
		c.Fields.Add(&core.NumberField{Name: "total_pursuit_cost"})
		c.Fields.Add(&core.NumberField{Name: "pursuit_cost_per_shipment"})

		c.Fields.Add(&core.BoolField{Name: "converted"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "revenue_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quotation",
			Required:      true,
			CollectionId:  quotations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.NumberField{Name: "quantity"})
		c.Fields.Add(&core.NumberField{Name: "unit_price"})
	})

	ensureCollection(app, "cost_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quotation",
			Required:      true,
			CollectionId:  quotations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.NumberField{Name: "estimated_amount"})
	})

	ensureCollection(app, "pursuit_cost_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quotation",
			Required:      true,
			CollectionId:  quotations.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.NumberField{Name: "amount"})
	})

	ensureCollection(app, "proforma_job_orders", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "quotation",
			Required:     true,
			CollectionId: quotations.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "customer",
			Required:     false,
			CollectionId: customers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "shipment_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "market_type", Required: false})
		c.Fields.Add(&core.NumberField{Name: "complexity_score"})
		c.Fields.Add(&core.TextField{Name: "cargo_description", Required: false})
		c.Fields.Add(&core.TextField{Name: "pol", Required: false})
		c.Fields.Add(&core.TextField{Name: "pod", Required: false})
		c.Fields.Add(&core.BoolField{Name: "requires_engineering"})
		c.Fields.Add(&core.SelectField{
			Name:     "engineering_status",
			Required: true,
			Values: []string{
				"not_required", "pending", "in_progress", "completed", "waived",
			},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.JSONField{Name: "revenue_items"})
		c.Fields.Add(&core.JSONField{Name: "cost_items"})
		c.Fields.Add(&core.NumberField{Name: "revenue_amount"})
		c.Fields.Add(&core.NumberField{Name: "cost_amount"})
		c.Fields.Add(&core.NumberField{Name: "pursuit_cost_per_shipment"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
