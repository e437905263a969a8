package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/collections"
	"freightdesk/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Customers ────────────────────────────────────────────
		se.Router.GET("/api/customers", handlers.HandleCustomerList(app))
		se.Router.POST("/api/customers", handlers.HandleCustomerCreate(app))

		// ── Quotation CRUD ───────────────────────────────────────
		se.Router.GET("/api/quotations", handlers.HandleQuotationList(app))
		se.Router.POST("/api/quotations", handlers.HandleQuotationCreate(app))
		se.Router.GET("/api/quotations/{id}", handlers.HandleQuotationView(app))
		se.Router.PUT("/api/quotations/{id}", handlers.HandleQuotationEdit(app))
		se.Router.DELETE("/api/quotations/{id}", handlers.HandleQuotationDelete(app))

		// ── Lifecycle ────────────────────────────────────────────
		se.Router.POST("/api/quotations/{id}/status", handlers.HandleQuotationStatus(app))
		se.Router.POST("/api/quotations/{id}/engineering", handlers.HandleEngineering(app))
		se.Router.POST("/api/quotations/{id}/convert", handlers.HandleQuotationConvert(app))

		// ── Items ────────────────────────────────────────────────
		se.Router.POST("/api/quotations/{id}/revenue-items", handlers.HandleRevenueItemAdd(app))
		se.Router.PUT("/api/quotations/{id}/revenue-items/{itemId}", handlers.HandleRevenueItemUpdate(app))
		se.Router.DELETE("/api/quotations/{id}/revenue-items/{itemId}", handlers.HandleRevenueItemDelete(app))
		se.Router.POST("/api/quotations/{id}/cost-items", handlers.HandleCostItemAdd(app))
		se.Router.PUT("/api/quotations/{id}/cost-items/{itemId}", handlers.HandleCostItemUpdate(app))
		se.Router.DELETE("/api/quotations/{id}/cost-items/{itemId}", handlers.HandleCostItemDelete(app))
		se.Router.POST("/api/quotations/{id}/pursuit-items", handlers.HandlePursuitItemAdd(app))
		se.Router.PUT("/api/quotations/{id}/pursuit-items/{itemId}", handlers.HandlePursuitItemUpdate(app))
		se.Router.DELETE("/api/quotations/{id}/pursuit-items/{itemId}", handlers.HandlePursuitItemDelete(app))

		// ── Export ───────────────────────────────────────────────
		se.Router.GET("/api/quotations/{id}/export/excel", handlers.HandleQuotationExportExcel(app))
		se.Router.GET("/api/quotations/{id}/export/pdf", handlers.HandleQuotationExportPDF(app))

		// ── Analytics ────────────────────────────────────────────
		se.Router.GET("/api/analytics", handlers.HandleAnalytics(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
