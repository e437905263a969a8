package handlers

import (
	"fmt"
	"log"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"freightdesk/services"
)

type revenueItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

func (r revenueItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Quantity, validation.Min(0.0)),
	)
}

type costItemRequest struct {
	Description     string  `json:"description"`
	EstimatedAmount float64 `json:"estimated_amount"`
}

func (r costItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Description, validation.Required),
	)
}

type pursuitItemRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

func (r pursuitItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Description, validation.Required),
	)
}

// mutableQuotation loads the quotation behind an item route and refuses
// terminal ones. A nil record means the error response has already been
// written.
func mutableQuotation(e *core.RequestEvent, app *pocketbase.PocketBase, logCtx string) *core.Record {
	quotation, err := app.FindRecordById("quotations", e.Request.PathValue("id"))
	if err != nil {
		_ = errorJSON(e, http.StatusNotFound, "Quotation not found")
		return nil
	}
	status, err := services.ParseStatus(quotation.GetString("status"))
	if err != nil {
		log.Printf("%s: %v", logCtx, err)
		_ = errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return nil
	}
	if services.IsTerminal(status) {
		_ = errorJSON(e, http.StatusConflict, "Quotation is closed and its items can no longer change")
		return nil
	}
	return quotation
}

// saveItemAndRespond persists an item mutation and the quotation's
// recomputed financial snapshot in one transaction, then returns the
// refreshed quotation body. One transaction keeps the stored snapshot in
// step with the items it summarizes.
func saveItemAndRespond(e *core.RequestEvent, app *pocketbase.PocketBase, quotation, item *core.Record, logCtx string, statusCode int) error {
	err := app.RunInTransaction(func(txApp core.App) error {
		if err := txApp.Save(item); err != nil {
			return fmt.Errorf("could not save item: %w", err)
		}
		if _, err := services.RecalcSnapshot(txApp, quotation); err != nil {
			return fmt.Errorf("could not recompute snapshot: %w", err)
		}
		return txApp.Save(quotation)
	})
	if err != nil {
		log.Printf("%s: %v", logCtx, err)
		return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
	return respondQuotation(e, app, quotation, logCtx, statusCode)
}

// deleteItemAndRespond removes an item and saves the quotation's
// recomputed snapshot in the same transaction.
func deleteItemAndRespond(e *core.RequestEvent, app *pocketbase.PocketBase, quotation, item *core.Record, logCtx string) error {
	err := app.RunInTransaction(func(txApp core.App) error {
		if err := txApp.Delete(item); err != nil {
			return fmt.Errorf("could not delete item: %w", err)
		}
		if _, err := services.RecalcSnapshot(txApp, quotation); err != nil {
			return fmt.Errorf("could not recompute snapshot: %w", err)
		}
		return txApp.Save(quotation)
	})
	if err != nil {
		log.Printf("%s: %v", logCtx, err)
		return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
	return respondQuotation(e, app, quotation, logCtx, http.StatusOK)
}

func respondQuotation(e *core.RequestEvent, app *pocketbase.PocketBase, quotation *core.Record, logCtx string, statusCode int) error {
	body, err := quotationJSON(app, quotation)
	if err != nil {
		log.Printf("%s: %v", logCtx, err)
		return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
	return e.JSON(statusCode, body)
}

func findItem(e *core.RequestEvent, app *pocketbase.PocketBase, collection string, quotation *core.Record) *core.Record {
	item, err := app.FindRecordById(collection, e.Request.PathValue("itemId"))
	if err != nil || item.GetString("quotation") != quotation.Id {
		_ = errorJSON(e, http.StatusNotFound, "Item not found")
		return nil
	}
	return item
}

// HandleRevenueItemAdd adds a revenue line to a quotation.
func HandleRevenueItemAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotation := mutableQuotation(e, app, "revenue_item_add")
		if quotation == nil {
			return nil
		}
		var req revenueItemRequest
		if err := e.BindBody(&req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if err := req.Validate(); err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}

		col, err := app.FindCollectionByNameOrId("revenue_items")
		if err != nil {
			log.Printf("revenue_item_add: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		item := core.NewRecord(col)
		item.Set("quotation", quotation.Id)
		item.Set("description", req.Description)
		item.Set("quantity", req.Quantity)
		item.Set("unit_price", req.UnitPrice)

		return saveItemAndRespond(e, app, quotation, item, "revenue_item_add", http.StatusCreated)
	}
}

// HandleRevenueItemUpdate replaces the fields of a revenue line.
func HandleRevenueItemUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotation := mutableQuotation(e, app, "revenue_item_update")
		if quotation == nil {
			return nil
		}
		item := findItem(e, app, "revenue_items", quotation)
		if item == nil {
			return nil
		}
		var req revenueItemRequest
		if err := e.BindBody(&req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if err := req.Validate(); err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}

		item.Set("description", req.Description)
		item.Set("quantity", req.Quantity)
		item.Set("unit_price", req.UnitPrice)

		return saveItemAndRespond(e, app, quotation, item, "revenue_item_update", http.StatusOK)
	}
}

// HandleRevenueItemDelete removes a revenue line.
func HandleRevenueItemDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotation := mutableQuotation(e, app, "revenue_item_delete")
		if quotation == nil {
			return nil
		}
		item := findItem(e, app, "revenue_items", quotation)
		if item == nil {
			return nil
		}
		return deleteItemAndRespond(e, app, quotation, item, "revenue_item_delete")
	}
}

// HandleCostItemAdd adds an estimated cost line to a quotation.
func HandleCostItemAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotation := mutableQuotation(e, app, "cost_item_add")
		if quotation == nil {
			return nil
		}
		var req costItemRequest
		if err := e.BindBody(&req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if err := req.Validate(); err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}

		col, err := app.FindCollectionByNameOrId("cost_items")
		if err != nil {
			log.Printf("cost_item_add: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		item := core.NewRecord(col)
		item.Set("quotation", quotation.Id)
		item.Set("description", req.Description)
		item.Set("estimated_amount", req.EstimatedAmount)

		return saveItemAndRespond(e, app, quotation, item, "cost_item_add", http.StatusCreated)
	}
}

// HandleCostItemUpdate replaces the fields of an estimated cost line.
func HandleCostItemUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotation := mutableQuotation(e, app, "cost_item_update")
		if quotation == nil {
			return nil
		}
		item := findItem(e, app, "cost_items", quotation)
		if item == nil {
			return nil
		}
		var req costItemRequest
		if err := e.BindBody(&req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if err := req.Validate(); err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}

		item.Set("description", req.Description)
		item.Set("estimated_amount", req.EstimatedAmount)

		return saveItemAndRespond(e, app, quotation, item, "cost_item_update", http.StatusOK)
	}
}

// HandleCostItemDelete removes an estimated cost line.
func HandleCostItemDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotation := mutableQuotation(e, app, "cost_item_delete")
		if quotation == nil {
			return nil
		}
		item := findItem(e, app, "cost_items", quotation)
		if item == nil {
			return nil
		}
		return deleteItemAndRespond(e, app, quotation, item, "cost_item_delete")
	}
}

// HandlePursuitItemAdd adds a pursuit (bid preparation) cost line.
func HandlePursuitItemAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotation := mutableQuotation(e, app, "pursuit_item_add")
		if quotation == nil {
			return nil
		}
		var req pursuitItemRequest
		if err := e.BindBody(&req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if err := req.Validate(); err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}

		col, err := app.FindCollectionByNameOrId("pursuit_cost_items")
		if err != nil {
			log.Printf("pursuit_item_add: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}
		item := core.NewRecord(col)
		item.Set("quotation", quotation.Id)
		item.Set("description", req.Description)
		item.Set("amount", req.Amount)

		return saveItemAndRespond(e, app, quotation, item, "pursuit_item_add", http.StatusCreated)
	}
}

// HandlePursuitItemUpdate replaces the fields of a pursuit cost line.
func HandlePursuitItemUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotation := mutableQuotation(e, app, "pursuit_item_update")
		if quotation == nil {
			return nil
		}
		item := findItem(e, app, "pursuit_cost_items", quotation)
		if item == nil {
			return nil
		}
		var req pursuitItemRequest
		if err := e.BindBody(&req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if err := req.Validate(); err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}

		item.Set("description", req.Description)
		item.Set("amount", req.Amount)

		return saveItemAndRespond(e, app, quotation, item, "pursuit_item_update", http.StatusOK)
	}
}

// HandlePursuitItemDelete removes a pursuit cost line.
func HandlePursuitItemDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotation := mutableQuotation(e, app, "pursuit_item_delete")
		if quotation == nil {
			return nil
		}
		item := findItem(e, app, "pursuit_cost_items", quotation)
		if item == nil {
			return nil
		}
		return deleteItemAndRespond(e, app, quotation, item, "pursuit_item_delete")
	}
}
