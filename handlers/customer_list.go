package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleCustomerList returns all customers.
func HandleCustomerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindAllRecords("customers")
		if err != nil {
			log.Printf("customer_list: could not fetch customers: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		items := make([]map[string]any, 0, len(records))
		for _, record := range records {
			items = append(items, map[string]any{
				"id":             record.Id,
				"name":           record.GetString("name"),
				"contact_person": record.GetString("contact_person"),
				"email":          record.GetString("email"),
				"phone":          record.GetString("phone"),
				"country":        record.GetString("country"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{"customers": items})
	}
}
