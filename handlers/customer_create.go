package handlers

import (
	"log"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type customerCreateRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Country       string `json:"country"`
}

func (r customerCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, is.Email),
	)
}

// HandleCustomerCreate registers a customer.
func HandleCustomerCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req customerCreateRequest
		if err := e.BindBody(&req); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid request body")
		}
		if err := req.Validate(); err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error())
		}

		col, err := app.FindCollectionByNameOrId("customers")
		if err != nil {
			log.Printf("customer_create: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		record := core.NewRecord(col)
		record.Set("name", req.Name)
		record.Set("contact_person", req.ContactPerson)
		record.Set("email", req.Email)
		record.Set("phone", req.Phone)
		record.Set("country", req.Country)
		if err := app.Save(record); err != nil {
			log.Printf("customer_create: could not save customer: %v", err)
			return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return e.JSON(http.StatusCreated, map[string]any{
			"id":             record.Id,
			"name":           record.GetString("name"),
			"contact_person": record.GetString("contact_person"),
			"email":          record.GetString("email"),
			"phone":          record.GetString("phone"),
			"country":        record.GetString("country"),
		})
	}
}
