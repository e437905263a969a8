package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freightdesk/testhelpers"
)

func TestHandleQuotationStatus_LegalTransition(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Status Customer")
	quotation := testhelpers.CreateTestQuotation(t, app, customer.Id, "QUO-2025-0001", "draft")

	handler := HandleQuotationStatus(app)

	req := newJSONRequest(http.MethodPost, "/api/quotations/"+quotation.Id+"/status", `{"status": "ready"}`)
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 OK, got %d: %s", rec.Code, rec.Body.String())
	}

	updated, err := app.FindRecordById("quotations", quotation.Id)
	if err != nil {
		t.Fatalf("could not reload quotation: %v", err)
	}
	if got := updated.GetString("status"); got != "ready" {
		t.Errorf("status = %q, want ready", got)
	}
}

func TestHandleQuotationStatus_IllegalTransition(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Illegal Move")
	quotation := testhelpers.CreateTestQuotation(t, app, customer.Id, "QUO-2025-0002", "draft")

	handler := HandleQuotationStatus(app)

	req := newJSONRequest(http.MethodPost, "/api/quotations/"+quotation.Id+"/status", `{"status": "won"}`)
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected status 409 Conflict, got %d", rec.Code)
	}

	updated, err := app.FindRecordById("quotations", quotation.Id)
	if err != nil {
		t.Fatalf("could not reload quotation: %v", err)
	}
	if got := updated.GetString("status"); got != "draft" {
		t.Errorf("status = %q, want draft (unchanged)", got)
	}
}

func TestHandleQuotationStatus_TerminalIsFrozen(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Frozen Customer")
	quotation := testhelpers.CreateTestQuotation(t, app, customer.Id, "QUO-2025-0003", "won")

	handler := HandleQuotationStatus(app)

	req := newJSONRequest(http.MethodPost, "/api/quotations/"+quotation.Id+"/status", `{"status": "draft"}`)
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected status 409 Conflict, got %d", rec.Code)
	}
}

func TestHandleQuotationStatus_SubmitGatedOnEngineering(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Gated Customer")
	quotation := testhelpers.CreateTestQuotation(t, app, customer.Id, "QUO-2025-0004", "ready")
	quotation.Set("requires_engineering", true)
	quotation.Set("engineering_status", "in_progress")
	if err := app.Save(quotation); err != nil {
		t.Fatalf("could not flag quotation for engineering: %v", err)
	}

	handler := HandleQuotationStatus(app)

	req := newJSONRequest(http.MethodPost, "/api/quotations/"+quotation.Id+"/status", `{"status": "submitted"}`)
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409 Conflict, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "engineering") {
		t.Errorf("expected gate reason to mention engineering, got: %s", rec.Body.String())
	}
}

func TestHandleQuotationStatus_SubmitAfterEngineeringCompleted(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Cleared Customer")
	quotation := testhelpers.CreateTestQuotation(t, app, customer.Id, "QUO-2025-0005", "ready")
	quotation.Set("requires_engineering", true)
	quotation.Set("engineering_status", "completed")
	if err := app.Save(quotation); err != nil {
		t.Fatalf("could not prepare quotation: %v", err)
	}

	handler := HandleQuotationStatus(app)

	req := newJSONRequest(http.MethodPost, "/api/quotations/"+quotation.Id+"/status", `{"status": "submitted"}`)
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 OK, got %d: %s", rec.Code, rec.Body.String())
	}

	updated, err := app.FindRecordById("quotations", quotation.Id)
	if err != nil {
		t.Fatalf("could not reload quotation: %v", err)
	}
	if got := updated.GetString("status"); got != "submitted" {
		t.Errorf("status = %q, want submitted", got)
	}
}

func TestHandleQuotationStatus_UnknownStatus(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "Typo Customer")
	quotation := testhelpers.CreateTestQuotation(t, app, customer.Id, "QUO-2025-0006", "draft")

	handler := HandleQuotationStatus(app)

	req := newJSONRequest(http.MethodPost, "/api/quotations/"+quotation.Id+"/status", `{"status": "wonn"}`)
	req.SetPathValue("id", quotation.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", rec.Code)
	}
}
