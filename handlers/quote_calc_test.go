package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"renoquote/services"
	"renoquote/testhelpers"
)

func seedRateCard(t *testing.T, app *pocketbase.PocketBase) {
	t.Helper()
	testhelpers.CreateTestRateLine(t, app, services.LineDemolition, "Demolition", 350, 4.50, true)
	testhelpers.CreateTestRateLine(t, app, services.LineFloorTile, "Floor Tile Install", 0, 14, false)
	testhelpers.CreateTestRateLine(t, app, services.LineSubstrate, "Substrate", 0, 7.25, false)
	testhelpers.CreateTestRateLine(t, app, services.LineWaterproof, "Waterproofing", 200, 6, true)
	testhelpers.CreateTestRateLine(t, app, services.LineWetWallTile, "Wet Wall Tile", 0, 16.50, false)
	testhelpers.CreateTestRateLine(t, app, services.LineVanity, "Vanity Install", 0, 650, false)
	testhelpers.CreateTestRateLine(t, app, services.LineElectrical, "Electrical Item", 0, 225, false)
	testhelpers.CreateTestRateLine(t, app, services.LineHeatedFloor, "Heated Floor", 0, 1800, false)
	testhelpers.CreateTestMultiplier(t, app, services.MultContingency, 10)
	testhelpers.CreateTestMultiplier(t, app, services.MultCondo, 10)
	testhelpers.CreateTestMultiplier(t, app, services.MultPre1980, 7.5)
	testhelpers.CreateTestMultiplier(t, app, services.MultPMFee, 12)
}

func TestHandleQuoteCalculate_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	seedRateCard(t, app)
	handler := HandleQuoteCalculate(app)

	body := `{
		"bathroom_type": "tub_shower",
		"floor_sqft": 30,
		"wet_wall_sqft": 50,
		"electrical_items": 2,
		"vanity_width_in": 48,
		"customer_name": "Jane Smith",
		"upgrades": {"heated_floors": true}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/quotes/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID    string                   `json:"id"`
		Quote services.CalculatedQuote `json:"quote"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected a persisted quote id")
	}
	if len(resp.Quote.LineItems) != 8 {
		t.Errorf("got %d line items, want 8", len(resp.Quote.LineItems))
	}
	if resp.Quote.Totals.GrandTotal <= 0 {
		t.Errorf("GrandTotal = %v, want > 0", resp.Quote.Totals.GrandTotal)
	}

	// The record should hold the same result payload.
	saved, err := app.FindRecordById("quotes", resp.ID)
	if err != nil {
		t.Fatalf("saved quote not found: %v", err)
	}
	var stored services.CalculatedQuote
	if err := saved.UnmarshalJSONField("result", &stored); err != nil {
		t.Fatalf("unmarshal stored result: %v", err)
	}
	if stored.Totals.GrandTotal != resp.Quote.Totals.GrandTotal {
		t.Errorf("stored GrandTotal = %v, response %v", stored.Totals.GrandTotal, resp.Quote.Totals.GrandTotal)
	}
	if saved.GetString("customer_name") != "Jane Smith" {
		t.Errorf("customer_name = %q, want Jane Smith", saved.GetString("customer_name"))
	}
}

func TestHandleQuoteCalculate_ValidationError(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	seedRateCard(t, app)
	handler := HandleQuoteCalculate(app)

	req := httptest.NewRequest(http.MethodPost, "/api/quotes/calculate",
		strings.NewReader(`{"bathroom_type": "tub_shower"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if _, ok := resp.Fields["floor_sqft"]; !ok {
		t.Errorf("expected floor_sqft validation message, got %v", resp.Fields)
	}

	// Nothing persisted on a rejected form.
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("quotes collection: %v", err)
	}
	records, err := app.FindAllRecords(quotesCol)
	if err != nil {
		t.Fatalf("query quotes: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no saved quotes, found %d", len(records))
	}
}

func TestHandleQuoteCalculate_InactiveRateOmitted(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	seedRateCard(t, app)

	// Deactivate the heated floor line; the upgrade must silently drop out.
	col, err := app.FindCollectionByNameOrId("rate_lines")
	if err != nil {
		t.Fatalf("rate_lines collection: %v", err)
	}
	records, err := app.FindRecordsByFilter(col, "line_code = {:code}", "", 1, 0,
		map[string]any{"code": services.LineHeatedFloor})
	if err != nil || len(records) == 0 {
		t.Fatalf("heated floor rate line not found: %v", err)
	}
	records[0].Set("active", false)
	if err := app.Save(records[0]); err != nil {
		t.Fatalf("deactivate rate line: %v", err)
	}

	handler := HandleQuoteCalculate(app)
	body := `{"bathroom_type": "tub_shower", "floor_sqft": 30, "wet_wall_sqft": 50, "upgrades": {"heated_floors": true}}`
	req := httptest.NewRequest(http.MethodPost, "/api/quotes/calculate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Quote services.CalculatedQuote `json:"quote"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	for _, it := range resp.Quote.LineItems {
		if it.LineCode == services.LineHeatedFloor {
			t.Error("inactive rate line must not be priced")
		}
	}
}
