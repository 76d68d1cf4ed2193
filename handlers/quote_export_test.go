package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"

	"renoquote/services"
	"renoquote/testhelpers"
)

func savedTestQuote(t *testing.T, app *pocketbase.PocketBase) string {
	t.Helper()
	quote := services.CalculatedQuote{
		LineItems: []services.LineItem{
			{LineCode: services.LineDemolition, LineName: "Demolition", Quantity: 30, Unit: "sqft", UnitPrice: 4.50, BaseApplied: true, Extended: 485},
			{LineCode: services.LineFloorTile, LineName: "Floor Tile Install", Quantity: 30, Unit: "sqft", UnitPrice: 14, Extended: 420},
		},
		Totals: services.QuoteTotals{
			LabourSubtotal: 905,
			Contingency:    90.50,
			PMFee:          119.46,
			GrandTotal:     1114.96,
		},
	}
	rec := testhelpers.CreateTestQuote(t, app, "Jane Smith", quote)
	return rec.Id
}

func getExport(t *testing.T, app *pocketbase.PocketBase, handler func(*core.RequestEvent) error, id, format string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/"+id+"/export/"+format, nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestHandleQuoteExportExcel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	id := savedTestQuote(t, app)

	rec := getExport(t, app, HandleQuoteExportExcel(app), id, "excel")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") || !strings.Contains(cd, ".xlsx") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not a valid workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	title, err := f.GetCellValue(sheet, "A1")
	if err != nil {
		t.Fatalf("read title cell: %v", err)
	}
	if !strings.HasPrefix(title, "Labour Quote ") {
		t.Errorf("title = %q, want Labour Quote prefix", title)
	}
	firstCode, err := f.GetCellValue(sheet, "B5")
	if err != nil {
		t.Fatalf("read first body cell: %v", err)
	}
	if firstCode != services.LineDemolition {
		t.Errorf("first line code = %q, want %q", firstCode, services.LineDemolition)
	}
}

func TestHandleQuoteExportPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	id := savedTestQuote(t, app)

	rec := getExport(t, app, HandleQuoteExportPDF(app), id, "pdf")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("response does not start with a PDF header")
	}
}

func TestHandleQuoteExport_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	for name, handler := range map[string]func(*core.RequestEvent) error{
		"excel": HandleQuoteExportExcel(app),
		"pdf":   HandleQuoteExportPDF(app),
	} {
		rec := getExport(t, app, handler, "nonexistent12345", name)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s export: expected 404, got %d", name, rec.Code)
		}
	}
}
