package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func testExportData() QuoteExportData {
	return QuoteExportData{
		Title:        "Quote QT-001",
		CustomerName: "Jane Smith",
		CreatedDate:  "2026-01-15",
		Rows: []QuoteExportRow{
			{Index: "1", LineCode: LineDemolition, LineName: "Demolition", Qty: 30, Unit: "sqft", UnitPrice: 4.50, BaseApplied: true, Extended: 485},
			{Index: "2", LineCode: LineFloorTile, LineName: "Floor Tile Install", Qty: 30, Unit: "sqft", UnitPrice: 14, Extended: 420},
		},
		Totals: QuoteTotals{
			LabourSubtotal: 905,
			Contingency:    90.50,
			PMFee:          119.46,
			GrandTotal:     1114.96,
		},
	}
}

func TestGenerateQuoteExcel_Basic(t *testing.T) {
	result, err := GenerateQuoteExcel(testExportData())
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuoteExcel() returned empty bytes")
	}

	// Verify it's a valid Excel file
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Quote QT-001" {
		t.Errorf("expected sheet name 'Quote QT-001', got %v", sheets)
	}

	title, _ := f.GetCellValue(sheets[0], "A1")
	if title != "Quote QT-001" {
		t.Errorf("expected title 'Quote QT-001', got %q", title)
	}

	// Row 4 is the table header, row 5 the first line item.
	code, _ := f.GetCellValue(sheets[0], "B5")
	if code != LineDemolition {
		t.Errorf("first line code = %q, want %q", code, LineDemolition)
	}
}

func TestGenerateQuoteExcel_EmptyRows(t *testing.T) {
	data := QuoteExportData{
		Title:       "Empty Quote",
		CreatedDate: "2026-01-15",
		Rows:        []QuoteExportRow{},
	}

	result, err := GenerateQuoteExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuoteExcel() returned empty bytes")
	}
}

func TestGenerateQuoteExcel_LongTitle(t *testing.T) {
	data := testExportData()
	data.Title = "A quote title long enough to exceed the sheet name limit"

	result, err := GenerateQuoteExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets[0]) > 31 {
		t.Errorf("sheet name exceeds 31 chars: %d", len(sheets[0]))
	}
}

func TestGenerateQuoteExcel_EmptyTitle(t *testing.T) {
	data := testExportData()
	data.Title = ""

	result, err := GenerateQuoteExcel(data)
	if err != nil {
		t.Fatalf("GenerateQuoteExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); sheets[0] != "Quote" {
		t.Errorf("expected default sheet name 'Quote', got %q", sheets[0])
	}
}

func TestThinBorders(t *testing.T) {
	borders := thinBorders()
	if len(borders) != 4 {
		t.Errorf("thinBorders() returned %d borders, want 4", len(borders))
	}

	sides := map[string]bool{"left": false, "top": false, "bottom": false, "right": false}
	for _, b := range borders {
		sides[b.Type] = true
		if b.Style != 1 {
			t.Errorf("border %s style = %d, want 1 (thin)", b.Type, b.Style)
		}
	}
	for side, found := range sides {
		if !found {
			t.Errorf("missing border side: %s", side)
		}
	}
}
