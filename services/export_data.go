package services

import "fmt"

// QuoteExportRow is a single priced line in a quote export.
type QuoteExportRow struct {
	Index       string
	LineCode    string
	LineName    string
	Qty         float64
	Unit        string
	UnitPrice   float64
	BaseApplied bool
	Extended    float64
}

// QuoteExportData holds everything the Excel and PDF renderers need.
type QuoteExportData struct {
	Title        string
	CustomerName string
	CreatedDate  string
	Rows         []QuoteExportRow
	Totals       QuoteTotals
}

// BuildQuoteExportData flattens a calculated quote into export rows.
func BuildQuoteExportData(title, customerName, createdDate string, quote CalculatedQuote) QuoteExportData {
	rows := make([]QuoteExportRow, 0, len(quote.LineItems))
	for i, item := range quote.LineItems {
		rows = append(rows, QuoteExportRow{
			Index:       fmt.Sprintf("%d", i+1),
			LineCode:    item.LineCode,
			LineName:    item.LineName,
			Qty:         item.Quantity,
			Unit:        item.Unit,
			UnitPrice:   item.UnitPrice,
			BaseApplied: item.BaseApplied,
			Extended:    item.Extended,
		})
	}
	return QuoteExportData{
		Title:        title,
		CustomerName: customerName,
		CreatedDate:  createdDate,
		Rows:         rows,
		Totals:       quote.Totals,
	}
}

// summaryRows returns the totals section as label/value pairs in display
// order.
func (d QuoteExportData) summaryRows() [][2]string {
	return [][2]string{
		{"Labour Subtotal", FormatCAD(d.Totals.LabourSubtotal)},
		{"Contingency", FormatCAD(d.Totals.Contingency)},
		{"Condo Uplift", FormatCAD(d.Totals.CondoUplift)},
		{"Pre-1980 Uplift", FormatCAD(d.Totals.OldHomeUplift)},
		{"Project Management Fee", FormatCAD(d.Totals.PMFee)},
		{"Grand Total", FormatCAD(d.Totals.GrandTotal)},
	}
}
