package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateQuoteExcel creates an Excel workbook from a quote export and
// returns the file contents.
func GenerateQuoteExcel(data QuoteExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Determine sheet name (max 31 chars).
	sheetName := data.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Quote"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through G).
	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 14, 40, 10, 10, 14, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	rowStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Title block ─────────────────────────────────────────────────────

	rowNum := 1
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title cells: %w", err)
	}
	f.SetCellValue(sheetName, "A1", data.Title)
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	rowNum++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), "Customer: "+data.CustomerName)
	f.SetCellValue(sheetName, fmt.Sprintf("%s%d", lastCol, rowNum), "Date: "+data.CreatedDate)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), subtitleStyle)

	// Blank spacer row.
	rowNum += 2

	// ── Table header ────────────────────────────────────────────────────

	headers := []string{"#", "Code", "Line Item", "Qty", "Unit", "Unit Price", "Extended"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s%d", columns[i], rowNum)
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), headerStyle)

	// ── Table body ──────────────────────────────────────────────────────

	for _, r := range data.Rows {
		rowNum++
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), r.Index)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), r.LineCode)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), r.LineName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), r.Qty)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), r.Unit)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), FormatCAD(r.UnitPrice))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", rowNum), FormatCAD(r.Extended))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastCol, rowNum), rowStyle)
	}

	// ── Summary ─────────────────────────────────────────────────────────

	rowNum++
	for _, sr := range data.summaryRows() {
		rowNum++
		labelRange := fmt.Sprintf("A%d", rowNum)
		if err := f.MergeCell(sheetName, labelRange, fmt.Sprintf("F%d", rowNum)); err != nil {
			return nil, fmt.Errorf("merge summary cells: %w", err)
		}
		f.SetCellValue(sheetName, labelRange, sr[0])
		f.SetCellStyle(sheetName, labelRange, fmt.Sprintf("F%d", rowNum), summaryLabelStyle)
		valueCell := fmt.Sprintf("G%d", rowNum)
		f.SetCellValue(sheetName, valueCell, sr[1])
		f.SetCellStyle(sheetName, valueCell, valueCell, summaryValueStyle)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// thinBorders returns a uniform thin border on all four sides.
func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "#CCCCCC", Style: 1},
		{Type: "right", Color: "#CCCCCC", Style: 1},
		{Type: "top", Color: "#CCCCCC", Style: 1},
		{Type: "bottom", Color: "#CCCCCC", Style: 1},
	}
}
