package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"roadcost/core/estimate"
	"roadcost/core/types"
)

const (
	summarySheet = "Summary"
	detailSheet  = "Detailed Costs"
)

// ExcelWriter renders a styled workbook: a Summary sheet with the
// category breakdown and a pie chart, and a Detailed Costs sheet with the
// full ledger.
type ExcelWriter struct{}

// Format implements Writer
func (w *ExcelWriter) Format() Format { return FormatExcel }

// Extension implements Writer
func (w *ExcelWriter) Extension() string { return "xlsx" }

// Render implements Writer
func (w *ExcelWriter) Render(out io.Writer, result *estimate.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("set sheet name: %w", err)
	}
	if _, err := f.NewSheet(detailSheet); err != nil {
		return fmt.Errorf("create detail sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	moneyStyle, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: stringPtr(`$#,##0.00`),
		Border:       thinBorders(),
	})
	if err != nil {
		return fmt.Errorf("create money style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return fmt.Errorf("create cell style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		CustomNumFmt: stringPtr(`$#,##0.00`),
		Border:       thinBorders(),
	})
	if err != nil {
		return fmt.Errorf("create total style: %w", err)
	}

	if err := w.writeSummary(f, result, headerStyle, cellStyle, moneyStyle, totalStyle); err != nil {
		return err
	}
	if err := w.writeDetail(f, result, headerStyle, cellStyle, moneyStyle); err != nil {
		return err
	}

	return f.Write(out)
}

func (w *ExcelWriter) writeSummary(f *excelize.File, result *estimate.Result, headerStyle, cellStyle, moneyStyle, totalStyle int) error {
	f.SetColWidth(summarySheet, "A", "A", 22)
	f.SetColWidth(summarySheet, "B", "B", 16)
	f.SetColWidth(summarySheet, "D", "E", 16)

	f.SetCellValue(summarySheet, "A1", "Category")
	f.SetCellValue(summarySheet, "B1", "Cost")
	f.SetCellStyle(summarySheet, "A1", "B1", headerStyle)

	row := 2
	for _, c := range types.Categories() {
		cell := fmt.Sprintf("A%d", row)
		f.SetCellValue(summarySheet, cell, categoryTitle(c))
		f.SetCellStyle(summarySheet, cell, cell, cellStyle)

		cell = fmt.Sprintf("B%d", row)
		f.SetCellValue(summarySheet, cell, result.Breakdown.Subtotal(c).InexactFloat64())
		f.SetCellStyle(summarySheet, cell, cell, moneyStyle)
		row++
	}

	f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), "Total")
	f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), result.TotalCost.InexactFloat64())
	f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), totalStyle)

	// Project info block
	f.SetCellValue(summarySheet, "D1", "Project ID:")
	f.SetCellValue(summarySheet, "E1", result.ProjectID)
	f.SetCellValue(summarySheet, "D2", "Alignment ID:")
	f.SetCellValue(summarySheet, "E2", result.AlignmentID)
	f.SetCellValue(summarySheet, "D3", "Date:")
	f.SetCellValue(summarySheet, "E3", time.Now().Format("2006-01-02"))
	f.SetCellValue(summarySheet, "D4", "Cost per km:")
	f.SetCellValue(summarySheet, "E4", money(result.CostPerKm))

	lastDataRow := row - 1
	chart := &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{
			{
				Name:       "Cost Breakdown",
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", summarySheet, lastDataRow),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", summarySheet, lastDataRow),
			},
		},
		Title: []excelize.RichTextRun{
			{Text: "Cost Breakdown by Category"},
		},
	}
	if err := f.AddChart(summarySheet, "D6", chart); err != nil {
		return fmt.Errorf("add chart: %w", err)
	}

	return nil
}

func (w *ExcelWriter) writeDetail(f *excelize.File, result *estimate.Result, headerStyle, cellStyle, moneyStyle int) error {
	f.SetColWidth(detailSheet, "A", "B", 18)
	f.SetColWidth(detailSheet, "B", "B", 32)
	f.SetColWidth(detailSheet, "C", "D", 16)
	f.SetColWidth(detailSheet, "E", "E", 12)
	f.SetColWidth(detailSheet, "F", "F", 8)
	f.SetColWidth(detailSheet, "G", "H", 14)

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for i, h := range ledgerColumns {
		f.SetCellValue(detailSheet, columns[i]+"1", h)
	}
	f.SetCellStyle(detailSheet, "A1", "H1", headerStyle)

	for i, item := range result.Ledger.Items {
		row := fmt.Sprintf("%d", i+2)
		f.SetCellValue(detailSheet, "A"+row, item.ItemCode)
		f.SetCellValue(detailSheet, "B"+row, item.ItemName)
		f.SetCellValue(detailSheet, "C"+row, categoryTitle(item.Category))
		f.SetCellValue(detailSheet, "D"+row, item.Subcategory)
		f.SetCellValue(detailSheet, "E"+row, item.Quantity.InexactFloat64())
		f.SetCellValue(detailSheet, "F"+row, item.Unit)
		f.SetCellValue(detailSheet, "G"+row, item.UnitRate.InexactFloat64())
		f.SetCellValue(detailSheet, "H"+row, item.Cost.InexactFloat64())

		f.SetCellStyle(detailSheet, "A"+row, "F"+row, cellStyle)
		f.SetCellStyle(detailSheet, "G"+row, "H"+row, moneyStyle)
	}

	return nil
}

// thinBorders returns thin borders on all four sides
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}

func stringPtr(s string) *string { return &s }
