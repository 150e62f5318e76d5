package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"roadcost/core/estimate"
	"roadcost/core/types"
)

func testResult() *estimate.Result {
	ledger := &types.Ledger{}
	ledger.Append(types.NewLineItem(types.CostItemDef{
		Code: types.ItemExcavate, Name: "Excavation", Unit: types.UnitCubicMetre,
		Category: types.CategoryEarthworks, Subcategory: "cut",
	}, decimal.NewFromInt(1000), decimal.NewFromInt(15)))
	ledger.Append(types.NewLineItem(types.CostItemDef{
		Code: types.ItemAsphaltLayer, Name: "Asphalt Pavement Layer", Unit: types.UnitCubicMetre,
		Category: types.CategoryPavement, Subcategory: "surface",
	}, decimal.NewFromInt(360), decimal.NewFromInt(120)))

	var b types.Breakdown
	b.Earthworks = decimal.NewFromInt(15000)
	b.Pavement = decimal.NewFromInt(43200)
	b.Total = decimal.NewFromInt(58200)

	return &estimate.Result{
		ProjectID:   "HWY-2095",
		AlignmentID: "ALT-B",
		RoadLength:  decimal.NewFromInt(1000),
		Ledger:      ledger,
		Breakdown:   b,
		TotalCost:   b.Total,
		CostPerKm:   b.Total,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		label   string
		want    Format
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{"Excel", FormatExcel, false},
		{"PDF", FormatPDF, false},
		{"json", FormatJSON, false},
		{"html", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParseFormat(tt.label)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.label)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) failed: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVWriter{}).Render(&buf, testResult()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV back: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}

	for i, col := range ledgerColumns {
		if records[0][i] != col {
			t.Errorf("header column %d: expected %s, got %s", i, col, records[0][i])
		}
	}

	excavate := records[1]
	if excavate[0] != types.ItemExcavate {
		t.Errorf("expected first row %s, got %s", types.ItemExcavate, excavate[0])
	}
	if excavate[7] != "15000.00" {
		t.Errorf("expected cost 15000.00, got %s", excavate[7])
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONWriter{}).Render(&buf, testResult()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var decoded jsonReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if decoded.ProjectID != "HWY-2095" || decoded.AlignmentID != "ALT-B" {
		t.Errorf("unexpected identifiers: %s / %s", decoded.ProjectID, decoded.AlignmentID)
	}
	if decoded.TotalCost != 58200 {
		t.Errorf("expected total 58200, got %v", decoded.TotalCost)
	}
	if len(decoded.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(decoded.Items))
	}
}

func TestExcelWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&ExcelWriter{}).Render(&buf, testResult()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	found := map[string]bool{}
	for _, s := range sheets {
		found[s] = true
	}
	if !found["Summary"] || !found["Detailed Costs"] {
		t.Errorf("expected Summary and Detailed Costs sheets, got %v", sheets)
	}

	cell, err := f.GetCellValue("Detailed Costs", "A2")
	if err != nil {
		t.Fatalf("reading cell: %v", err)
	}
	if cell != types.ItemExcavate {
		t.Errorf("expected first detail row %s, got %s", types.ItemExcavate, cell)
	}
}

func TestPDFWriter(t *testing.T) {
	var buf bytes.Buffer
	if err := (&PDFWriter{}).Render(&buf, testResult()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if buf.Len() == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()

	name, err := NewRegistry().Generate(testResult(), FormatCSV, dir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.HasPrefix(name, "cost_estimate_HWY-2095_ALT-B_") {
		t.Errorf("unexpected filename prefix: %s", name)
	}
	if filepath.Ext(name) != ".csv" {
		t.Errorf("expected .csv extension, got %s", name)
	}

	// Two generations never collide
	again, err := NewRegistry().Generate(testResult(), FormatCSV, dir)
	if err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	if again == name {
		t.Error("expected unique filenames for repeated generations")
	}
}

func TestGenerateSanitizesIdentifiers(t *testing.T) {
	dir := t.TempDir()

	result := testResult()
	result.ProjectID = "../evil project"

	name, err := NewRegistry().Generate(result, FormatJSON, dir)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if strings.ContainsAny(name, "/\\ ") {
		t.Errorf("filename carries unsafe characters: %s", name)
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{1234567.89, "$1,234,567.89"},
		{-980.25, "-$980.25"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := money(decimal.NewFromFloat(tt.in))
			if got != tt.want {
				t.Errorf("money(%v) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestCategoryTitle(t *testing.T) {
	if got := categoryTitle(types.CategoryTrafficControl); got != "Traffic Control" {
		t.Errorf("expected Traffic Control, got %s", got)
	}
	if got := categoryTitle(types.CategoryPavement); got != "Pavement" {
		t.Errorf("expected Pavement, got %s", got)
	}
}
