package report

import (
	"fmt"
	"io"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"roadcost/core/estimate"
	"roadcost/core/types"
)

// PDFWriter renders a printable landscape A4 cost report with a category
// summary table followed by the full ledger.
type PDFWriter struct{}

// Format implements Writer
func (w *PDFWriter) Format() Format { return FormatPDF }

// Extension implements Writer
func (w *PDFWriter) Extension() string { return "pdf" }

// Render implements Writer
func (w *PDFWriter) Render(out io.Writer, result *estimate.Result) error {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addTitle(m, result)
	addSummaryTable(m, result)
	addDetailTable(m, result)
	addPDFFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generate pdf: %w", err)
	}

	_, err = out.Write(doc.GetBytes())
	return err
}

func addTitle(m core.Maroto, result *estimate.Result) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Road Construction Cost Estimate", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	info := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	infoRight := info
	infoRight.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New(fmt.Sprintf("Project: %s    Alignment: %s", result.ProjectID, result.AlignmentID), info)),
			col.New(6).Add(text.New("Date: "+time.Now().Format("2006-01-02"), infoRight)),
		),
		row.New(7).Add(
			col.New(6).Add(text.New(fmt.Sprintf("Road length: %s m", result.RoadLength.StringFixed(0)), info)),
			col.New(6).Add(text.New("Cost per km: "+money(result.CostPerKm), infoRight)),
		),
		row.New(4),
	)
}

func addSummaryTable(m core.Maroto, result *estimate.Result) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New("Cost Summary", props.Text{Size: 12, Style: fontstyle.Bold}),
			),
		),
	)

	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerCell := props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerRight := headerText
	headerRight.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New("Category", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Cost", headerRight)).WithStyle(&headerCell),
		),
	)

	body := props.Text{Size: 8, Align: align.Left}
	bodyRight := body
	bodyRight.Align = align.Right

	for _, c := range types.Categories() {
		m.AddRows(
			row.New(6).Add(
				col.New(8).Add(text.New(categoryTitle(c), body)),
				col.New(4).Add(text.New(money(result.Breakdown.Subtotal(c)), bodyRight)),
			),
		)
	}

	totalBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	totalCell := props.Cell{BackgroundColor: totalBg}
	totalText := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	totalRight := totalText
	totalRight.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New("Total", totalText)).WithStyle(&totalCell),
			col.New(4).Add(text.New(money(result.TotalCost), totalRight)).WithStyle(&totalCell),
		),
		row.New(6),
	)
}

func addDetailTable(m core.Maroto, result *estimate.Result) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New("Detailed Costs", props.Text{Size: 12, Style: fontstyle.Bold}),
			),
		),
	)

	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerCell := props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerLeft := headerText
	headerLeft.Align = align.Left

	m.AddRows(
		row.New(8).Add(
			col.New(3).Add(text.New("Item", headerLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Category", headerLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Quantity", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Rate", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Cost", headerText)).WithStyle(&headerCell),
		),
	)

	body := props.Text{Size: 7, Align: align.Left}
	bodyCenter := body
	bodyCenter.Align = align.Center
	bodyRight := body
	bodyRight.Align = align.Right

	stripe := &props.Color{Red: 245, Green: 245, Blue: 245}

	for i, item := range result.Ledger.Items {
		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: stripe}
		}

		cols := []core.Col{
			col.New(3).Add(text.New(item.ItemName, body)),
			col.New(2).Add(text.New(categoryTitle(item.Category), body)),
			col.New(2).Add(text.New(formatQty(item.Quantity), bodyRight)),
			col.New(1).Add(text.New(item.Unit, bodyCenter)),
			col.New(2).Add(text.New(money(item.UnitRate), bodyRight)),
			col.New(2).Add(text.New(money(item.Cost), bodyRight)),
		}
		if cellStyle != nil {
			for j := range cols {
				cols[j] = cols[j].WithStyle(cellStyle)
			}
		}

		m.AddRows(row.New(6).Add(cols...))
	}
}

func addPDFFooter(m core.Maroto) {
	m.AddRows(
		row.New(6),
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					"Generated on "+time.Now().Format(time.RFC3339),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
