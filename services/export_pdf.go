package services

import (
	"fmt"
	"math"

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
)

// GeneratePDF creates a quotation document from export data using
// maroto/v2. It returns the raw PDF bytes or an error.
func GeneratePDF(data *QuotationExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
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

	addQuotationHeader(m, data)
	addItemSection(m, "Revenue", data.RevenueRows, true)
	addItemSection(m, "Costs", data.CostRows, false)
	addItemSection(m, "Pursuit Costs", data.PursuitRows, false)
	addSnapshotSummary(m, data.Snapshot)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuotationHeader adds the quotation number, customer, route and date.
func addQuotationHeader(m core.Maroto, data *QuotationExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Quotation "+data.QuotationNumber, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	gray := &props.Color{Red: 80, Green: 80, Blue: 80}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New("Customer: "+data.CustomerName, props.Text{
					Size:  9,
					Align: align.Left,
					Color: gray,
				}),
			),
			col.New(6).Add(
				text.New("Date: "+data.CreatedDate, props.Text{
					Size:  9,
					Align: align.Right,
					Color: gray,
				}),
			),
		),
	)

	route := fmt.Sprintf("%s → %s  |  %s  |  %d shipment(s)",
		data.Origin, data.Destination, data.CargoDescription, data.EstimatedShipments)
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(route, props.Text{
					Size:  9,
					Align: align.Left,
					Color: gray,
				}),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addItemSection adds a titled item table (header + rows). Revenue rows
// show quantity and unit price; cost-style rows show only the amount.
func addItemSection(m core.Maroto, title string, rows []ExportRow, withQty bool) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerCell := props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(6).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Amount", headerText)).WithStyle(&headerCell),
		),
	)

	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	for _, r := range rows {
		qtyStr := ""
		priceStr := ""
		if withQty {
			qtyStr = formatQty(r.Qty)
			priceStr = FormatMoney(r.UnitPrice)
		}
		m.AddRows(
			row.New(7).Add(
				col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index), baseText)),
				col.New(6).Add(text.New(r.Description, leftText)),
				col.New(1).Add(text.New(qtyStr, rightText)),
				col.New(2).Add(text.New(priceStr, rightText)),
				col.New(2).Add(text.New(FormatMoney(r.Amount), rightText)),
			),
		)
	}

	// Spacer
	m.AddRows(row.New(3))
}

// addSnapshotSummary adds the financial snapshot block at the bottom.
func addSnapshotSummary(m core.Maroto, s FinancialSnapshot) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := labelStyle

	addLine := func(label, value string) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(value, valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}

	addLine("Total Revenue", FormatMoney(s.TotalRevenue))
	addLine("Total Cost", FormatMoney(s.TotalCost))
	addLine(fmt.Sprintf("Gross Profit (%.2f%%)", s.ProfitMargin), FormatMoney(s.GrossProfit))
	addLine("Total Pursuit Cost", FormatMoney(s.TotalPursuitCost))
	addLine("Pursuit Cost / Shipment", FormatMoney(s.PursuitCostPerShipment))
}

// formatQty renders a quantity as a whole number when it has no
// fractional part, otherwise with 2 decimals.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
