package report

import (
	"context"

	"procurex/internal/config"
	"procurex/pkg/contracts/domain"
)

// topVendorHighlight is how many leading ranks get the green fill on
// the vendor sheet.
const topVendorHighlight = 10

// vendorSection builds the Spend by Vendor sheet: one ranked row per
// distinct vendor, sorted descending by total spend.
type vendorSection struct {
	cfg config.ReportConfig
}

func (s *vendorSection) Name() string { return "Spend by Vendor" }

func (s *vendorSection) Generate(ctx context.Context, t *domain.Table) (*domain.SheetContent, error) {
	sheet := newTabularSheet(s.Name())

	hasCountry := t.HasColumn(FieldVendorCountry)
	headers := []string{"Rank", "Vendor Name", "Total Spend", "Transaction Count", "Average Transaction", "% of Total Spend"}
	if hasCountry {
		headers = append(headers, "Vendor Country")
	}
	addHeaderRow(sheet, 1, headers)

	total, _ := grandTotal(t)
	ranked := rankVendorsByTotal(aggregateVendors(t))

	for i, v := range ranked {
		row := i + 2
		rank := i + 1

		fill := ""
		if rank <= topVendorHighlight {
			fill = domain.FillTopVendor
		}

		pct := 0.0
		if total != 0 {
			pct = v.Total / total
		}

		cells := []domain.Cell{
			{Row: row, Col: 1, Value: rank, FillColor: fill},
			{Row: row, Col: 2, Value: v.Name, FillColor: fill},
			{Row: row, Col: 3, Value: v.Total, NumberFormat: domain.FormatCurrency, FillColor: fill},
			{Row: row, Col: 4, Value: v.Count, FillColor: fill},
			{Row: row, Col: 5, Value: v.Mean(), NumberFormat: domain.FormatCurrencyCents, FillColor: fill},
			{Row: row, Col: 6, Value: pct, NumberFormat: domain.FormatPercent, FillColor: fill},
		}
		if hasCountry {
			cells = append(cells, domain.Cell{Row: row, Col: 7, Value: v.Country, FillColor: fill})
		}
		sheet.Cells = append(sheet.Cells, cells...)
	}

	return sheet, nil
}
