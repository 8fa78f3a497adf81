package report

import (
	"context"
	"fmt"

	"procurex/internal/config"
	"procurex/pkg/contracts/domain"
)

// summarySection builds the Executive Summary sheet: the title banner,
// the reporting period, the key metrics block and the top-vendor table.
type summarySection struct {
	cfg config.ReportConfig
}

func (s *summarySection) Name() string { return "Executive Summary" }

func (s *summarySection) Generate(ctx context.Context, t *domain.Table) (*domain.SheetContent, error) {
	sheet := &domain.SheetContent{
		Name:      s.Name(),
		Borders:   true,
		AutoWidth: true,
	}

	sheet.Cells = append(sheet.Cells, domain.Cell{
		Row: 1, Col: 1, Value: "EXECUTIVE SUMMARY",
		FontSize: 16, FontBold: true, FontColor: "FFFFFF",
		FillColor: domain.FillHeader,
		AlignH:    "center", AlignV: "center",
	})
	addMerge(sheet, 1, 1, 3)

	sheet.Cells = append(sheet.Cells, domain.Cell{
		Row: 2, Col: 1, Value: "Procurement Analysis Report",
		FontSize: 12, FontBold: true, FontColor: "444444",
		AlignH: "center",
	})
	addMerge(sheet, 2, 1, 3)

	sheet.Cells = append(sheet.Cells, domain.Cell{
		Row: 3, Col: 1, Value: s.periodLine(t),
		FontItalic: true, FontColor: "666666",
		AlignH: "center",
	})
	addMerge(sheet, 3, 1, 3)

	total, amountCount := grandTotal(t)
	vendors := aggregateVendors(t)

	mean := 0.0
	if amountCount > 0 {
		mean = total / float64(amountCount)
	}
	categoryCount := len(aggregateCategories(t))

	sheet.Cells = append(sheet.Cells, domain.Cell{
		Row: 5, Col: 1, Value: "KEY METRICS",
		FontBold: true, FontUnderline: true,
	})

	metrics := []struct {
		label string
		value string
	}{
		{"Total Spend", formatMoney(total, 0)},
		{"Number of Transactions", formatCount(t.Len())},
		{"Number of Vendors", formatCount(len(vendors))},
		{"Average Transaction", formatMoney(mean, 2)},
		{"Number of Categories", formatCount(categoryCount)},
	}

	row := 6
	for _, m := range metrics {
		addCell(sheet, row, 1, m.label)
		sheet.Cells = append(sheet.Cells, domain.Cell{
			Row: row, Col: 2, Value: m.value, AlignH: "right",
		})
		row++
	}

	row += 2
	sheet.Cells = append(sheet.Cells, domain.Cell{
		Row: row, Col: 1,
		Value:    fmt.Sprintf("TOP %d VENDORS BY SPEND", s.cfg.TopVendorCount),
		FontBold: true,
	})
	row++

	addHeaderRow(sheet, row, []string{"Rank", "Vendor Name", "Total Spend", "% of Total", "Transactions"})
	row++

	ranked := rankVendorsByTotal(vendors)
	if len(ranked) > s.cfg.TopVendorCount {
		ranked = ranked[:s.cfg.TopVendorCount]
	}
	for i, v := range ranked {
		pct := 0.0
		if total != 0 {
			pct = v.Total / total
		}
		addCell(sheet, row, 1, i+1)
		addCell(sheet, row, 2, v.Name)
		sheet.Cells = append(sheet.Cells, domain.Cell{
			Row: row, Col: 3, Value: v.Total, NumberFormat: domain.FormatCurrency,
		})
		sheet.Cells = append(sheet.Cells, domain.Cell{
			Row: row, Col: 4, Value: pct, NumberFormat: domain.FormatPercent,
		})
		addCell(sheet, row, 5, v.Count)
		row++
	}

	return sheet, nil
}

// periodLine derives the covered date range from the normalized date
// column, "Period: Unknown" when no date parsed.
func (s *summarySection) periodLine(t *domain.Table) string {
	dates := dateValues(t)
	if len(dates) == 0 {
		return "Period: Unknown"
	}

	min, max := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}
	return fmt.Sprintf("Period: %s to %s", min.Format(s.cfg.DateFormat), max.Format(s.cfg.DateFormat))
}
