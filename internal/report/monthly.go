package report

import (
	"context"

	"procurex/internal/config"
	"procurex/pkg/contracts/domain"
)

// monthlySection builds the Monthly Trends sheet: one row per calendar
// month present in the data, keyed by a sortable "YYYY-MM" label.
type monthlySection struct {
	cfg config.ReportConfig
}

func (s *monthlySection) Name() string { return "Monthly Trends" }

func (s *monthlySection) Generate(ctx context.Context, t *domain.Table) (*domain.SheetContent, error) {
	sheet := newTabularSheet(s.Name())
	addHeaderRow(sheet, 1, []string{"Month", "Total Spend", "Transaction Count", "Average Transaction", "Number of Vendors"})

	for i, m := range aggregateMonths(t, s.cfg.MonthFormat) {
		row := i + 2
		addCell(sheet, row, 1, m.Key)
		sheet.Cells = append(sheet.Cells, domain.Cell{
			Row: row, Col: 2, Value: m.Total, NumberFormat: domain.FormatCurrency,
		})
		addCell(sheet, row, 3, m.Count)
		sheet.Cells = append(sheet.Cells, domain.Cell{
			Row: row, Col: 4, Value: m.Mean(), NumberFormat: domain.FormatCurrencyCents,
		})
		addCell(sheet, row, 5, m.Vendors)
	}

	return sheet, nil
}
