package report

import (
	"context"

	"procurex/internal/config"
	"procurex/pkg/contracts/domain"
)

// categorySection builds the Spend by Category sheet, or an explicit
// placeholder when the input carries no category column.
type categorySection struct {
	cfg config.ReportConfig
}

func (s *categorySection) Name() string { return "Spend by Category" }

func (s *categorySection) Generate(ctx context.Context, t *domain.Table) (*domain.SheetContent, error) {
	if !t.HasColumn(FieldCategory) {
		sheet := &domain.SheetContent{Name: s.Name()}
		addCell(sheet, 1, 1, "No 'category' column available in data.")
		return sheet, nil
	}

	sheet := newTabularSheet(s.Name())
	addHeaderRow(sheet, 1, []string{"Rank", "Category", "Total Spend", "% of Total Spend", "Transaction Count", "Number of Vendors"})

	total, _ := grandTotal(t)
	ranked := rankCategoriesByTotal(aggregateCategories(t))

	for i, c := range ranked {
		row := i + 2

		pct := 0.0
		if total != 0 {
			pct = c.Total / total
		}

		addCell(sheet, row, 1, i+1)
		addCell(sheet, row, 2, c.Name)
		sheet.Cells = append(sheet.Cells, domain.Cell{
			Row: row, Col: 3, Value: c.Total, NumberFormat: domain.FormatCurrency,
		})
		sheet.Cells = append(sheet.Cells, domain.Cell{
			Row: row, Col: 4, Value: pct, NumberFormat: domain.FormatPercent,
		})
		addCell(sheet, row, 5, c.Count)
		addCell(sheet, row, 6, c.Vendors)
	}

	return sheet, nil
}
