package report

import (
	"context"
	"fmt"

	"procurex/internal/config"
	"procurex/pkg/contracts/domain"
)

// qualityStatus classifies a column's completeness percentage.
func qualityStatus(completeness float64, cfg config.ReportConfig) (string, string) {
	switch {
	case completeness >= cfg.QualityOKPct:
		return "OK", domain.FillStatusOK
	case completeness >= cfg.QualityWarnPct:
		return "WARNING", domain.FillStatusWarn
	default:
		return "CRITICAL", domain.FillStatusCrit
	}
}

// columnCompleteness returns the non-null fraction of a column as a
// percentage of total rows.
func columnCompleteness(t *domain.Table, col string) float64 {
	if t.Len() == 0 {
		return 0
	}
	nonNull := 0
	for i := 0; i < t.Len(); i++ {
		if !domain.IsNull(t.Value(i, col)) {
			nonNull++
		}
	}
	return float64(nonNull) / float64(t.Len()) * 100
}

// qualitySection builds the Data Quality Report sheet: per-column
// completeness with a status classification and an overall score.
type qualitySection struct {
	cfg config.ReportConfig
}

func (s *qualitySection) Name() string { return "Data Quality Report" }

func (s *qualitySection) Generate(ctx context.Context, t *domain.Table) (*domain.SheetContent, error) {
	sheet := &domain.SheetContent{
		Name:         s.Name(),
		ColumnWidths: map[int]float64{1: 30, 2: 20, 3: 15},
	}

	sheet.Cells = append(sheet.Cells, domain.Cell{
		Row: 1, Col: 1, Value: "DATA QUALITY ASSESSMENT",
		FontSize: 14, FontBold: true,
	})

	columns := t.Columns()

	var sum float64
	completeness := make([]float64, len(columns))
	for i, col := range columns {
		completeness[i] = columnCompleteness(t, col)
		sum += completeness[i]
	}
	overall := 0.0
	if len(columns) > 0 {
		overall = sum / float64(len(columns))
	}

	sheet.Cells = append(sheet.Cells, domain.Cell{
		Row: 2, Col: 1,
		Value:    fmt.Sprintf("Overall Quality Score: %.1f%%", overall),
		FontBold: true,
	})

	addHeaderRow(sheet, 4, []string{"Field Name", "Completeness %", "Status"})

	for i, col := range columns {
		row := i + 5
		status, fill := qualityStatus(completeness[i], s.cfg)

		addCell(sheet, row, 1, col)
		sheet.Cells = append(sheet.Cells, domain.Cell{
			Row: row, Col: 2,
			Value:        completeness[i] / 100, // fraction, rendered by the percent format
			NumberFormat: domain.FormatPercent,
		})
		sheet.Cells = append(sheet.Cells, domain.Cell{
			Row: row, Col: 3, Value: status, FillColor: fill,
		})
	}

	return sheet, nil
}
