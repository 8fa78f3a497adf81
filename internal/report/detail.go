package report

import (
	"context"
	"time"

	"procurex/internal/config"
	"procurex/pkg/contracts/domain"
)

// detailSection builds the Detailed Data sheet: a full passthrough of
// the normalized table, every column, every row.
type detailSection struct {
	cfg config.ReportConfig
}

func (s *detailSection) Name() string { return "Detailed Data" }

func (s *detailSection) Generate(ctx context.Context, t *domain.Table) (*domain.SheetContent, error) {
	sheet := newTabularSheet(s.Name())

	columns := t.Columns()
	addHeaderRow(sheet, 1, columns)

	for i := 0; i < t.Len(); i++ {
		row := i + 2
		for j, col := range columns {
			addCell(sheet, row, j+1, s.renderValue(t.Value(i, col)))
		}
	}

	return sheet, nil
}

// renderValue prepares a cell value for the writer: dates as formatted
// strings, the invalid-date sentinel as an empty cell, everything else
// verbatim.
func (s *detailSection) renderValue(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val.Format(s.cfg.DateFormat)
	case nil:
		return nil
	default:
		if domain.IsNull(val) {
			return nil
		}
		return val
	}
}
