package report

import (
	"procurex/pkg/contracts/domain"
)

// headerCell builds a styled table-header cell: bold white on the
// report's blue, centered.
func headerCell(row, col int, value string) domain.Cell {
	return domain.Cell{
		Row:       row,
		Col:       col,
		Value:     value,
		FontBold:  true,
		FontColor: "FFFFFF",
		FillColor: domain.FillHeader,
		AlignH:    "center",
		AlignV:    "center",
	}
}

// addHeaderRow writes a styled header row across the given columns.
func addHeaderRow(s *domain.SheetContent, row int, headers []string) {
	for i, h := range headers {
		s.Cells = append(s.Cells, headerCell(row, i+1, h))
	}
}

// addCell appends a plain value cell.
func addCell(s *domain.SheetContent, row, col int, value any) {
	s.Cells = append(s.Cells, domain.Cell{Row: row, Col: col, Value: value})
}

// addMerge merges a horizontal cell range on one row.
func addMerge(s *domain.SheetContent, row, firstCol, lastCol int) {
	s.Merges = append(s.Merges, domain.MergeRange{
		FirstRow: row,
		FirstCol: firstCol,
		LastRow:  row,
		LastCol:  lastCol,
	})
}

// newTabularSheet creates a sheet with the chrome every data table
// gets: frozen header row, auto-filter, thin borders, auto widths.
func newTabularSheet(name string) *domain.SheetContent {
	return &domain.SheetContent{
		Name:            name,
		FreezeHeaderRow: true,
		AutoFilter:      true,
		Borders:         true,
		AutoWidth:       true,
	}
}
