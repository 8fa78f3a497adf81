package report

import (
	"testing"

	"procurex/pkg/contracts/domain"
)

// sampleTable is the three-row fixture most tests share: two vendors,
// one repeated, amounts totalling 450.
func sampleTable() *domain.Table {
	t := domain.NewTable(FieldVendor, FieldAmount, FieldDate)
	t.AppendRow(domain.Row{FieldVendor: "Vendor A", FieldAmount: 100.0, FieldDate: "2023-01-15"})
	t.AppendRow(domain.Row{FieldVendor: "Vendor B", FieldAmount: 200.0, FieldDate: "2023-02-20"})
	t.AppendRow(domain.Row{FieldVendor: "Vendor A", FieldAmount: 150.0, FieldDate: "2023-03-10"})
	return t
}

// normalized runs the coercion passes the generator applies before the
// sections see the table.
func normalized(t *domain.Table) *domain.Table {
	normalizeAmounts(t)
	normalizeDates(t)
	return t
}

// cellValue finds the value at (row, col), nil when no cell was placed
// there.
func cellValue(t *testing.T, sheet *domain.SheetContent, row, col int) any {
	t.Helper()
	for _, c := range sheet.Cells {
		if c.Row == row && c.Col == col {
			return c.Value
		}
	}
	return nil
}

// findCell returns the full cell at (row, col) for style assertions.
func findCell(t *testing.T, sheet *domain.SheetContent, row, col int) (domain.Cell, bool) {
	t.Helper()
	for _, c := range sheet.Cells {
		if c.Row == row && c.Col == col {
			return c, true
		}
	}
	return domain.Cell{}, false
}
