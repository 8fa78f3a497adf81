package domain

// Cell number formats shared by the report sections and the writer.
const (
	FormatCurrency      = "$#,##0"
	FormatCurrencyCents = "$#,##0.00"
	FormatPercent       = "0.0%"
)

// Fill colors (RGB hex) used across the workbook.
const (
	FillHeader     = "4472C4" // blue header rows and title banner
	FillTopVendor  = "E2EFDA" // green highlight for top-10 vendor rows
	FillStatusOK   = "C6EFCE"
	FillStatusWarn = "FFE699"
	FillStatusCrit = "FFC7CE"
)

// Cell is one styled cell assignment. Row and Col are 1-based.
type Cell struct {
	Row   int
	Col   int
	Value any

	NumberFormat  string
	FillColor     string
	FontBold      bool
	FontItalic    bool
	FontUnderline bool
	FontSize      float64
	FontColor     string
	AlignH        string // "center", "right"
	AlignV        string // "center"
}

// MergeRange describes a merged cell block, 1-based inclusive.
type MergeRange struct {
	FirstRow int
	FirstCol int
	LastRow  int
	LastCol  int
}

// SheetContent is the full content of one report sheet handed to the
// spreadsheet writer. It carries values and styling only; how they are
// rendered into a workbook is the writer's concern.
type SheetContent struct {
	Name   string
	Cells  []Cell
	Merges []MergeRange

	// FreezeHeaderRow freezes panes below the first row.
	FreezeHeaderRow bool
	// AutoFilter puts a filter over the used range.
	AutoFilter bool
	// Borders draws thin borders around every populated cell.
	Borders bool
	// AutoWidth sizes columns to their longest content, capped at 50.
	AutoWidth bool
	// ColumnWidths sets explicit widths (1-based column index). Explicit
	// widths win over AutoWidth.
	ColumnWidths map[int]float64
}

// MaxRow returns the highest populated row index, 0 for an empty sheet.
func (s *SheetContent) MaxRow() int {
	max := 0
	for _, c := range s.Cells {
		if c.Row > max {
			max = c.Row
		}
	}
	return max
}

// MaxCol returns the highest populated column index, 0 for an empty sheet.
func (s *SheetContent) MaxCol() int {
	max := 0
	for _, c := range s.Cells {
		if c.Col > max {
			max = c.Col
		}
	}
	return max
}
