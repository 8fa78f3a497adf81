package exporter

import (
	"github.com/xuri/excelize/v2"

	"procurex/pkg/contracts/domain"
)

// styleSpec is the comparable key for one combination of cell styling.
// Workbooks allow a limited number of style records, so identical
// combinations must share one excelize style ID.
type styleSpec struct {
	numFmt    string
	fill      string
	bold      bool
	italic    bool
	underline bool
	size      float64
	color     string
	alignH    string
	alignV    string
	border    bool
}

type styleCache struct {
	file *excelize.File
	ids  map[styleSpec]int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{file: f, ids: make(map[styleSpec]int)}
}

// idFor returns the excelize style ID for a cell, creating it on first
// use. Unstyled cells map to 0, meaning no style is applied.
func (s *styleCache) idFor(c domain.Cell, sheetBorders bool) (int, error) {
	spec := styleSpec{
		numFmt:    c.NumberFormat,
		fill:      c.FillColor,
		bold:      c.FontBold,
		italic:    c.FontItalic,
		underline: c.FontUnderline,
		size:      c.FontSize,
		color:     c.FontColor,
		alignH:    c.AlignH,
		alignV:    c.AlignV,
		border:    sheetBorders && c.Value != nil,
	}
	if spec == (styleSpec{}) {
		return 0, nil
	}
	if id, ok := s.ids[spec]; ok {
		return id, nil
	}

	id, err := s.file.NewStyle(buildStyle(spec))
	if err != nil {
		return 0, err
	}
	s.ids[spec] = id
	return id, nil
}

func buildStyle(spec styleSpec) *excelize.Style {
	style := &excelize.Style{}

	if spec.numFmt != "" {
		numFmt := spec.numFmt
		style.CustomNumFmt = &numFmt
	}
	if spec.fill != "" {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{spec.fill}}
	}
	if spec.bold || spec.italic || spec.underline || spec.size > 0 || spec.color != "" {
		style.Font = &excelize.Font{
			Bold:   spec.bold,
			Italic: spec.italic,
			Size:   spec.size,
			Color:  spec.color,
		}
		if spec.underline {
			style.Font.Underline = "single"
		}
	}
	if spec.alignH != "" || spec.alignV != "" {
		style.Alignment = &excelize.Alignment{
			Horizontal: spec.alignH,
			Vertical:   spec.alignV,
		}
	}
	if spec.border {
		style.Border = []excelize.Border{
			{Type: "left", Style: 1, Color: "000000"},
			{Type: "right", Style: 1, Color: "000000"},
			{Type: "top", Style: 1, Color: "000000"},
			{Type: "bottom", Style: 1, Color: "000000"},
		}
	}
	return style
}
