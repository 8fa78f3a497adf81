package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apperrors "procurex/internal/errors"
	"procurex/pkg/contracts/domain"
)

// ExcelWriter renders assembled sheet content into a styled .xlsx
// workbook. It satisfies the report pipeline's SheetWriter contract.
type ExcelWriter struct {
	logger *slog.Logger
}

// NewExcelWriter creates a new Excel writer instance
func NewExcelWriter(logger *slog.Logger) *ExcelWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelWriter{logger: logger}
}

// Save writes all sheets into a single workbook at path. The workbook
// is written to a temporary file first and renamed into place, so a
// failure never leaves a partial artifact under the final path.
func (w *ExcelWriter) Save(ctx context.Context, path string, sheets []domain.SheetContent) error {
	if len(sheets) == 0 {
		return apperrors.NewStorageError("no sheets to write", nil)
	}

	w.logger.InfoContext(ctx, "writing workbook",
		slog.String("path", path),
		slog.Int("sheet_count", len(sheets)))

	f := excelize.NewFile()
	defer f.Close()

	styles := newStyleCache(f)

	for i, sheet := range sheets {
		if i == 0 {
			// Reuse the default sheet so the workbook never carries
			// an empty "Sheet1".
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return apperrors.NewStorageError("failed to create sheet", err).WithContext("sheet", sheet.Name)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return apperrors.NewStorageError("failed to create sheet", err).WithContext("sheet", sheet.Name)
			}
		}
		if err := w.renderSheet(f, styles, &sheet); err != nil {
			return apperrors.NewStorageError("failed to render sheet", err).WithContext("sheet", sheet.Name)
		}
	}

	idx, err := f.GetSheetIndex(sheets[0].Name)
	if err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	return w.saveAtomic(ctx, f, path)
}

// renderSheet writes values, styles, merges and sheet chrome.
func (w *ExcelWriter) renderSheet(f *excelize.File, styles *styleCache, sheet *domain.SheetContent) error {
	for _, c := range sheet.Cells {
		cellName, err := excelize.CoordinatesToCellName(c.Col, c.Row)
		if err != nil {
			return fmt.Errorf("cell coordinates (%d,%d): %w", c.Col, c.Row, err)
		}

		if c.Value != nil {
			if err := f.SetCellValue(sheet.Name, cellName, c.Value); err != nil {
				return fmt.Errorf("set cell %s: %w", cellName, err)
			}
		}

		styleID, err := styles.idFor(c, sheet.Borders)
		if err != nil {
			return fmt.Errorf("style for cell %s: %w", cellName, err)
		}
		if styleID != 0 {
			if err := f.SetCellStyle(sheet.Name, cellName, cellName, styleID); err != nil {
				return fmt.Errorf("style cell %s: %w", cellName, err)
			}
		}
	}

	for _, m := range sheet.Merges {
		topLeft, err := excelize.CoordinatesToCellName(m.FirstCol, m.FirstRow)
		if err != nil {
			return err
		}
		bottomRight, err := excelize.CoordinatesToCellName(m.LastCol, m.LastRow)
		if err != nil {
			return err
		}
		if err := f.MergeCell(sheet.Name, topLeft, bottomRight); err != nil {
			return fmt.Errorf("merge %s:%s: %w", topLeft, bottomRight, err)
		}
	}

	if err := w.applyColumnWidths(f, sheet); err != nil {
		return err
	}

	if sheet.FreezeHeaderRow && sheet.MaxRow() > 1 {
		err := f.SetPanes(sheet.Name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		})
		if err != nil {
			return fmt.Errorf("freeze panes: %w", err)
		}
	}

	if sheet.AutoFilter && sheet.MaxRow() > 1 && sheet.MaxCol() > 0 {
		last, err := excelize.CoordinatesToCellName(sheet.MaxCol(), sheet.MaxRow())
		if err != nil {
			return err
		}
		if err := f.AutoFilter(sheet.Name, "A1:"+last, nil); err != nil {
			return fmt.Errorf("auto filter: %w", err)
		}
	}

	return nil
}

// applyColumnWidths sets explicit widths and, when AutoWidth is on,
// sizes the remaining columns to their longest rendered content plus
// padding, capped at 50.
func (w *ExcelWriter) applyColumnWidths(f *excelize.File, sheet *domain.SheetContent) error {
	widths := make(map[int]float64)

	if sheet.AutoWidth {
		for _, c := range sheet.Cells {
			if c.Value == nil {
				continue
			}
			length := float64(len(fmt.Sprint(c.Value)))
			if length > widths[c.Col] {
				widths[c.Col] = length
			}
		}
		for col, length := range widths {
			width := length + 2
			if width > 50 {
				width = 50
			}
			widths[col] = width
		}
	}

	// Explicit widths win over computed ones.
	for col, width := range sheet.ColumnWidths {
		widths[col] = width
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return fmt.Errorf("column %d: %w", col, err)
		}
		if err := f.SetColWidth(sheet.Name, name, name, width); err != nil {
			return fmt.Errorf("set width of column %s: %w", name, err)
		}
	}
	return nil
}

// saveAtomic writes the workbook to a temp file in the destination
// directory and renames it into place.
func (w *ExcelWriter) saveAtomic(ctx context.Context, f *excelize.File, path string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".procurement-report-*.xlsx")
	if err != nil {
		return apperrors.NewStorageError("failed to create temporary workbook file", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := f.SaveAs(tmpPath); err != nil {
		os.Remove(tmpPath)
		return apperrors.NewStorageError("failed to write workbook", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return apperrors.NewStorageError("failed to finalize workbook", err)
	}

	w.logger.InfoContext(ctx, "workbook saved", slog.String("path", path))
	return nil
}
