// Package exporter renders assembled report sheets into spreadsheet
// files.
//
// ExcelWriter is the production implementation of the report pipeline's
// SheetWriter contract. It turns styled cell assignments into an .xlsx
// workbook via excelize: number formats, fills, fonts, merged ranges,
// frozen header rows, auto-filters and column widths. Saving is atomic:
// the workbook is written to a temporary file next to the destination
// and renamed into place, so a failed save never leaves a half-written
// artifact under the claimed path.
//
// Example usage:
//
//	writer := exporter.NewExcelWriter(logger)
//	err := writer.Save(ctx, "reports/analysis.xlsx", sheets)
package exporter
