// Package report converts tabular procurement transaction data into the
// seven-sheet analysis workbook.
//
// The pipeline runs synchronously on one table at a time:
//
//	Column Mapper -> Validator -> Normalizer -> section fan-out -> SheetWriter
//
// The caller's table is copied up front and never mutated. Validation
// failures (empty input, missing canonical fields) abort the run before
// any sheet is built; value-level coercion failures never do. Each of
// the seven sections implements SectionGenerator and is registered in a
// fixed order, so sheet order is deterministic across runs.
//
// Example usage:
//
//	gen, err := report.New(logger, config.Default(), exporter.NewExcelWriter(logger))
//	if err != nil {
//		return err
//	}
//	path, err := gen.Generate(ctx, table, mapping, "")
package report
