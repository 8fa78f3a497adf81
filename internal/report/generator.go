package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"procurex/internal/config"
	apperrors "procurex/internal/errors"
	"procurex/internal/files"
	"procurex/pkg/contracts/domain"
)

// Canonical field names the section generators rely on after mapping
// and validation.
const (
	FieldVendor        = "vendor"
	FieldAmount        = "amount"
	FieldDate          = "date"
	FieldCategory      = "category"
	FieldVendorCountry = "vendor_country"
)

// requiredFields lists the canonical fields every input must carry,
// in the order validation errors report them.
var requiredFields = []string{FieldVendor, FieldAmount, FieldDate}

// SheetWriter renders assembled sheet content into a spreadsheet file.
// The save call is the single finalization point: either the whole
// artifact lands at path or no file is left there.
type SheetWriter interface {
	Save(ctx context.Context, path string, sheets []domain.SheetContent) error
}

// SectionGenerator produces one sheet's worth of content from the
// normalized table. Implementations must not mutate the table.
type SectionGenerator interface {
	Name() string
	Generate(ctx context.Context, t *domain.Table) (*domain.SheetContent, error)
}

// Generator orchestrates report generation end to end.
type Generator struct {
	logger *slog.Logger
	cfg    config.ReportConfig
	writer SheetWriter
	files  *files.Manager
	now    func() time.Time
}

// New creates a report generator. A nil logger falls back to
// slog.Default; the writer is required.
func New(logger *slog.Logger, cfg config.ReportConfig, writer SheetWriter) (*Generator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if writer == nil {
		return nil, apperrors.NewConfigError("sheet writer is required", nil)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Generator{
		logger: logger,
		cfg:    cfg,
		writer: writer,
		files:  files.NewManager(logger),
		now:    time.Now,
	}, nil
}

// Generate maps, validates and normalizes the table, builds all seven
// sheets and hands them to the writer in one call. It returns the path
// of the finished artifact. When outputPath is empty a timestamped
// default name is derived.
func (g *Generator) Generate(ctx context.Context, table *domain.Table, mapping domain.FieldMapping, outputPath string) (string, error) {
	if table == nil {
		return "", apperrors.NewEmptyInputError()
	}

	t := applyMapping(table.Copy(), mapping)
	if err := validate(t); err != nil {
		return "", err
	}

	normalizeAmounts(t)
	normalizeDates(t)

	if outputPath == "" {
		outputPath = g.files.DefaultOutputPath(g.now())
	}

	sheets := make([]domain.SheetContent, 0, len(g.sections()))
	for _, section := range g.sections() {
		g.logger.InfoContext(ctx, "generating sheet",
			slog.String("sheet", section.Name()))

		sheet, err := section.Generate(ctx, t)
		if err != nil {
			return "", fmt.Errorf("generate sheet %q: %w", section.Name(), err)
		}
		sheets = append(sheets, *sheet)
	}

	if err := g.files.EnsureDir(outputPath); err != nil {
		return "", err
	}
	if err := g.writer.Save(ctx, outputPath, sheets); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}

	g.logger.InfoContext(ctx, "report saved",
		slog.String("path", outputPath),
		slog.Int("sheet_count", len(sheets)),
		slog.Int("row_count", t.Len()))

	return outputPath, nil
}

// sections returns the section generators in their fixed sheet order.
func (g *Generator) sections() []SectionGenerator {
	return []SectionGenerator{
		&summarySection{cfg: g.cfg},
		&vendorSection{cfg: g.cfg},
		&categorySection{cfg: g.cfg},
		&monthlySection{cfg: g.cfg},
		&insightsSection{cfg: g.cfg},
		&detailSection{cfg: g.cfg},
		&qualitySection{cfg: g.cfg},
	}
}

// applyMapping renames source columns to their canonical names.
// Mapping entries whose source column is absent are silently ignored.
func applyMapping(t *domain.Table, mapping domain.FieldMapping) *domain.Table {
	if len(mapping) == 0 {
		return t
	}

	// The mapping reads canonical -> source; the rename needs source -> canonical.
	inv := make(map[string]string, len(mapping))
	for canonical, source := range mapping {
		if t.HasColumn(source) {
			inv[source] = canonical
		}
	}
	return t.RenameColumns(inv)
}

// validate rejects empty input and input missing required canonical
// fields. It must run after mapping and before normalization.
func validate(t *domain.Table) error {
	if t.Len() == 0 {
		return apperrors.NewEmptyInputError()
	}

	var missing []string
	for _, field := range requiredFields {
		if !t.HasColumn(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewMissingFieldsError(missing)
	}
	return nil
}
