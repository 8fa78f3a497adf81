package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"procurex/internal/config"
	apperrors "procurex/internal/errors"
	"procurex/internal/shared/testutil"
	"procurex/pkg/contracts/domain"
)

// mockSheetWriter records what the generator hands to Save.
type mockSheetWriter struct {
	mock.Mock
	saved []domain.SheetContent
	path  string
}

func (m *mockSheetWriter) Save(ctx context.Context, path string, sheets []domain.SheetContent) error {
	m.saved = sheets
	m.path = path
	args := m.Called(ctx, path, sheets)
	return args.Error(0)
}

func newTestGenerator(t *testing.T) (*Generator, *mockSheetWriter) {
	t.Helper()
	writer := &mockSheetWriter{}
	logger, _ := testutil.NewCaptureLogger()
	gen, err := New(logger, config.Default(), writer)
	require.NoError(t, err)
	return gen, writer
}

func TestNew_RequiresWriter(t *testing.T) {
	_, err := New(nil, config.Default(), nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeConfig, appErr.Type)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TopVendorCount = 0

	_, err := New(nil, cfg, &mockSheetWriter{})
	require.Error(t, err)
}

func TestGenerate_NilTable(t *testing.T) {
	gen, writer := newTestGenerator(t)

	_, err := gen.Generate(context.Background(), nil, nil, "out.xlsx")

	var emptyErr *apperrors.EmptyInputError
	require.ErrorAs(t, err, &emptyErr)
	writer.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerate_EmptyTable(t *testing.T) {
	gen, writer := newTestGenerator(t)
	table := domain.NewTable(FieldVendor, FieldAmount, FieldDate)

	_, err := gen.Generate(context.Background(), table, nil, "out.xlsx")

	var emptyErr *apperrors.EmptyInputError
	require.ErrorAs(t, err, &emptyErr)
	writer.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerate_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		missing []string
	}{
		{"all fields missing", []string{"other"}, []string{"vendor", "amount", "date"}},
		{"vendor and amount missing", []string{"date"}, []string{"vendor", "amount"}},
		{"amount and date missing", []string{"vendor"}, []string{"amount", "date"}},
		{"date missing", []string{"vendor", "amount"}, []string{"date"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, _ := newTestGenerator(t)

			table := domain.NewTable(tt.columns...)
			row := domain.Row{}
			for _, col := range tt.columns {
				row[col] = "x"
			}
			table.AppendRow(row)

			_, err := gen.Generate(context.Background(), table, nil, "out.xlsx")

			var missingErr *apperrors.MissingFieldsError
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tt.missing, missingErr.Fields)
		})
	}
}

func TestGenerate_SevenSheetsInFixedOrder(t *testing.T) {
	gen, writer := newTestGenerator(t)
	writer.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	path, err := gen.Generate(context.Background(), sampleTable(), nil, "out.xlsx")
	require.NoError(t, err)
	assert.Equal(t, "out.xlsx", path)

	require.Len(t, writer.saved, 7)
	names := make([]string, len(writer.saved))
	for i, s := range writer.saved {
		names[i] = s.Name
	}
	assert.Equal(t, []string{
		"Executive Summary",
		"Spend by Vendor",
		"Spend by Category",
		"Monthly Trends",
		"Top Insights",
		"Detailed Data",
		"Data Quality Report",
	}, names)
}

func TestGenerate_AppliesColumnMapping(t *testing.T) {
	gen, writer := newTestGenerator(t)
	writer.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	table := domain.NewTable("Supplier", "Cost", "Transaction Date")
	table.AppendRow(domain.Row{"Supplier": "Vendor A", "Cost": "100", "Transaction Date": "2023-01-15"})
	table.AppendRow(domain.Row{"Supplier": "Vendor B", "Cost": "200", "Transaction Date": "2023-02-20"})
	table.AppendRow(domain.Row{"Supplier": "Vendor A", "Cost": "150", "Transaction Date": "2023-03-10"})

	mapping := domain.FieldMapping{
		"vendor": "Supplier",
		"amount": "Cost",
		"date":   "Transaction Date",
	}

	_, err := gen.Generate(context.Background(), table, mapping, "out.xlsx")
	require.NoError(t, err)

	summary := writer.saved[0]
	assert.Equal(t, "$450", cellValue(t, &summary, 6, 2))
	assert.Equal(t, "3", cellValue(t, &summary, 7, 2))
	assert.Equal(t, "2", cellValue(t, &summary, 8, 2))
	assert.Equal(t, "$150.00", cellValue(t, &summary, 9, 2))
}

func TestGenerate_MappingWithAbsentSourceIgnored(t *testing.T) {
	gen, writer := newTestGenerator(t)
	writer.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	mapping := domain.FieldMapping{"vendor": "No Such Column"}

	_, err := gen.Generate(context.Background(), sampleTable(), mapping, "out.xlsx")
	require.NoError(t, err)
}

func TestGenerate_DoesNotMutateCallerTable(t *testing.T) {
	gen, writer := newTestGenerator(t)
	writer.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	table := domain.NewTable(FieldVendor, FieldAmount, FieldDate)
	table.AppendRow(domain.Row{FieldVendor: "A", FieldAmount: "100", FieldDate: "2023-01-15"})

	_, err := gen.Generate(context.Background(), table, nil, "out.xlsx")
	require.NoError(t, err)

	// The caller still holds the raw strings; coercion ran on a copy.
	assert.Equal(t, "100", table.Value(0, FieldAmount))
	assert.Equal(t, "2023-01-15", table.Value(0, FieldDate))
}

func TestGenerate_DefaultOutputPath(t *testing.T) {
	gen, writer := newTestGenerator(t)
	writer.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	gen.now = func() time.Time {
		return time.Date(2023, 6, 15, 14, 30, 45, 0, time.UTC)
	}

	path, err := gen.Generate(context.Background(), sampleTable(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, "procurement_analysis_2023-06-15_143045.xlsx", path)
	assert.Equal(t, path, writer.path)
}

func TestGenerate_WriterErrorPropagates(t *testing.T) {
	gen, writer := newTestGenerator(t)
	writer.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := gen.Generate(context.Background(), sampleTable(), nil, "out.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestGenerate_DeterministicSheets(t *testing.T) {
	gen, writer := newTestGenerator(t)
	writer.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := gen.Generate(context.Background(), sampleTable(), nil, "out.xlsx")
	require.NoError(t, err)
	first := writer.saved

	_, err = gen.Generate(context.Background(), sampleTable(), nil, "out.xlsx")
	require.NoError(t, err)

	assert.Equal(t, first, writer.saved)
}

func TestGenerate_LogsPerSheet(t *testing.T) {
	writer := &mockSheetWriter{}
	writer.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	logger, handler := testutil.NewCaptureLogger()

	gen, err := New(logger, config.Default(), writer)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), sampleTable(), nil, "out.xlsx")
	require.NoError(t, err)

	assert.True(t, handler.HasMessage("generating sheet"))
	assert.True(t, handler.HasMessage("report saved"))
}
