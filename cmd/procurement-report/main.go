package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v2"

	"procurex/internal/config"
	"procurex/internal/exporter"
	"procurex/internal/infrastructure"
	"procurex/internal/report"
	"procurex/pkg/contracts"
	"procurex/pkg/contracts/domain"
)

func main() {
	input := flag.String("input", "", "path to the transactions CSV file (required)")
	mappingPath := flag.String("mapping", "", "optional YAML file mapping canonical field names to source column names")
	output := flag.String("output", "", "output .xlsx path (defaults to a timestamped name in the working directory)")
	logLevel := flag.String("log-level", "info", "log level: debug | info | warn | error")
	logFormat := flag.String("log-format", "text", "log format: text | json")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: procurement-report -input transactions.csv [-mapping mapping.yaml] [-output report.xlsx]")
		os.Exit(2)
	}

	logger, closer, err := infrastructure.NewLogger(config.LoggingConfig{
		Level:  *logLevel,
		Format: *logFormat,
		Output: "stdout",
	})
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer closer.Close()

	ctx := infrastructure.ContextWithTraceID(context.Background())

	logger.InfoContext(ctx, "starting report generation",
		slog.String("version", contracts.Version),
		slog.String("input", *input),
		slog.String("mapping", *mappingPath))

	table, err := loadTable(*input)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read input file",
			slog.String("path", *input),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	mapping, err := loadMapping(*mappingPath)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read mapping file",
			slog.String("path", *mappingPath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	gen, err := report.New(logger, config.Default(), exporter.NewExcelWriter(logger))
	if err != nil {
		logger.ErrorContext(ctx, "failed to create generator", slog.String("error", err.Error()))
		os.Exit(1)
	}

	path, err := gen.Generate(ctx, table, mapping, *output)
	if err != nil {
		logger.ErrorContext(ctx, "report generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("Report saved to %s\n", path)
}

// loadTable reads a CSV file into a table: first record as column
// names, every following record as one row of string cells. Type
// coercion is the pipeline's job, not the loader's.
func loadTable(path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return domain.NewTable(), nil
	}

	table := domain.NewTable(records[0]...)
	for _, record := range records[1:] {
		row := domain.Row{}
		for i, col := range records[0] {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		table.AppendRow(row)
	}
	return table, nil
}

// loadMapping parses a YAML file of canonical-to-source column pairs,
// e.g. "vendor: Supplier". An empty path means no mapping.
func loadMapping(path string) (domain.FieldMapping, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var mapping domain.FieldMapping
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}
	return mapping, nil
}
