package config

import (
	"github.com/go-playground/validator/v10"

	apperrors "procurex/internal/errors"
)

// ReportConfig holds the tunable thresholds of the report pipeline.
// All values have working defaults; construct with Default() and
// override fields as needed.
type ReportConfig struct {
	// TopVendorCount is the number of ranked vendors shown in the
	// executive summary.
	TopVendorCount int `validate:"gt=0"`

	// TailSpendThreshold is the per-vendor total (in currency units)
	// below which a vendor counts as tail spend.
	TailSpendThreshold float64 `validate:"gte=0"`

	// SavingsRateLow and SavingsRateHigh bound the estimated savings
	// from consolidating tail spend, as fractions of the tail total.
	SavingsRateLow  float64 `validate:"gte=0,lte=1"`
	SavingsRateHigh float64 `validate:"gte=0,lte=1,gtefield=SavingsRateLow"`

	// ConcentrationTopN is how many top vendors the concentration
	// insight considers.
	ConcentrationTopN int `validate:"gt=0"`

	// ConcentrationHighPct and ConcentrationMediumPct classify the
	// concentration risk: above High is "High", above Medium is
	// "Medium", anything else "Low".
	ConcentrationHighPct   float64 `validate:"gt=0,lte=100,gtfield=ConcentrationMediumPct"`
	ConcentrationMediumPct float64 `validate:"gt=0,lte=100"`

	// QualityOKPct and QualityWarnPct classify column completeness:
	// at or above OK is "OK", at or above Warn is "WARNING", anything
	// else "CRITICAL".
	QualityOKPct   float64 `validate:"gt=0,lte=100,gtfield=QualityWarnPct"`
	QualityWarnPct float64 `validate:"gt=0,lte=100"`

	// DateFormat renders calendar dates, MonthFormat renders the
	// sortable month buckets of the trends sheet.
	DateFormat  string `validate:"required"`
	MonthFormat string `validate:"required"`
}

// Default returns the standard report configuration. The thresholds
// match the published report semantics: $5,000 tail spend, 15-20%
// consolidation savings, top-10 concentration with 80/50 risk bands,
// and 90/70 completeness bands.
func Default() ReportConfig {
	return ReportConfig{
		TopVendorCount:         5,
		TailSpendThreshold:     5000,
		SavingsRateLow:         0.15,
		SavingsRateHigh:        0.20,
		ConcentrationTopN:      10,
		ConcentrationHighPct:   80,
		ConcentrationMediumPct: 50,
		QualityOKPct:           90,
		QualityWarnPct:         70,
		DateFormat:             "2006-01-02",
		MonthFormat:            "2006-01",
	}
}

// Validate checks the configuration invariants.
func (c ReportConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return apperrors.NewConfigError("invalid report configuration", err)
	}
	return nil
}
