package report

import (
	"context"
	"fmt"

	"procurex/internal/config"
	"procurex/pkg/contracts/domain"
)

// Insight is one narrative finding derived from aggregated vendor
// spend: a title, the finding itself, a supporting figure, an estimated
// savings (or risk) line and a recommended action.
type Insight struct {
	Title   string
	Finding string
	Data    string
	Savings string
	Action  string
}

// BuildInsights derives the threshold-based findings from per-vendor
// spend. The consolidation insight is emitted only when at least one
// tail vendor exists and always precedes the concentration insight,
// which is always emitted.
func BuildInsights(stats []vendorStat, total float64, cfg config.ReportConfig) []Insight {
	insights := make([]Insight, 0, 2)

	if tail, ok := tailSpendInsight(stats, cfg); ok {
		insights = append(insights, tail)
	}
	insights = append(insights, concentrationInsight(stats, total, cfg))

	return insights
}

// tailSpendInsight flags vendors whose total spend sits below the
// consolidation threshold.
func tailSpendInsight(stats []vendorStat, cfg config.ReportConfig) (Insight, bool) {
	var count int
	var tailSpend float64
	for _, v := range stats {
		if v.Total < cfg.TailSpendThreshold {
			count++
			tailSpend += v.Total
		}
	}
	if count == 0 {
		return Insight{}, false
	}

	return Insight{
		Title:   "SUPPLIER CONSOLIDATION",
		Finding: fmt.Sprintf("%d vendors have spend < %s", count, formatMoney(cfg.TailSpendThreshold, 0)),
		Data:    fmt.Sprintf("Total Tail Spend: %s", formatMoney(tailSpend, 0)),
		Savings: fmt.Sprintf("Potential Savings: %s - %s (%.0f-%.0f%%)",
			formatMoney(tailSpend*cfg.SavingsRateLow, 0),
			formatMoney(tailSpend*cfg.SavingsRateHigh, 0),
			cfg.SavingsRateLow*100, cfg.SavingsRateHigh*100),
		Action: "Consolidate to preferred vendors",
	}, true
}

// concentrationInsight measures how much of the grand total the top N
// vendors account for and classifies the risk.
func concentrationInsight(stats []vendorStat, total float64, cfg config.ReportConfig) Insight {
	ranked := rankVendorsByTotal(stats)
	if len(ranked) > cfg.ConcentrationTopN {
		ranked = ranked[:cfg.ConcentrationTopN]
	}

	var topSpend float64
	for _, v := range ranked {
		topSpend += v.Total
	}

	pct := 0.0
	if total != 0 {
		pct = topSpend / total * 100
	}

	risk := "Low"
	switch {
	case pct > cfg.ConcentrationHighPct:
		risk = "High"
	case pct > cfg.ConcentrationMediumPct:
		risk = "Medium"
	}

	return Insight{
		Title:   "VENDOR CONCENTRATION",
		Finding: fmt.Sprintf("Top %d vendors account for %.1f%% of total spend", cfg.ConcentrationTopN, pct),
		Data:    fmt.Sprintf("Top %d Spend: %s", cfg.ConcentrationTopN, formatMoney(topSpend, 0)),
		Savings: "Risk Level: " + risk,
		Action:  "Diversify supply base if concentration is high",
	}
}

// insightsSection renders the Top Insights sheet as narrative blocks.
type insightsSection struct {
	cfg config.ReportConfig
}

func (s *insightsSection) Name() string { return "Top Insights" }

func (s *insightsSection) Generate(ctx context.Context, t *domain.Table) (*domain.SheetContent, error) {
	sheet := &domain.SheetContent{
		Name:         s.Name(),
		ColumnWidths: map[int]float64{1: 80},
	}

	sheet.Cells = append(sheet.Cells, domain.Cell{
		Row: 1, Col: 1, Value: "TOP INSIGHTS",
		FontSize: 14, FontBold: true, FontColor: domain.FillHeader,
	})

	total, _ := grandTotal(t)
	insights := BuildInsights(aggregateVendors(t), total, s.cfg)

	row := 3
	for i, insight := range insights {
		sheet.Cells = append(sheet.Cells, domain.Cell{
			Row: row, Col: 1,
			Value:    fmt.Sprintf("INSIGHT #%d: %s", i+1, insight.Title),
			FontBold: true, FontSize: 11,
		})
		row++
		addCell(sheet, row, 1, "Finding: "+insight.Finding)
		row++
		addCell(sheet, row, 1, insight.Data)
		row++
		addCell(sheet, row, 1, insight.Savings)
		row++
		addCell(sheet, row, 1, "Action: "+insight.Action)
		row += 2 // spacer between blocks
	}

	return sheet, nil
}
