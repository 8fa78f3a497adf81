package report

import (
	"fmt"
	"sort"
	"time"

	"procurex/pkg/contracts/domain"
)

// vendorStat is the per-vendor aggregation record. Count counts
// transactions with a parsed amount, matching how the totals are built.
type vendorStat struct {
	Name    string
	Country string
	Total   float64
	Count   int
}

// Mean returns the average transaction amount, 0 when no amounts parsed.
func (v vendorStat) Mean() float64 {
	if v.Count == 0 {
		return 0
	}
	return v.Total / float64(v.Count)
}

// categoryStat is the per-category aggregation record.
type categoryStat struct {
	Name    string
	Total   float64
	Count   int
	Vendors int
}

// monthStat is the per-calendar-month aggregation record. Key is the
// sortable month label, e.g. "2023-01".
type monthStat struct {
	Key     string
	Total   float64
	Count   int
	Vendors int
}

// Mean returns the average transaction amount for the month.
func (m monthStat) Mean() float64 {
	if m.Count == 0 {
		return 0
	}
	return m.Total / float64(m.Count)
}

// grandTotal sums all parsed amounts and counts them. Rows whose amount
// failed coercion contribute to neither.
func grandTotal(t *domain.Table) (float64, int) {
	var total float64
	var count int
	for i := 0; i < t.Len(); i++ {
		if amount, ok := t.Value(i, FieldAmount).(float64); ok {
			total += amount
			count++
		}
	}
	return total, count
}

// aggregateVendors groups spend by vendor in first-seen row order.
// Rows with a null vendor are excluded from grouping. The order is the
// tie-break for equal totals after ranking.
func aggregateVendors(t *domain.Table) []vendorStat {
	index := make(map[string]int)
	stats := make([]vendorStat, 0)

	hasCountry := t.HasColumn(FieldVendorCountry)

	for i := 0; i < t.Len(); i++ {
		raw := t.Value(i, FieldVendor)
		if domain.IsNull(raw) {
			continue
		}
		name := fmt.Sprint(raw)

		pos, seen := index[name]
		if !seen {
			pos = len(stats)
			index[name] = pos
			stats = append(stats, vendorStat{Name: name})
		}

		if amount, ok := t.Value(i, FieldAmount).(float64); ok {
			stats[pos].Total += amount
			stats[pos].Count++
		}

		// First-seen country wins.
		if hasCountry && stats[pos].Country == "" {
			if c := t.Value(i, FieldVendorCountry); !domain.IsNull(c) {
				stats[pos].Country = fmt.Sprint(c)
			}
		}
	}
	return stats
}

// rankVendorsByTotal sorts descending by total spend. The sort is
// stable, so equal totals keep their first-seen relative order and rank
// assignment stays deterministic within a run.
func rankVendorsByTotal(stats []vendorStat) []vendorStat {
	ranked := make([]vendorStat, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	return ranked
}

// aggregateCategories groups spend by category in first-seen order,
// counting distinct vendors per category. Returns nil when the table
// has no category column.
func aggregateCategories(t *domain.Table) []categoryStat {
	if !t.HasColumn(FieldCategory) {
		return nil
	}

	index := make(map[string]int)
	stats := make([]categoryStat, 0)
	vendorSets := make([]map[string]struct{}, 0)

	for i := 0; i < t.Len(); i++ {
		raw := t.Value(i, FieldCategory)
		if domain.IsNull(raw) {
			continue
		}
		name := fmt.Sprint(raw)

		pos, seen := index[name]
		if !seen {
			pos = len(stats)
			index[name] = pos
			stats = append(stats, categoryStat{Name: name})
			vendorSets = append(vendorSets, make(map[string]struct{}))
		}

		if amount, ok := t.Value(i, FieldAmount).(float64); ok {
			stats[pos].Total += amount
			stats[pos].Count++
		}
		if v := t.Value(i, FieldVendor); !domain.IsNull(v) {
			vendorSets[pos][fmt.Sprint(v)] = struct{}{}
		}
	}

	for i := range stats {
		stats[i].Vendors = len(vendorSets[i])
	}
	return stats
}

// rankCategoriesByTotal sorts descending by total spend, stable.
func rankCategoriesByTotal(stats []categoryStat) []categoryStat {
	ranked := make([]categoryStat, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	return ranked
}

// aggregateMonths buckets rows by calendar month of their parsed date,
// sorted ascending by month label. Rows without a valid date are
// excluded from the bucketing.
func aggregateMonths(t *domain.Table, monthFormat string) []monthStat {
	index := make(map[string]int)
	stats := make([]monthStat, 0)
	vendorSets := make([]map[string]struct{}, 0)

	for i := 0; i < t.Len(); i++ {
		date, ok := t.Value(i, FieldDate).(time.Time)
		if !ok {
			continue
		}
		key := date.Format(monthFormat)

		pos, seen := index[key]
		if !seen {
			pos = len(stats)
			index[key] = pos
			stats = append(stats, monthStat{Key: key})
			vendorSets = append(vendorSets, make(map[string]struct{}))
		}

		if amount, ok := t.Value(i, FieldAmount).(float64); ok {
			stats[pos].Total += amount
			stats[pos].Count++
		}
		if v := t.Value(i, FieldVendor); !domain.IsNull(v) {
			vendorSets[pos][fmt.Sprint(v)] = struct{}{}
		}
	}

	for i := range stats {
		stats[i].Vendors = len(vendorSets[i])
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Key < stats[j].Key
	})
	return stats
}
