package report

import (
	"strconv"
	"strings"
	"time"

	"procurex/pkg/contracts/domain"
)

// serialDateCutoff is the spreadsheet serial number of 1970-01-01 under
// the 1899-12-30 epoch. Numeric date values strictly greater than this
// are decoded as serial dates; smaller numbers fall through to generic
// parsing, which fails and yields the invalid-date sentinel.
const serialDateCutoff = 25569

// maxSerialDate is the serial of 9999-12-31, the last date a
// spreadsheet can represent. Serials beyond it fall through to generic
// parsing as well.
const maxSerialDate = 2958465

// serialEpoch is the 1899-12-30 day-zero of the serial date system,
// which bakes in the historical 1900 leap-year miscount.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are the accepted textual date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// normalizeAmounts coerces every amount cell to float64. Values that
// cannot be parsed become nil; coercion never fails the run.
func normalizeAmounts(t *domain.Table) {
	for i := 0; i < t.Len(); i++ {
		if v, ok := parseAmount(t.Value(i, FieldAmount)); ok {
			t.SetValue(i, FieldAmount, v)
		} else {
			t.SetValue(i, FieldAmount, nil)
		}
	}
}

// parseAmount converts a raw cell value to a float64.
func parseAmount(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint64:
		return float64(val), true
	case string:
		s := strings.TrimSpace(val)
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimPrefix(s, "$")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// normalizeDates coerces every date cell to a calendar date: time.Time
// on success, nil when no value was supplied, domain.InvalidDate when
// the value exists but cannot be parsed.
func normalizeDates(t *domain.Table) {
	for i := 0; i < t.Len(); i++ {
		t.SetValue(i, FieldDate, parseDate(t.Value(i, FieldDate)))
	}
}

// parseDate implements the coercion chain: nil/blank -> nil, plausible
// serial numbers -> serial decoding, everything else -> layout parsing,
// failure -> the invalid-date sentinel.
func parseDate(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		return val
	case float64:
		return parseNumericDate(val)
	case float32:
		return parseNumericDate(float64(val))
	case int:
		return parseNumericDate(float64(val))
	case int32:
		return parseNumericDate(float64(val))
	case int64:
		return parseNumericDate(float64(val))
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil
		}
		if parsed, ok := parseDateString(s); ok {
			return parsed
		}
		return domain.InvalidDate
	}
	return domain.InvalidDate
}

// parseNumericDate decodes a spreadsheet serial date at day
// granularity. Numbers outside the serial range fall through to
// generic text parsing, which cannot parse a bare number and therefore
// ends at the invalid-date sentinel. The cutoff and fall-through are
// deliberate and pinned by tests.
func parseNumericDate(serial float64) any {
	if serial > serialDateCutoff && serial <= maxSerialDate {
		return serialEpoch.AddDate(0, 0, int(serial))
	}
	if parsed, ok := parseDateString(strconv.FormatFloat(serial, 'f', -1, 64)); ok {
		return parsed
	}
	return domain.InvalidDate
}

// parseDateString tries the accepted layouts in order.
func parseDateString(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// dateValues returns all successfully parsed dates in row order.
func dateValues(t *domain.Table) []time.Time {
	dates := make([]time.Time, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if d, ok := t.Value(i, FieldDate).(time.Time); ok {
			dates = append(dates, d)
		}
	}
	return dates
}
