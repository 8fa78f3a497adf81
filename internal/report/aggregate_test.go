package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procurex/pkg/contracts/domain"
)

func TestGrandTotal(t *testing.T) {
	table := normalized(sampleTable())

	total, count := grandTotal(table)
	assert.InDelta(t, 450.0, total, 0.0001)
	assert.Equal(t, 3, count)
}

func TestGrandTotal_SkipsUnparsedAmounts(t *testing.T) {
	table := domain.NewTable(FieldVendor, FieldAmount, FieldDate)
	table.AppendRow(domain.Row{FieldVendor: "A", FieldAmount: "100"})
	table.AppendRow(domain.Row{FieldVendor: "B", FieldAmount: "oops"})
	normalized(table)

	total, count := grandTotal(table)
	assert.InDelta(t, 100.0, total, 0.0001)
	assert.Equal(t, 1, count)
}

func TestAggregateVendors(t *testing.T) {
	stats := aggregateVendors(normalized(sampleTable()))

	require.Len(t, stats, 2)
	assert.Equal(t, "Vendor A", stats[0].Name)
	assert.InDelta(t, 250.0, stats[0].Total, 0.0001)
	assert.Equal(t, 2, stats[0].Count)
	assert.InDelta(t, 125.0, stats[0].Mean(), 0.0001)

	assert.Equal(t, "Vendor B", stats[1].Name)
	assert.InDelta(t, 200.0, stats[1].Total, 0.0001)
	assert.Equal(t, 1, stats[1].Count)
}

func TestAggregateVendors_NullVendorExcluded(t *testing.T) {
	table := domain.NewTable(FieldVendor, FieldAmount, FieldDate)
	table.AppendRow(domain.Row{FieldVendor: "A", FieldAmount: 10.0})
	table.AppendRow(domain.Row{FieldVendor: nil, FieldAmount: 99.0})
	table.AppendRow(domain.Row{FieldVendor: "  ", FieldAmount: 99.0})
	normalized(table)

	stats := aggregateVendors(table)
	require.Len(t, stats, 1)
	assert.Equal(t, "A", stats[0].Name)
}

func TestAggregateVendors_CountsOnlyParsedAmounts(t *testing.T) {
	table := domain.NewTable(FieldVendor, FieldAmount, FieldDate)
	table.AppendRow(domain.Row{FieldVendor: "A", FieldAmount: 10.0})
	table.AppendRow(domain.Row{FieldVendor: "A", FieldAmount: "bad"})
	normalized(table)

	stats := aggregateVendors(table)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].Count)
	assert.InDelta(t, 10.0, stats[0].Total, 0.0001)
}

func TestAggregateVendors_FirstSeenCountryWins(t *testing.T) {
	table := domain.NewTable(FieldVendor, FieldAmount, FieldDate, FieldVendorCountry)
	table.AppendRow(domain.Row{FieldVendor: "A", FieldAmount: 10.0, FieldVendorCountry: "DE"})
	table.AppendRow(domain.Row{FieldVendor: "A", FieldAmount: 20.0, FieldVendorCountry: "FR"})
	normalized(table)

	stats := aggregateVendors(table)
	require.Len(t, stats, 1)
	assert.Equal(t, "DE", stats[0].Country)
}

func TestRankVendorsByTotal(t *testing.T) {
	stats := []vendorStat{
		{Name: "Small", Total: 50},
		{Name: "Big", Total: 900},
		{Name: "Mid", Total: 300},
	}

	ranked := rankVendorsByTotal(stats)

	assert.Equal(t, "Big", ranked[0].Name)
	assert.Equal(t, "Mid", ranked[1].Name)
	assert.Equal(t, "Small", ranked[2].Name)
	// The input slice keeps its order.
	assert.Equal(t, "Small", stats[0].Name)
}

func TestRankVendorsByTotal_TiesKeepFirstSeenOrder(t *testing.T) {
	stats := []vendorStat{
		{Name: "First", Total: 100},
		{Name: "Second", Total: 100},
		{Name: "Third", Total: 100},
	}

	ranked := rankVendorsByTotal(stats)

	assert.Equal(t, "First", ranked[0].Name)
	assert.Equal(t, "Second", ranked[1].Name)
	assert.Equal(t, "Third", ranked[2].Name)
}

func TestAggregateCategories(t *testing.T) {
	table := domain.NewTable(FieldVendor, FieldAmount, FieldDate, FieldCategory)
	table.AppendRow(domain.Row{FieldVendor: "A", FieldAmount: 100.0, FieldCategory: "IT"})
	table.AppendRow(domain.Row{FieldVendor: "B", FieldAmount: 50.0, FieldCategory: "IT"})
	table.AppendRow(domain.Row{FieldVendor: "A", FieldAmount: 25.0, FieldCategory: "Office"})
	table.AppendRow(domain.Row{FieldVendor: "C", FieldAmount: 10.0, FieldCategory: nil})
	normalized(table)

	stats := aggregateCategories(table)
	require.Len(t, stats, 2)

	assert.Equal(t, "IT", stats[0].Name)
	assert.InDelta(t, 150.0, stats[0].Total, 0.0001)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 2, stats[0].Vendors)

	assert.Equal(t, "Office", stats[1].Name)
	assert.Equal(t, 1, stats[1].Vendors)
}

func TestAggregateCategories_NilWithoutColumn(t *testing.T) {
	assert.Nil(t, aggregateCategories(normalized(sampleTable())))
}

func TestAggregateMonths(t *testing.T) {
	table := domain.NewTable(FieldVendor, FieldAmount, FieldDate)
	table.AppendRow(domain.Row{FieldVendor: "A", FieldAmount: 100.0, FieldDate: "2023-02-15"})
	table.AppendRow(domain.Row{FieldVendor: "B", FieldAmount: 200.0, FieldDate: "2023-01-20"})
	table.AppendRow(domain.Row{FieldVendor: "A", FieldAmount: 50.0, FieldDate: "2023-01-05"})
	table.AppendRow(domain.Row{FieldVendor: "C", FieldAmount: 99.0, FieldDate: "garbage"})
	table.AppendRow(domain.Row{FieldVendor: "C", FieldAmount: 99.0, FieldDate: nil})
	normalized(table)

	stats := aggregateMonths(table, "2006-01")
	require.Len(t, stats, 2)

	assert.Equal(t, "2023-01", stats[0].Key)
	assert.InDelta(t, 250.0, stats[0].Total, 0.0001)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 2, stats[0].Vendors)
	assert.InDelta(t, 125.0, stats[0].Mean(), 0.0001)

	assert.Equal(t, "2023-02", stats[1].Key)
	assert.InDelta(t, 100.0, stats[1].Total, 0.0001)
}
