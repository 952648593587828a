package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revenue-check/models"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestOverviewCountsRowsPerRep(t *testing.T) {
	ov := NewAggregator(newTestLogger()).Overview(completeTable())

	assert.Equal(t, 11, ov.TotalRows)
	assert.Equal(t, "fixture.csv", ov.Source)
	assert.Equal(t, []string{"BenW", "Zalak", "DerekW", "BrandonG", "Jared"}, ov.Salespersons)

	want := []models.RepCount{
		{Salesperson: "BenW", Rows: 3},
		{Salesperson: "Zalak", Rows: 3},
		{Salesperson: "Jared", Rows: 3},
		{Salesperson: "DerekW", Rows: 1},
		{Salesperson: "BrandonG", Rows: 1},
	}
	if diff := cmp.Diff(want, ov.RowsByRep); diff != "" {
		t.Errorf("RowsByRep mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizePeriodTotals(t *testing.T) {
	s := NewAggregator(newTestLogger()).Summarize(completeTable(), december)

	assert.Equal(t, december, s.Period)
	assert.Equal(t, 9, s.Rows)
	assert.Equal(t, 8, s.DistinctOrders)
	assert.Equal(t, "1432298.73", s.Total.StringFixed(2))
}

func TestSummarizeByRepSortedDescending(t *testing.T) {
	s := NewAggregator(newTestLogger()).Summarize(completeTable(), december)

	want := []models.RepSubtotal{
		{Salesperson: "Zalak", Total: decimal.RequireFromString("393355.20"), Rows: 2},
		{Salesperson: "DerekW", Total: decimal.RequireFromString("318966.95"), Rows: 1},
		{Salesperson: "BenW", Total: decimal.RequireFromString("291879.50"), Rows: 3},
		{Salesperson: "BrandonG", Total: decimal.RequireFromString("267930.38"), Rows: 1},
		{Salesperson: "Jared", Total: decimal.RequireFromString("160166.70"), Rows: 2},
	}
	if diff := cmp.Diff(want, s.ByRep, decimalEqual); diff != "" {
		t.Errorf("ByRep mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeRepSubtotalsAddUpToTotal(t *testing.T) {
	for _, period := range []string{december, "November 2025", "March 2024"} {
		s := NewAggregator(newTestLogger()).Summarize(completeTable(), period)

		sum := decimal.Zero
		for _, r := range s.ByRep {
			sum = sum.Add(r.Total)
		}
		assert.True(t, sum.Equal(s.Total), "%s: reps sum to %s, total is %s", period, sum, s.Total)
		assert.InDelta(t, s.Total.InexactFloat64(), sum.InexactFloat64(), 0.01)
		assert.LessOrEqual(t, s.DistinctOrders, s.Rows)
	}
}

func TestSummarizeIssuedDates(t *testing.T) {
	s := NewAggregator(newTestLogger()).Summarize(completeTable(), december)

	require.Len(t, s.TopIssuedDates, 7)
	assert.Equal(t, models.DateCount{IssuedDate: "12/02/2025", Rows: 2}, s.TopIssuedDates[0])
	assert.Equal(t, models.DateCount{IssuedDate: "12/10/2025", Rows: 2}, s.TopIssuedDates[1])
	assert.Equal(t, models.DateCount{IssuedDate: "12/01/2025", Rows: 1}, s.TopIssuedDates[2])
}

func TestSummarizeIssuedDatesCapped(t *testing.T) {
	table := &models.Table{}
	for day := 1; day <= 15; day++ {
		table.Sales = append(table.Sales,
			sale(int64(day), decimal.NewFromInt(int64(day)).String(), december, "BenW", "Widget", "1.00"))
	}

	s := NewAggregator(newTestLogger()).Summarize(table, december)
	assert.Len(t, s.TopIssuedDates, maxIssuedDates)
}

func TestSummarizeLineStats(t *testing.T) {
	s := NewAggregator(newTestLogger()).Summarize(completeTable(), december)

	assert.Equal(t, 16072.0, s.LineStats.Min)
	assert.Equal(t, 318966.95, s.LineStats.Max)
	assert.Equal(t, 150000.0, s.LineStats.Median)
	assert.InDelta(t, 159144.30, s.LineStats.Mean, 0.005)
}

func TestSummarizePeriodMatchIsExact(t *testing.T) {
	agg := NewAggregator(newTestLogger())

	for _, period := range []string{"december 2025", "December 2025 ", "Dec 2025"} {
		s := agg.Summarize(completeTable(), period)
		assert.Zero(t, s.Rows, "period %q should not match", period)
	}
}

func TestSummarizeEmptyPeriod(t *testing.T) {
	s := NewAggregator(newTestLogger()).Summarize(&models.Table{}, december)

	assert.Zero(t, s.Rows)
	assert.Zero(t, s.DistinctOrders)
	assert.True(t, s.Total.IsZero())
	assert.Empty(t, s.ByRep)
	assert.Empty(t, s.TopIssuedDates)
	assert.Equal(t, models.LineStats{}, s.LineStats)
}
