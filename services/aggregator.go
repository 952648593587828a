package services

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"revenue-check/models"
	"revenue-check/utils"
)

// maxIssuedDates caps the issued-date frequency list of a period summary.
const maxIssuedDates = 10

type Aggregator struct {
	logger *utils.Logger
}

func NewAggregator(logger *utils.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// Overview describes the whole table before any period filter.
func (a *Aggregator) Overview(t *models.Table) models.TableOverview {
	ov := models.TableOverview{
		Source:    t.Source,
		TotalRows: len(t.Sales),
		Columns:   t.Columns,
	}

	pos := make(map[string]int)
	for _, s := range t.Sales {
		i, ok := pos[s.Salesperson]
		if !ok {
			i = len(ov.RowsByRep)
			pos[s.Salesperson] = i
			ov.Salespersons = append(ov.Salespersons, s.Salesperson)
			ov.RowsByRep = append(ov.RowsByRep, models.RepCount{Salesperson: s.Salesperson})
		}
		ov.RowsByRep[i].Rows++
	}

	sort.SliceStable(ov.RowsByRep, func(i, j int) bool {
		return ov.RowsByRep[i].Rows > ov.RowsByRep[j].Rows
	})
	return ov
}

// Summarize aggregates the rows whose period label matches exactly.
// A period with no rows yields a zero summary.
func (a *Aggregator) Summarize(t *models.Table, period string) models.PeriodSummary {
	summary := models.PeriodSummary{
		Period: period,
		Total:  decimal.Zero,
	}

	orders := make(map[int64]struct{})
	repPos := make(map[string]int)
	datePos := make(map[string]int)
	var prices []float64

	for _, s := range t.Sales {
		if s.Period != period {
			continue
		}
		summary.Rows++
		orders[s.OrderNumber] = struct{}{}
		summary.Total = summary.Total.Add(s.TotalPrice)
		prices = append(prices, s.TotalPrice.InexactFloat64())

		i, ok := repPos[s.Salesperson]
		if !ok {
			i = len(summary.ByRep)
			repPos[s.Salesperson] = i
			summary.ByRep = append(summary.ByRep, models.RepSubtotal{Salesperson: s.Salesperson, Total: decimal.Zero})
		}
		summary.ByRep[i].Total = summary.ByRep[i].Total.Add(s.TotalPrice)
		summary.ByRep[i].Rows++

		d, ok := datePos[s.IssuedDate]
		if !ok {
			d = len(summary.TopIssuedDates)
			datePos[s.IssuedDate] = d
			summary.TopIssuedDates = append(summary.TopIssuedDates, models.DateCount{IssuedDate: s.IssuedDate})
		}
		summary.TopIssuedDates[d].Rows++
	}
	summary.DistinctOrders = len(orders)

	sort.SliceStable(summary.ByRep, func(i, j int) bool {
		return summary.ByRep[i].Total.GreaterThan(summary.ByRep[j].Total)
	})
	sort.SliceStable(summary.TopIssuedDates, func(i, j int) bool {
		return summary.TopIssuedDates[i].Rows > summary.TopIssuedDates[j].Rows
	})
	if len(summary.TopIssuedDates) > maxIssuedDates {
		summary.TopIssuedDates = summary.TopIssuedDates[:maxIssuedDates]
	}

	summary.LineStats = lineStats(prices)

	a.logger.Debug("[aggregator] Period %q: %d rows, %d orders, total %s",
		period, summary.Rows, summary.DistinctOrders, summary.Total.StringFixed(2))
	return summary
}

func lineStats(prices []float64) models.LineStats {
	if len(prices) == 0 {
		return models.LineStats{}
	}
	data := stats.Float64Data(prices)
	mean, _ := data.Mean()
	median, _ := data.Median()
	minV, _ := data.Min()
	maxV, _ := data.Max()
	return models.LineStats{
		Mean:   round2(mean),
		Median: round2(median),
		Min:    minV,
		Max:    maxV,
	}
}

func round2(f float64) float64 {
	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
