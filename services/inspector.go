package services

import (
	"github.com/shopspring/decimal"

	"revenue-check/models"
	"revenue-check/utils"
)

// Inspector reports on individual orders inside a table.
type Inspector struct {
	logger *utils.Logger
}

func NewInspector(logger *utils.Logger) *Inspector {
	return &Inspector{logger: logger}
}

// LookupOrder collects every row of the given order. An absent order is a finding,
// not an error: the result simply has Found set to false.
func (in *Inspector) LookupOrder(t *models.Table, order int64) models.OrderLookup {
	lookup := models.OrderLookup{OrderNumber: order, Total: decimal.Zero}

	dates := newOrderedSet()
	periods := newOrderedSet()
	reps := newOrderedSet()

	for _, s := range t.Sales {
		if s.OrderNumber != order {
			continue
		}
		lookup.Rows++
		lookup.Total = lookup.Total.Add(s.TotalPrice)
		dates.add(s.IssuedDate)
		periods.add(s.Period)
		reps.add(s.Salesperson)
		lookup.Lines = append(lookup.Lines, models.OrderLine{
			IssuedDate:  s.IssuedDate,
			Period:      s.Period,
			Salesperson: s.Salesperson,
			Product:     s.Product,
			TotalPrice:  s.TotalPrice,
		})
	}

	lookup.Found = lookup.Rows > 0
	if lookup.Found {
		lookup.IssuedDates = dates.items
		lookup.Periods = periods.items
		lookup.Salespersons = reps.items
	}

	in.logger.Debug("[inspector] Order %d: found=%t rows=%d", order, lookup.Found, lookup.Rows)
	return lookup
}

// orderedSet keeps distinct strings in first-seen order.
type orderedSet struct {
	seen  map[string]struct{}
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (o *orderedSet) add(s string) {
	if _, dup := o.seen[s]; dup {
		return
	}
	o.seen[s] = struct{}{}
	o.items = append(o.items, s)
}
