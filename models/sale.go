package models

import "github.com/shopspring/decimal"

// Column names every sales export must carry in its header row.
const (
	ColOrderNumber = "Sales order Number"
	ColPeriod      = "Year-month"
	ColSalesperson = "Sales person"
	ColIssuedDate  = "Issued date"
	ColProduct     = "Product"
	ColTotalPrice  = "Total Price"
)

// RequiredColumns lists the header columns in the order they are validated.
var RequiredColumns = []string{
	ColOrderNumber,
	ColPeriod,
	ColSalesperson,
	ColIssuedDate,
	ColProduct,
	ColTotalPrice,
}

// RawSale holds one line item exactly as read from the source.
// Nothing is parsed yet; the normalizer turns it into a Sale.
type RawSale struct {
	Line        int // 1-based line in the source, header included
	OrderNumber string
	IssuedDate  string
	Period      string
	Salesperson string
	Product     string
	TotalPrice  string
}

// RawTable is the unparsed content of one source.
type RawTable struct {
	Source  string
	Columns []string
	Rows    []*RawSale
}

// Sale is a typed, normalized line item.
type Sale struct {
	OrderNumber int64
	IssuedDate  string
	Period      string
	Salesperson string
	Product     string
	TotalPrice  decimal.Decimal
}

// Table is the normalized content of one source. It is built once and only read afterwards.
type Table struct {
	Source  string
	Columns []string
	Sales   []*Sale
}

// Without returns a copy of the table lacking every row of the given order.
func (t *Table) Without(order int64) *Table {
	out := &Table{
		Source:  t.Source,
		Columns: t.Columns,
		Sales:   make([]*Sale, 0, len(t.Sales)),
	}
	for _, s := range t.Sales {
		if s.OrderNumber != order {
			out.Sales = append(out.Sales, s)
		}
	}
	return out
}
