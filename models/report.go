package models

import "github.com/shopspring/decimal"

// RepCount is a row count for one salesperson across the whole file.
type RepCount struct {
	Salesperson string
	Rows        int
}

// TableOverview describes the loaded file before any filtering.
type TableOverview struct {
	Source       string
	TotalRows    int
	Columns      []string
	Salespersons []string // distinct, first-seen order
	RowsByRep    []RepCount
}

// RepSubtotal is the revenue of one salesperson within a period.
type RepSubtotal struct {
	Salesperson string
	Total       decimal.Decimal
	Rows        int
}

// DateCount is how often an issued date appears within a period.
type DateCount struct {
	IssuedDate string
	Rows       int
}

// LineStats summarises line-item prices within a period.
type LineStats struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
}

// PeriodSummary holds the aggregates for one period label.
type PeriodSummary struct {
	Period         string
	Rows           int
	DistinctOrders int
	Total          decimal.Decimal
	ByRep          []RepSubtotal // sorted by Total descending
	TopIssuedDates []DateCount
	LineStats      LineStats
}

// OrderLine is one line item of a looked-up order.
type OrderLine struct {
	IssuedDate  string
	Period      string
	Salesperson string
	Product     string
	TotalPrice  decimal.Decimal
}

// OrderLookup is the result of checking a single order number.
// Only OrderNumber and Found are set when the order is absent.
type OrderLookup struct {
	OrderNumber  int64
	Found        bool
	Rows         int
	Total        decimal.Decimal
	IssuedDates  []string
	Periods      []string
	Salespersons []string
	Lines        []OrderLine
}

// Report is everything a single verification run prints.
type Report struct {
	RunID        string
	Overview     TableOverview
	Period       PeriodSummary
	Order        OrderLookup
	Verification Verification
}
