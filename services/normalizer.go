package services

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"revenue-check/models"
	"revenue-check/utils"
)

var (
	// amountRegexp is a plain unsigned decimal once symbols and separators are gone
	amountRegexp = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

	errEmptyValue = errors.New("empty value")
	errNotNumber  = errors.New("not a number")
	errNotInteger = errors.New("not an integer")
)

// Normalizer turns raw rows into a typed Table.
type Normalizer struct {
	logger *utils.Logger
}

// NewNormalizer creates a Normalizer with the given logger.
func NewNormalizer(logger *utils.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize converts every raw row. The first cell that fails to parse aborts the whole
// table: a malformed export must not be imported, so nothing is skipped.
func (n *Normalizer) Normalize(raw *models.RawTable) (*models.Table, error) {
	table := &models.Table{
		Source:  raw.Source,
		Columns: raw.Columns,
		Sales:   make([]*models.Sale, 0, len(raw.Rows)),
	}

	for _, r := range raw.Rows {
		order, err := ParseOrderNumber(r.OrderNumber)
		if err != nil {
			return nil, &models.FormatError{
				Source: raw.Source, Line: r.Line, Column: models.ColOrderNumber, Value: r.OrderNumber, Err: err,
			}
		}
		price, err := ParseCurrency(r.TotalPrice)
		if err != nil {
			return nil, &models.FormatError{
				Source: raw.Source, Line: r.Line, Column: models.ColTotalPrice, Value: r.TotalPrice, Err: err,
			}
		}

		table.Sales = append(table.Sales, &models.Sale{
			OrderNumber: order,
			IssuedDate:  r.IssuedDate,
			Period:      r.Period,
			Salesperson: r.Salesperson,
			Product:     r.Product,
			TotalPrice:  price,
		})
	}

	n.logger.Debug("[normalizer] Normalized %d rows from %s", len(table.Sales), raw.Source)
	return table, nil
}

// ParseCurrency converts currency text to an exact decimal amount.
// Examples:
//
//	"$1,234.56"   → 1234.56
//	"1234.56"     → 1234.56
//	"-$12.00"     → -12
//	"($1,000.00)" → -1000
func ParseCurrency(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, errEmptyValue
	}

	// One sign marker at most: parentheses, or a single "-" before or after "$".
	parens := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	if parens {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	minus := strings.HasPrefix(s, "-")
	if minus {
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "$")
	if strings.HasPrefix(s, "-") {
		if minus {
			return decimal.Zero, errNotNumber
		}
		minus = true
		s = s[1:]
	}
	if parens && minus {
		return decimal.Zero, errNotNumber
	}
	neg := parens || minus
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))

	if !amountRegexp.MatchString(s) {
		return decimal.Zero, errNotNumber
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errNotNumber
	}
	if neg {
		d = d.Neg()
	}
	return d, nil
}

// ParseOrderNumber reads an order number, accepting the "9715.0" form spreadsheet tools emit.
func ParseOrderNumber(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, errEmptyValue
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if !amountRegexp.MatchString(s) {
		return 0, errNotInteger
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0, errNotInteger
	}
	return d.IntPart(), nil
}
