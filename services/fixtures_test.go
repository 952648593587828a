package services

import (
	"github.com/shopspring/decimal"

	"revenue-check/models"
	"revenue-check/utils"
)

const december = "December 2025"

func newTestLogger() *utils.Logger { return utils.NewNopLogger() }

func sale(order int64, date, period, rep, product, price string) *models.Sale {
	return &models.Sale{
		OrderNumber: order,
		IssuedDate:  date,
		Period:      period,
		Salesperson: rep,
		Product:     product,
		TotalPrice:  decimal.RequireFromString(price),
	}
}

// completeTable holds a December 2025 export whose total is 1432298.73, including order 9715.
// Without order 9715 the December total is 1416226.73.
func completeTable() *models.Table {
	return &models.Table{
		Source:  "fixture.csv",
		Columns: models.RequiredColumns,
		Sales: []*models.Sale{
			sale(9701, "12/01/2025", december, "BenW", "Widget A", "150000.00"),
			sale(9702, "12/03/2025", december, "BenW", "Widget B", "125807.50"),
			sale(9703, "12/02/2025", december, "Zalak", "Widget A", "200000.00"),
			sale(9703, "12/02/2025", december, "Zalak", "Widget C", "193355.20"),
			sale(9704, "12/05/2025", december, "DerekW", "Widget B", "318966.95"),
			sale(9705, "12/08/2025", december, "BrandonG", "Widget A", "267930.38"),
			sale(9706, "12/10/2025", december, "Jared", "Widget C", "100000.00"),
			sale(9707, "12/10/2025", december, "Jared", "Widget D", "60166.70"),
			sale(9715, "12/31/2025", december, "BenW", "Widget A", "16072.00"),
			sale(9650, "11/20/2025", "November 2025", "Zalak", "Widget A", "5000.00"),
			sale(9651, "11/21/2025", "November 2025", "Jared", "Widget B", "1234.56"),
		},
	}
}

func testReference() models.Reference {
	return models.Reference{
		Period:            december,
		CompleteTotal:     1432298.73,
		MissingOrderTotal: 1416226.73,
		MissingOrder:      9715,
		ExpectedByRep: []models.RepExpectation{
			{Salesperson: "BenW", Total: 291879.50},
			{Salesperson: "Zalak", Total: 393355.20},
			{Salesperson: "DerekW", Total: 318966.95},
			{Salesperson: "BrandonG", Total: 267930.38},
			{Salesperson: "Jared", Total: 160166.70},
		},
	}
}
