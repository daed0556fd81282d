package stock

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the textual form of sale timestamps in reports and
// exports. It sorts lexically and carries second precision.
const TimestampLayout = "2006-01-02 15:04:05"

type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
}

// Value is the stock on hand valued at cost.
func (p Product) Value() decimal.Decimal {
	return p.UnitCost.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Sale is one row of the append-only ledger. ProductName and UnitCost are
// copied from the product when the sale is recorded.
type Sale struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Timestamp   time.Time       `json:"timestamp"`
}

type SaleDetail struct {
	Sale
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Profit       decimal.Decimal `json:"profit"`
}

type Totals struct {
	Revenue decimal.Decimal `json:"revenue"`
	Cost    decimal.Decimal `json:"cost"`
	Profit  decimal.Decimal `json:"profit"`
}

// Receipt is what RecordSale hands back once the sale is committed.
type Receipt struct {
	SaleID         int64 `json:"sale_id"`
	Sale           Sale  `json:"sale"`
	RemainingStock int   `json:"remaining_stock"`
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
