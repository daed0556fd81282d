package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/Flaviof1/controle-estoque/internal/stock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, decimal.RequireFromString("10"), stock.Totals{
		Revenue: decimal.NewFromInt(44),
		Cost:    decimal.NewFromInt(20),
		Profit:  decimal.NewFromInt(24),
	})
	out := buf.String()
	assert.Contains(t, out, "Inventory value")
	assert.Contains(t, out, "10.00")
	assert.Contains(t, out, "44.00")
	assert.Contains(t, out, "24.00")
}

func TestHistory(t *testing.T) {
	var buf bytes.Buffer
	History(&buf, []stock.SaleDetail{
		stock.Detail(stock.Sale{ID: 2, ProductName: "Nails", Quantity: 3, UnitPrice: decimal.NewFromInt(8), UnitCost: decimal.NewFromInt(4),
			Timestamp: time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)}),
		stock.Detail(stock.Sale{ID: 1, ProductName: "Hammer", Quantity: 2, UnitPrice: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(4),
			Timestamp: time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)}),
	})
	out := buf.String()
	assert.Contains(t, out, "2024-03-10 15:00:00")
	assert.Contains(t, out, "Hammer")
	assert.Contains(t, out, "44.00")
	assert.Contains(t, out, "24.00")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Nails")), bytes.Index(buf.Bytes(), []byte("Hammer")))
}

func TestProducts(t *testing.T) {
	var buf bytes.Buffer
	Products(&buf, []stock.Product{{ID: 1, Name: "Hammer", Quantity: 5, UnitCost: decimal.RequireFromString("2")}})
	assert.Contains(t, buf.String(), "Hammer")
	assert.Contains(t, buf.String(), "10.00")
}
