package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/Flaviof1/controle-estoque/internal/clock"
	"github.com/Flaviof1/controle-estoque/internal/stock"
	"github.com/Flaviof1/controle-estoque/internal/stock/stocktest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 10, 14, 30, 15, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func newService(t *testing.T) (*stock.Service, *stocktest.MemStore, *clock.MockClock) {
	t.Helper()
	ms := stocktest.NewMemStore()
	clk := clock.NewMockClock(t0)
	return stock.NewService(ms, clk), ms, clk
}

func addProduct(t *testing.T, svc *stock.Service, name string, qty int, cost string) int64 {
	t.Helper()
	id, err := svc.Catalog.AddProduct(context.Background(), name, qty, dec(cost))
	require.NoError(t, err)
	return id
}
