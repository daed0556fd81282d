package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/Flaviof1/controle-estoque/internal/stock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readBack(t *testing.T, b []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestWrite(t *testing.T) {
	products := []stock.Product{
		{ID: 1, Name: "Hammer", Quantity: 5, UnitCost: decimal.RequireFromString("2.5")},
		{ID: 2, Name: "Nails", Quantity: 100, UnitCost: decimal.RequireFromString("0.25")},
	}
	history := []stock.SaleDetail{stock.Detail(stock.Sale{
		ID:          9,
		ProductID:   1,
		ProductName: "Hammer",
		Quantity:    2,
		UnitPrice:   decimal.NewFromInt(10),
		UnitCost:    decimal.NewFromInt(4),
		Timestamp:   time.Date(2024, 3, 10, 14, 30, 15, 0, time.UTC),
	})}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, products, history))

	f := readBack(t, buf.Bytes())
	assert.Equal(t, []string{SheetProducts, SheetSales}, f.GetSheetList())

	rows, err := f.GetRows(SheetProducts)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Name", "Quantity", "Unit Cost"}, rows[0])
	assert.Equal(t, []string{"1", "Hammer", "5", "2.5"}, rows[1])
	assert.Equal(t, []string{"2", "Nails", "100", "0.25"}, rows[2])

	rows, err = f.GetRows(SheetSales)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Timestamp", rows[0][9])
	assert.Equal(t, []string{"9", "1", "Hammer", "2", "10", "4", "20", "8", "12", "2024-03-10 14:30:15"}, rows[1])
}

func TestWrite_EmptyStillHasHeaders(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, nil))

	f := readBack(t, buf.Bytes())
	for _, sheet := range []string{SheetProducts, SheetSales} {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		assert.Len(t, rows, 1, sheet)
	}
}
