package stock

import (
	"context"
	"slices"

	"github.com/shopspring/decimal"
)

// Ledger derives financial figures from persisted rows. Nothing is cached;
// every call reads the store again.
type Ledger struct {
	store Store
}

func NewLedger(s Store) *Ledger { return &Ledger{store: s} }

// InventoryValue is the sum of quantity*unit_cost over all products.
func (l *Ledger) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	ps, err := l.store.FindProducts(ctx, "")
	if err != nil {
		return decimal.Zero, WrapStore("inventory value", err)
	}
	total := decimal.Zero
	for _, p := range ps {
		total = total.Add(p.Value())
	}
	return total, nil
}

// SalesTotals uses the cost captured on each sale, not the live product cost.
func (l *Ledger) SalesTotals(ctx context.Context) (Totals, error) {
	sales, err := l.store.ListSales(ctx)
	if err != nil {
		return Totals{}, WrapStore("sales totals", err)
	}
	return Summarize(sales), nil
}

// SalesHistory returns every sale, newest first.
func (l *Ledger) SalesHistory(ctx context.Context) ([]SaleDetail, error) {
	sales, err := l.store.ListSales(ctx)
	if err != nil {
		return nil, WrapStore("sales history", err)
	}
	out := make([]SaleDetail, 0, len(sales))
	for _, s := range sales {
		out = append(out, Detail(s))
	}
	slices.SortStableFunc(out, func(a, b SaleDetail) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	return out, nil
}

func Detail(s Sale) SaleDetail {
	qty := decimal.NewFromInt(int64(s.Quantity))
	cost := s.UnitCost.Mul(qty)
	revenue := s.UnitPrice.Mul(qty)
	return SaleDetail{
		Sale:         s,
		TotalCost:    cost,
		TotalRevenue: revenue,
		Profit:       revenue.Sub(cost),
	}
}

// Summarize totals a set of sales. An empty set yields zeros.
func Summarize(sales []Sale) Totals {
	t := Totals{Revenue: decimal.Zero, Cost: decimal.Zero}
	for _, s := range sales {
		d := Detail(s)
		t.Revenue = t.Revenue.Add(d.TotalRevenue)
		t.Cost = t.Cost.Add(d.TotalCost)
	}
	t.Profit = t.Revenue.Sub(t.Cost)
	return t
}
