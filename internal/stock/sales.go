package stock

import (
	"context"
	"time"

	"github.com/Flaviof1/controle-estoque/internal/clock"
	"github.com/shopspring/decimal"
)

// SaleEngine records sales. The stock decrement and the ledger append share
// one transaction.
type SaleEngine struct {
	store Store
	clock clock.Clock
}

func NewSaleEngine(s Store, c clock.Clock) *SaleEngine {
	if c == nil {
		c = clock.NewRealClock()
	}
	return &SaleEngine{store: s, clock: c}
}

// RecordSale sells quantity units of the product at unitPrice each.
//
// Checks run in this order and the first failure wins: the product exists,
// quantity is positive, quantity is covered by stock, unitPrice is positive.
// On any error nothing is written.
func (e *SaleEngine) RecordSale(ctx context.Context, productID int64, quantity int, unitPrice decimal.Decimal) (Receipt, error) {
	var rc Receipt
	err := e.store.WithTransaction(ctx, func(ctx context.Context, tx Tx) error {
		p, err := tx.LockProduct(ctx, productID)
		if err != nil {
			return WrapStore("lock product", err)
		}
		if quantity <= 0 {
			return validationError("quantity must be a positive integer, got %d", quantity)
		}
		if quantity > p.Quantity {
			return &InsufficientStockError{ProductID: p.ID, Requested: quantity, Available: p.Quantity}
		}
		if !unitPrice.IsPositive() {
			return validationError("unit price must be positive, got %s", unitPrice)
		}

		remaining := p.Quantity - quantity
		if err := tx.SetQuantity(ctx, p.ID, remaining); err != nil {
			return WrapStore("decrement stock", err)
		}

		sale := Sale{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			UnitCost:    p.UnitCost,
			Timestamp:   e.clock.Now().UTC().Truncate(time.Second),
		}
		id, err := tx.InsertSale(ctx, sale)
		if err != nil {
			return WrapStore("append sale", err)
		}
		sale.ID = id
		rc = Receipt{SaleID: id, Sale: sale, RemainingStock: remaining}
		return nil
	})
	if err != nil {
		return Receipt{}, WrapStore("record sale", err)
	}
	return rc, nil
}
