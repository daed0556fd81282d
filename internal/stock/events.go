package stock

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventSaleRecorded = "SaleRecorded"
	EventLowStock     = "LowStock"
)

const (
	TopicSaleRecorded = "stock.sale.recorded"
	TopicLowStock     = "stock.level.low"
)

// PartitionKey keeps every event of one product on the same partition.
func PartitionKey(productID int64) []byte {
	return []byte(fmt.Sprintf("product-%d", productID))
}

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// NewEnvelope wraps payload in a version 1 envelope with a fresh event id.
func NewEnvelope(eventType, producer, traceID, correlationID string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s payload: %w", eventType, err)
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		TraceID:       traceID,
		CorrelationID: correlationID,
		Payload:       raw,
	}, nil
}

type SaleRecordedPayload struct {
	SaleID         int64           `json:"sale_id"`
	ProductID      int64           `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	SoldAt         time.Time       `json:"sold_at"`
	RemainingStock int             `json:"remaining_stock"`
}

func SaleRecordedFromReceipt(rc Receipt) SaleRecordedPayload {
	return SaleRecordedPayload{
		SaleID:         rc.SaleID,
		ProductID:      rc.Sale.ProductID,
		ProductName:    rc.Sale.ProductName,
		Quantity:       rc.Sale.Quantity,
		UnitPrice:      rc.Sale.UnitPrice,
		UnitCost:       rc.Sale.UnitCost,
		SoldAt:         rc.Sale.Timestamp,
		RemainingStock: rc.RemainingStock,
	}
}

type LowStockPayload struct {
	ProductID      int64  `json:"product_id"`
	ProductName    string `json:"product_name"`
	RemainingStock int    `json:"remaining_stock"`
	Threshold      int    `json:"threshold"`
}
