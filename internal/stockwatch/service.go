// Package stockwatch reacts to recorded sales and raises low-stock events.
package stockwatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	kafkax "github.com/Flaviof1/controle-estoque/internal/kafka"
	"github.com/Flaviof1/controle-estoque/internal/redisx"
	"github.com/Flaviof1/controle-estoque/internal/stock"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

type Service struct {
	Redis       *redis.Client
	Producer    kafkax.Publisher // publishes stock.level.low
	Threshold   int
	ServiceName string
}

// HandleSaleRecorded is installed as the consumer handler for
// stock.sale.recorded.
func (s *Service) HandleSaleRecorded(ctx context.Context, m kafkago.Message) error {
	var env stock.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if env.EventType != stock.EventSaleRecorded {
		return nil
	}

	p, err := kafkax.UnwrapPayload[stock.SaleRecordedPayload](env.Payload)
	if err != nil {
		return err
	}

	dkey := fmt.Sprintf(redisx.KeyDedup, "stockwatch", env.EventID)
	first, err := redisx.Claim(ctx, s.Redis, dkey, redisx.TTLDedup)
	if err != nil {
		// Without Redis every delivery is processed.
		log.Printf("stockwatch dedup %s: %v", env.EventID, err)
	} else if !first {
		return nil
	}

	if p.RemainingStock > s.Threshold {
		return nil
	}
	return s.publishLowStock(p, env.TraceID)
}

func (s *Service) publishLowStock(p stock.SaleRecordedPayload, trace string) error {
	ev, err := stock.NewEnvelope(stock.EventLowStock, s.ServiceName, trace,
		fmt.Sprint(p.ProductID), stock.LowStockPayload{
			ProductID:      p.ProductID,
			ProductName:    p.ProductName,
			RemainingStock: p.RemainingStock,
			Threshold:      s.Threshold,
		})
	if err != nil {
		return err
	}
	log.Printf("low stock: product=%d name=%q remaining=%d threshold=%d",
		p.ProductID, p.ProductName, p.RemainingStock, s.Threshold)
	s.Producer.Publish(stock.PartitionKey(p.ProductID), kafkax.MustMarshal(ev),
		kafkax.EventHeaders(stock.EventLowStock)...)
	return nil
}
