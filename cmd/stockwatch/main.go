package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Flaviof1/controle-estoque/internal/config"
	kafkax "github.com/Flaviof1/controle-estoque/internal/kafka"
	"github.com/Flaviof1/controle-estoque/internal/redisx"
	"github.com/Flaviof1/controle-estoque/internal/stock"
	"github.com/Flaviof1/controle-estoque/internal/stockwatch"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	prod := kafkax.NewProducer(cfg.KafkaBrokers, stock.TopicLowStock, 1024)
	prod.Start(ctx)

	svc := &stockwatch.Service{
		Redis:       rdb,
		Producer:    prod,
		Threshold:   cfg.LowStockThreshold,
		ServiceName: cfg.ServiceName + "-stockwatch",
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.StockwatchGroup, stock.TopicSaleRecorded, cfg.StockwatchWorkers)
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Printf("stockwatch started: group=%s topic=%s workers=%d threshold=%d",
			cfg.StockwatchGroup, stock.TopicSaleRecorded, cfg.StockwatchWorkers, cfg.LowStockThreshold)
		if err := cons.Start(ctx, svc.HandleSaleRecorded); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Println("shutting down consumer...")
	cancel()
	<-done
	prod.Close()
	prod.WaitClosed()
}
