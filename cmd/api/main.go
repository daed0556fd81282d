package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Flaviof1/controle-estoque/internal/clock"
	"github.com/Flaviof1/controle-estoque/internal/config"
	"github.com/Flaviof1/controle-estoque/internal/httpx"
	kafkax "github.com/Flaviof1/controle-estoque/internal/kafka"
	"github.com/Flaviof1/controle-estoque/internal/postgres"
	"github.com/Flaviof1/controle-estoque/internal/redisx"
	"github.com/Flaviof1/controle-estoque/internal/stock"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, stock.TopicSaleRecorded, 1024)
	prod.Start(ctx)

	svc := stock.NewService(&postgres.StockStore{DB: db}, clock.NewRealClock())
	router := httpx.NewRouter()
	h := &httpx.StockHandler{
		Service:  svc,
		Producer: prod,
		Redis:    rdb,
		Name:     cfg.ServiceName,
	}
	h.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	// Must exceed the 15s handler timeout set in httpx.NewRouter.
	ctx2, cancel2 := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // no more publishes after the server is down
	prod.WaitClosed() // flush buffered events
}
