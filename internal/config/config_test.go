package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "KAFKA_BROKERS", "LOW_STOCK_THRESHOLD", "STOCKWATCH_WORKERS"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, []string{"kafka:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 5, cfg.LowStockThreshold)
	assert.Equal(t, 4, cfg.StockwatchWorkers)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("KAFKA_BROKERS", " a:1, ,b:2 ")
	t.Setenv("LOW_STOCK_THRESHOLD", "2")
	t.Setenv("STOCKWATCH_WORKERS", "many")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, []string{"a:1", "b:2"}, cfg.KafkaBrokers)
	assert.Equal(t, 2, cfg.LowStockThreshold)
	assert.Equal(t, 4, cfg.StockwatchWorkers)
}
