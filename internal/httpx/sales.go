package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	kafkax "github.com/Flaviof1/controle-estoque/internal/kafka"
	"github.com/Flaviof1/controle-estoque/internal/redisx"
	"github.com/Flaviof1/controle-estoque/internal/stock"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type RecordSaleReq struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type RecordSaleResp struct {
	SaleID         int64 `json:"sale_id"`
	RemainingStock int   `json:"remaining_stock"`
	Idempotent     bool  `json:"idempotent"`
}

func (h *StockHandler) recordSale(w http.ResponseWriter, r *http.Request) {
	var req RecordSaleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// The first request with an Idempotency-Key claims it; replays return
	// the stored receipt, or 409 while the first one is still running.
	var idemKey string
	if k := r.Header.Get("Idempotency-Key"); k != "" && h.Redis != nil {
		key := fmt.Sprintf(redisx.KeyIdemSale, k)
		claimed, err := redisx.Claim(ctx, h.Redis, key, redisx.TTLIdempotency)
		switch {
		case err != nil:
			log.Printf("idempotency claim %s: %v", k, err)
		case claimed:
			idemKey = key
		default:
			h.replaySale(ctx, w, key)
			return
		}
	}

	rc, err := h.Service.Sales.RecordSale(ctx, req.ProductID, req.Quantity, req.UnitPrice)
	if err != nil {
		if idemKey != "" {
			if rerr := redisx.Release(ctx, h.Redis, idemKey); rerr != nil {
				log.Printf("idempotency release %s: %v", idemKey, rerr)
			}
		}
		writeError(w, r, err)
		return
	}
	resp := RecordSaleResp{SaleID: rc.SaleID, RemainingStock: rc.RemainingStock}

	if idemKey != "" {
		if err := h.Redis.Set(ctx, idemKey, kafkax.MustMarshal(resp), redisx.TTLIdempotency).Err(); err != nil {
			log.Printf("idempotency store %s: %v", idemKey, err)
		}
	}
	h.publishSaleRecorded(rc, r.Header.Get("X-Request-Id"))

	writeJSON(w, http.StatusCreated, resp)
}

func (h *StockHandler) replaySale(ctx context.Context, w http.ResponseWriter, key string) {
	b, err := h.Redis.Get(ctx, key).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Printf("idempotency read %s: %v", key, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	var prev RecordSaleResp
	if err != nil || string(b) == redisx.ClaimPending || json.Unmarshal(b, &prev) != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "a request with this idempotency key is in progress"})
		return
	}
	prev.Idempotent = true
	writeJSON(w, http.StatusOK, prev)
}

// publishSaleRecorded runs after commit. A failure here is logged and does
// not affect the recorded sale.
func (h *StockHandler) publishSaleRecorded(rc stock.Receipt, trace string) {
	if h.Producer == nil {
		return
	}
	ev, err := stock.NewEnvelope(stock.EventSaleRecorded, h.Name, trace,
		strconv.FormatInt(rc.SaleID, 10), stock.SaleRecordedFromReceipt(rc))
	if err != nil {
		log.Printf("sale %d: build event: %v", rc.SaleID, err)
		return
	}
	h.Producer.Publish(stock.PartitionKey(rc.Sale.ProductID), kafkax.MustMarshal(ev),
		kafkax.EventHeaders(stock.EventSaleRecorded)...)
}

func (h *StockHandler) salesHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	history, err := h.Service.Ledger.SalesHistory(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}
