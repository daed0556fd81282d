package httpx

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	kafkax "github.com/Flaviof1/controle-estoque/internal/kafka"
	"github.com/Flaviof1/controle-estoque/internal/stock"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

// StockHandler exposes the catalog, the sale engine and the ledger over
// HTTP. Producer and Redis are optional.
type StockHandler struct {
	Service  *stock.Service
	Producer kafkax.Publisher
	Redis    *redis.Client
	Name     string // producer name stamped on events
}

func (h *StockHandler) Register(r *chi.Mux) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.findProducts)
		r.Post("/", h.addProduct)
		r.Get("/{id}", h.getProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})
	r.Post("/sales", h.recordSale)
	r.Get("/sales", h.salesHistory)
	r.Get("/ledger/inventory-value", h.inventoryValue)
	r.Get("/ledger/totals", h.salesTotals)
	r.Get("/export.xlsx", h.exportWorkbook)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, stock.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, stock.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, stock.ErrInsufficientStock):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps a core error to a status code. Store and unknown errors
// are logged and hidden from the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		writeJSON(w, code, map[string]string{"error": "internal error"})
		return
	}

	body := map[string]any{"error": err.Error()}
	var ise *stock.InsufficientStockError
	if errors.As(err, &ise) {
		body["requested"] = ise.Requested
		body["available"] = ise.Available
	}
	writeJSON(w, code, body)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}
