// Package stocktest provides an in-memory stock.Store for tests.
package stocktest

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/Flaviof1/controle-estoque/internal/stock"
)

// ErrInjected is the default failure returned by FailOn.
var ErrInjected = errors.New("injected store failure")

// MemStore keeps products and sales in maps. A transaction holds the store
// lock for its whole duration, which serializes sales the way a row lock
// would, and restores a snapshot when fn fails.
type MemStore struct {
	mu       sync.Mutex
	products map[int64]stock.Product
	sales    []stock.Sale
	nextProd int64
	nextSale int64
	fail     map[string]error
}

func NewMemStore() *MemStore {
	return &MemStore{
		products: map[int64]stock.Product{},
		fail:     map[string]error{},
	}
}

// FailOn makes the named operation ("InsertProduct", "SetQuantity",
// "InsertSale", "ListSales", ...) return err until cleared with a nil err.
func (m *MemStore) FailOn(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.fail, op)
		return
	}
	m.fail[op] = err
}

func (m *MemStore) failure(op string) error {
	return m.fail[op]
}

// Sales returns a copy of the ledger in insertion order.
func (m *MemStore) Sales() []stock.Sale {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.sales)
}

func (m *MemStore) InsertProduct(_ context.Context, p stock.Product) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("InsertProduct"); err != nil {
		return 0, err
	}
	m.nextProd++
	p.ID = m.nextProd
	m.products[p.ID] = p
	return p.ID, nil
}

func (m *MemStore) UpdateProduct(_ context.Context, p stock.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("UpdateProduct"); err != nil {
		return err
	}
	if _, ok := m.products[p.ID]; !ok {
		return stock.NotFound("product", p.ID)
	}
	m.products[p.ID] = p
	return nil
}

func (m *MemStore) DeleteProduct(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("DeleteProduct"); err != nil {
		return err
	}
	if _, ok := m.products[id]; !ok {
		return stock.NotFound("product", id)
	}
	delete(m.products, id)
	return nil
}

func (m *MemStore) GetProduct(_ context.Context, id int64) (stock.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("GetProduct"); err != nil {
		return stock.Product{}, err
	}
	p, ok := m.products[id]
	if !ok {
		return stock.Product{}, stock.NotFound("product", id)
	}
	return p, nil
}

func (m *MemStore) FindProducts(_ context.Context, nameSubstring string) ([]stock.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("FindProducts"); err != nil {
		return nil, err
	}
	needle := strings.ToLower(nameSubstring)
	out := []stock.Product{}
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b stock.Product) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out, nil
}

func (m *MemStore) ListSales(_ context.Context) ([]stock.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure("ListSales"); err != nil {
		return nil, err
	}
	out := slices.Clone(m.sales)
	slices.Reverse(out)
	return out, nil
}

func (m *MemStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx stock.Tx) error) (err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	products := make(map[int64]stock.Product, len(m.products))
	for id, p := range m.products {
		products[id] = p
	}
	sales := slices.Clone(m.sales)
	nextSale := m.nextSale

	defer func() {
		if r := recover(); r != nil {
			m.products, m.sales, m.nextSale = products, sales, nextSale
			panic(r)
		}
		if err != nil {
			m.products, m.sales, m.nextSale = products, sales, nextSale
		}
	}()
	return fn(ctx, memTx{m})
}

// memTx runs with the store lock already held.
type memTx struct{ m *MemStore }

func (t memTx) LockProduct(_ context.Context, id int64) (stock.Product, error) {
	if err := t.m.failure("LockProduct"); err != nil {
		return stock.Product{}, err
	}
	p, ok := t.m.products[id]
	if !ok {
		return stock.Product{}, stock.NotFound("product", id)
	}
	return p, nil
}

func (t memTx) SetQuantity(_ context.Context, id int64, quantity int) error {
	if err := t.m.failure("SetQuantity"); err != nil {
		return err
	}
	p, ok := t.m.products[id]
	if !ok {
		return stock.NotFound("product", id)
	}
	p.Quantity = quantity
	t.m.products[id] = p
	return nil
}

func (t memTx) InsertSale(_ context.Context, s stock.Sale) (int64, error) {
	if err := t.m.failure("InsertSale"); err != nil {
		return 0, err
	}
	t.m.nextSale++
	s.ID = t.m.nextSale
	t.m.sales = append(t.m.sales, s)
	return s.ID, nil
}
