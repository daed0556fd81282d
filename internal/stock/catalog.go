package stock

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// Catalog owns product records.
type Catalog struct {
	store Store
}

func NewCatalog(s Store) *Catalog { return &Catalog{store: s} }

func (c *Catalog) AddProduct(ctx context.Context, name string, quantity int, unitCost decimal.Decimal) (int64, error) {
	name, err := normalizeProduct(name, quantity, unitCost)
	if err != nil {
		return 0, err
	}
	id, err := c.store.InsertProduct(ctx, Product{Name: name, Quantity: quantity, UnitCost: unitCost})
	if err != nil {
		return 0, WrapStore("insert product", err)
	}
	return id, nil
}

// UpdateProduct replaces all mutable fields at once; there is no partial
// update.
func (c *Catalog) UpdateProduct(ctx context.Context, id int64, name string, quantity int, unitCost decimal.Decimal) error {
	name, err := normalizeProduct(name, quantity, unitCost)
	if err != nil {
		return err
	}
	err = c.store.UpdateProduct(ctx, Product{ID: id, Name: name, Quantity: quantity, UnitCost: unitCost})
	return WrapStore("update product", err)
}

// DeleteProduct removes the product. Sales keep their snapshot and are not
// touched.
func (c *Catalog) DeleteProduct(ctx context.Context, id int64) error {
	return WrapStore("delete product", c.store.DeleteProduct(ctx, id))
}

func (c *Catalog) GetProduct(ctx context.Context, id int64) (Product, error) {
	p, err := c.store.GetProduct(ctx, id)
	if err != nil {
		return Product{}, WrapStore("get product", err)
	}
	return p, nil
}

// FindProducts returns a snapshot ordered by name. An empty filter returns
// every product; no match is an empty slice, not an error.
func (c *Catalog) FindProducts(ctx context.Context, nameSubstring string) ([]Product, error) {
	ps, err := c.store.FindProducts(ctx, strings.TrimSpace(nameSubstring))
	if err != nil {
		return nil, WrapStore("find products", err)
	}
	if ps == nil {
		ps = []Product{}
	}
	return ps, nil
}
