package stock

import "context"

// Store is the persistence boundary. Lookups of a missing id return an error
// matching ErrNotFound; any other failure matches ErrStore.
type Store interface {
	InsertProduct(ctx context.Context, p Product) (int64, error)
	// UpdateProduct overwrites name, quantity and unit cost of p.ID.
	UpdateProduct(ctx context.Context, p Product) error
	DeleteProduct(ctx context.Context, id int64) error
	GetProduct(ctx context.Context, id int64) (Product, error)
	// FindProducts matches nameSubstring case-insensitively; "" matches all.
	FindProducts(ctx context.Context, nameSubstring string) ([]Product, error)
	ListSales(ctx context.Context) ([]Sale, error)

	// WithTransaction runs fn inside one transaction. A non-nil error from fn
	// rolls everything back and is returned as is.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the write set of a sale.
type Tx interface {
	// LockProduct reads the product and holds it against concurrent sales
	// until the transaction ends.
	LockProduct(ctx context.Context, id int64) (Product, error)
	SetQuantity(ctx context.Context, id int64, quantity int) error
	InsertSale(ctx context.Context, s Sale) (int64, error)
}
