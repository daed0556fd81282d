package postgres

import (
	"context"
	"errors"

	"github.com/Flaviof1/controle-estoque/internal/stock"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, name, quantity, unit_cost`

// StockStore implements stock.Store on PostgreSQL.
type StockStore struct{ DB DB }

var _ stock.Store = (*StockStore)(nil)

func (s *StockStore) InsertProduct(ctx context.Context, p stock.Product) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
		INSERT INTO products(name, quantity, unit_cost)
		VALUES ($1, $2, $3)
		RETURNING id`, p.Name, p.Quantity, p.UnitCost).Scan(&id)
	if err != nil {
		return 0, stock.WrapStore("insert product", err)
	}
	return id, nil
}

func (s *StockStore) UpdateProduct(ctx context.Context, p stock.Product) error {
	ct, err := s.DB.Exec(ctx, `UPDATE products SET name=$2, quantity=$3, unit_cost=$4 WHERE id=$1`,
		p.ID, p.Name, p.Quantity, p.UnitCost)
	if err != nil {
		return stock.WrapStore("update product", err)
	}
	if ct.RowsAffected() == 0 {
		return stock.NotFound("product", p.ID)
	}
	return nil
}

func (s *StockStore) DeleteProduct(ctx context.Context, id int64) error {
	ct, err := s.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return stock.WrapStore("delete product", err)
	}
	if ct.RowsAffected() == 0 {
		return stock.NotFound("product", id)
	}
	return nil
}

func (s *StockStore) GetProduct(ctx context.Context, id int64) (stock.Product, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id)
	return scanProduct(row, id, "get product")
}

func (s *StockStore) FindProducts(ctx context.Context, nameSubstring string) ([]stock.Product, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if nameSubstring == "" {
		rows, err = s.DB.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY lower(name), id`)
	} else {
		rows, err = s.DB.Query(ctx, `SELECT `+productColumns+` FROM products
		                             WHERE strpos(lower(name), lower($1)) > 0
		                             ORDER BY lower(name), id`, nameSubstring)
	}
	if err != nil {
		return nil, stock.WrapStore("find products", err)
	}
	defer rows.Close()

	out := []stock.Product{}
	for rows.Next() {
		var p stock.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.UnitCost); err != nil {
			return nil, stock.WrapStore("find products", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, stock.WrapStore("find products", err)
	}
	return out, nil
}

func (s *StockStore) ListSales(ctx context.Context) ([]stock.Sale, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, product_id, product_name, quantity, unit_price, unit_cost, sold_at
		FROM sales ORDER BY sold_at DESC, id DESC`)
	if err != nil {
		return nil, stock.WrapStore("list sales", err)
	}
	defer rows.Close()

	out := []stock.Sale{}
	for rows.Next() {
		var x stock.Sale
		if err := rows.Scan(&x.ID, &x.ProductID, &x.ProductName, &x.Quantity, &x.UnitPrice, &x.UnitCost, &x.Timestamp); err != nil {
			return nil, stock.WrapStore("list sales", err)
		}
		x.Timestamp = x.Timestamp.UTC()
		out = append(out, x)
	}
	if err := rows.Err(); err != nil {
		return nil, stock.WrapStore("list sales", err)
	}
	return out, nil
}

// WithTransaction returns errors from fn untouched; begin and commit
// failures come back as store errors.
func (s *StockStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx stock.Tx) error) error {
	var fnErr error
	err := WithTransaction(ctx, s.DB, func(tx pgx.Tx) error {
		fnErr = fn(ctx, stockTx{tx: tx})
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	return stock.WrapStore("transaction", err)
}

type stockTx struct{ tx pgx.Tx }

// LockProduct takes a row lock so concurrent sales of the same product
// serialize on the stock check.
func (t stockTx) LockProduct(ctx context.Context, id int64) (stock.Product, error) {
	row := t.tx.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1 FOR UPDATE`, id)
	return scanProduct(row, id, "lock product")
}

func (t stockTx) SetQuantity(ctx context.Context, id int64, quantity int) error {
	ct, err := t.tx.Exec(ctx, `UPDATE products SET quantity=$2 WHERE id=$1`, id, quantity)
	if err != nil {
		return stock.WrapStore("set quantity", err)
	}
	if ct.RowsAffected() != 1 {
		return stock.NotFound("product", id)
	}
	return nil
}

func (t stockTx) InsertSale(ctx context.Context, x stock.Sale) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx, `
		INSERT INTO sales(product_id, product_name, quantity, unit_price, unit_cost, sold_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		x.ProductID, x.ProductName, x.Quantity, x.UnitPrice, x.UnitCost, x.Timestamp,
	).Scan(&id)
	if err != nil {
		return 0, stock.WrapStore("insert sale", err)
	}
	return id, nil
}

func scanProduct(row pgx.Row, id int64, op string) (stock.Product, error) {
	var p stock.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Quantity, &p.UnitCost); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return stock.Product{}, stock.NotFound("product", id)
		}
		return stock.Product{}, stock.WrapStore(op, err)
	}
	return p, nil
}
