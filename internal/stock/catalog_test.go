package stock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Flaviof1/controle-estoque/internal/stock"
	"github.com/Flaviof1/controle-estoque/internal/stock/stocktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_AddProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("persists fields and assigns fresh ids", func(t *testing.T) {
		svc, _, _ := newService(t)
		first := addProduct(t, svc, "Hammer", 5, "2.00")
		second := addProduct(t, svc, "Nails", 100, "0.05")
		assert.NotEqual(t, first, second)

		p, err := svc.Catalog.GetProduct(ctx, second)
		require.NoError(t, err)
		assert.Equal(t, second, p.ID)
		assert.Equal(t, "Nails", p.Name)
		assert.Equal(t, 100, p.Quantity)
		assertDecimal(t, "0.05", p.UnitCost)
	})

	t.Run("trims the name", func(t *testing.T) {
		svc, _, _ := newService(t)
		id := addProduct(t, svc, "  Saw ", 1, "9.90")
		p, err := svc.Catalog.GetProduct(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Saw", p.Name)
	})

	tests := []struct {
		name     string
		product  string
		qty      int
		unitCost string
	}{
		{"empty name", "", 1, "1"},
		{"blank name", "   ", 1, "1"},
		{"zero quantity", "Saw", 0, "1"},
		{"negative quantity", "Saw", -3, "1"},
		{"zero cost", "Saw", 1, "0"},
		{"negative cost", "Saw", 1, "-0.01"},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			svc, ms, _ := newService(t)
			_, err := svc.Catalog.AddProduct(ctx, tt.product, tt.qty, dec(tt.unitCost))
			assert.ErrorIs(t, err, stock.ErrValidation)

			all, err := ms.FindProducts(ctx, "")
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}

	t.Run("store failure is a store error", func(t *testing.T) {
		svc, ms, _ := newService(t)
		ms.FailOn("InsertProduct", stocktest.ErrInjected)
		_, err := svc.Catalog.AddProduct(ctx, "Saw", 1, dec("1"))
		assert.ErrorIs(t, err, stock.ErrStore)
		assert.ErrorIs(t, err, stocktest.ErrInjected)
	})
}

func TestCatalog_UpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites all fields", func(t *testing.T) {
		svc, _, _ := newService(t)
		id := addProduct(t, svc, "Hammer", 5, "2.00")

		require.NoError(t, svc.Catalog.UpdateProduct(ctx, id, "Claw hammer", 7, dec("3.50")))

		p, err := svc.Catalog.GetProduct(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Claw hammer", p.Name)
		assert.Equal(t, 7, p.Quantity)
		assertDecimal(t, "3.50", p.UnitCost)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _, _ := newService(t)
		err := svc.Catalog.UpdateProduct(ctx, 42, "Saw", 1, dec("1"))
		assert.ErrorIs(t, err, stock.ErrNotFound)
	})

	t.Run("invalid input leaves product unchanged", func(t *testing.T) {
		svc, _, _ := newService(t)
		id := addProduct(t, svc, "Hammer", 5, "2.00")

		err := svc.Catalog.UpdateProduct(ctx, id, "", 9, dec("9"))
		assert.ErrorIs(t, err, stock.ErrValidation)

		p, err := svc.Catalog.GetProduct(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Hammer", p.Name)
		assert.Equal(t, 5, p.Quantity)
	})
}

func TestCatalog_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService(t)
	id := addProduct(t, svc, "Hammer", 5, "2.00")

	require.NoError(t, svc.Catalog.DeleteProduct(ctx, id))

	_, err := svc.Catalog.GetProduct(ctx, id)
	assert.ErrorIs(t, err, stock.ErrNotFound)

	err = svc.Catalog.DeleteProduct(ctx, id)
	assert.ErrorIs(t, err, stock.ErrNotFound)
}

func TestCatalog_FindProducts(t *testing.T) {
	ctx := context.Background()
	svc, ms, _ := newService(t)
	addProduct(t, svc, "Salami", 1, "1")
	addProduct(t, svc, "hammer", 1, "1")
	addProduct(t, svc, "Nails", 1, "1")
	addProduct(t, svc, "AMPLIFIER", 1, "1")

	names := func(ps []stock.Product) []string {
		out := make([]string, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.Name)
		}
		return out
	}

	t.Run("case-insensitive substring ordered by name", func(t *testing.T) {
		ps, err := svc.Catalog.FindProducts(ctx, "am")
		require.NoError(t, err)
		assert.Equal(t, []string{"AMPLIFIER", "hammer", "Salami"}, names(ps))
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		ps, err := svc.Catalog.FindProducts(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"AMPLIFIER", "hammer", "Nails", "Salami"}, names(ps))
	})

	t.Run("no match is empty, not an error", func(t *testing.T) {
		ps, err := svc.Catalog.FindProducts(ctx, "zzz")
		require.NoError(t, err)
		assert.NotNil(t, ps)
		assert.Empty(t, ps)
	})

	t.Run("store failure is distinguishable from empty", func(t *testing.T) {
		ms.FailOn("FindProducts", errors.New("connection reset"))
		defer ms.FailOn("FindProducts", nil)

		ps, err := svc.Catalog.FindProducts(ctx, "zzz")
		assert.ErrorIs(t, err, stock.ErrStore)
		assert.Nil(t, ps)
	})
}
