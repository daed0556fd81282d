// Package export writes the catalog and the sales ledger as an .xlsx
// workbook.
package export

import (
	"fmt"
	"io"

	"github.com/Flaviof1/controle-estoque/internal/stock"
	"github.com/xuri/excelize/v2"
)

const (
	SheetProducts = "Products"
	SheetSales    = "Sales"
)

var (
	productHeader = []any{"ID", "Name", "Quantity", "Unit Cost"}
	salesHeader   = []any{"ID", "Product ID", "Product", "Quantity", "Unit Price", "Unit Cost",
		"Total Revenue", "Total Cost", "Profit", "Timestamp"}
)

// Write renders products and history into a workbook with one sheet each
// and writes it to w. Money cells are numeric.
func Write(w io.Writer, products []stock.Product, history []stock.SaleDetail) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetProducts); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetSales); err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	if err := setRow(f, SheetProducts, 1, productHeader); err != nil {
		return err
	}
	for i, p := range products {
		row := []any{p.ID, p.Name, p.Quantity, p.UnitCost.InexactFloat64()}
		if err := setRow(f, SheetProducts, i+2, row); err != nil {
			return err
		}
	}

	if err := setRow(f, SheetSales, 1, salesHeader); err != nil {
		return err
	}
	for i, s := range history {
		row := []any{
			s.ID, s.ProductID, s.ProductName, s.Quantity,
			s.UnitPrice.InexactFloat64(), s.UnitCost.InexactFloat64(),
			s.TotalRevenue.InexactFloat64(), s.TotalCost.InexactFloat64(), s.Profit.InexactFloat64(),
			stock.FormatTimestamp(s.Timestamp),
		}
		if err := setRow(f, SheetSales, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, n int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("%s row %d: %w", sheet, n, err)
	}
	return nil
}
