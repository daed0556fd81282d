// Package report renders ledger figures as text tables for the CLI.
package report

import (
	"io"

	"github.com/Flaviof1/controle-estoque/internal/stock"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string { return d.StringFixed(2) }

// Summary prints inventory value and sales totals.
func Summary(w io.Writer, inventoryValue decimal.Decimal, t stock.Totals) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle("Ledger")
	tw.AppendHeader(table.Row{"Figure", "Amount"})
	tw.AppendRows([]table.Row{
		{"Inventory value", money(inventoryValue)},
		{"Revenue", money(t.Revenue)},
		{"Cost", money(t.Cost)},
		{"Profit", money(t.Profit)},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	tw.SetStyle(table.StyleLight)
	tw.Render()
}

// History prints one line per sale, newest first as given.
func History(w io.Writer, history []stock.SaleDetail) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle("Sales")
	tw.AppendHeader(table.Row{"ID", "Timestamp", "Product", "Qty", "Unit Price", "Unit Cost", "Revenue", "Cost", "Profit"})
	for _, s := range history {
		tw.AppendRow(table.Row{
			s.ID, stock.FormatTimestamp(s.Timestamp), s.ProductName, s.Quantity,
			money(s.UnitPrice), money(s.UnitCost),
			money(s.TotalRevenue), money(s.TotalCost), money(s.Profit),
		})
	}
	sales := make([]stock.Sale, 0, len(history))
	for _, s := range history {
		sales = append(sales, s.Sale)
	}
	tot := stock.Summarize(sales)
	tw.AppendFooter(table.Row{"", "", "", "", "", "Total", money(tot.Revenue), money(tot.Cost), money(tot.Profit)})
	tw.SetStyle(table.StyleLight)
	tw.Render()
}

// Products prints the catalog with each line valued at cost.
func Products(w io.Writer, products []stock.Product) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle("Products")
	tw.AppendHeader(table.Row{"ID", "Name", "Quantity", "Unit Cost", "Value"})
	for _, p := range products {
		tw.AppendRow(table.Row{p.ID, p.Name, p.Quantity, money(p.UnitCost), money(p.Value())})
	}
	tw.SetStyle(table.StyleLight)
	tw.Render()
}
