package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Flaviof1/controle-estoque/internal/clock"
	"github.com/Flaviof1/controle-estoque/internal/config"
	"github.com/Flaviof1/controle-estoque/internal/export"
	"github.com/Flaviof1/controle-estoque/internal/postgres"
	"github.com/Flaviof1/controle-estoque/internal/report"
	"github.com/Flaviof1/controle-estoque/internal/stock"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dsn string
	root := &cobra.Command{
		Use:          "estoque",
		Short:        "Operator tool for the stock ledger",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&dsn, "dsn", config.Load().PostgresDSN, "PostgreSQL connection string")

	root.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "Create the products and sales tables",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDB(cmd.Context(), dsn, func(ctx context.Context, db *pgxpool.Pool) error {
					if err := postgres.Migrate(ctx, db); err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "report",
			Short: "Print products, sales history and totals",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDB(cmd.Context(), dsn, func(ctx context.Context, db *pgxpool.Pool) error {
					return printReport(ctx, cmd, newService(db))
				})
			},
		},
		newExportCmd(&dsn),
	)
	return root
}

func newExportCmd(dsn *string) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write products and sales history to an xlsx workbook",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd.Context(), *dsn, func(ctx context.Context, db *pgxpool.Pool) error {
				svc := newService(db)
				products, err := svc.Catalog.FindProducts(ctx, "")
				if err != nil {
					return err
				}
				history, err := svc.Ledger.SalesHistory(ctx)
				if err != nil {
					return err
				}
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				if err := export.Write(f, products, history); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				log.Printf("exported %d products and %d sales to %s", len(products), len(history), out)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "estoque.xlsx", "output file")
	return cmd
}

func printReport(ctx context.Context, cmd *cobra.Command, svc *stock.Service) error {
	products, err := svc.Catalog.FindProducts(ctx, "")
	if err != nil {
		return err
	}
	value, err := svc.Ledger.InventoryValue(ctx)
	if err != nil {
		return err
	}
	history, err := svc.Ledger.SalesHistory(ctx)
	if err != nil {
		return err
	}
	totals, err := svc.Ledger.SalesTotals(ctx)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	report.Products(w, products)
	report.History(w, history)
	report.Summary(w, value, totals)
	return nil
}

func newService(db *pgxpool.Pool) *stock.Service {
	return stock.NewService(&postgres.StockStore{DB: db}, clock.NewRealClock())
}

func withDB(ctx context.Context, dsn string, fn func(context.Context, *pgxpool.Pool) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := postgres.Connect(ctx, dsn)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer db.Close()
	return fn(ctx, db)
}
