package stock

import "github.com/Flaviof1/controle-estoque/internal/clock"

// Service bundles the three core components over one store.
type Service struct {
	Catalog *Catalog
	Sales   *SaleEngine
	Ledger  *Ledger
}

func NewService(s Store, c clock.Clock) *Service {
	return &Service{
		Catalog: NewCatalog(s),
		Sales:   NewSaleEngine(s, c),
		Ledger:  NewLedger(s),
	}
}
