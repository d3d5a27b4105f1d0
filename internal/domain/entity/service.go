package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service é um serviço do catálogo da oficina, com preço diferenciado
// para atendimento dentro (inshop) e fora (offsite) da oficina.
type Service struct {
	ID           string
	Name         string
	Description  string
	PriceInShop  decimal.Decimal
	PriceOffsite decimal.Decimal
	RequiresTow  bool // informativo: serviço exige guincho
	IsActive     bool
	CreatedAt    time.Time
}
