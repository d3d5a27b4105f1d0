package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Locais de atendimento gravados na nota.
const (
	LocationInternal = "internal"
	LocationExternal = "external"
)

// InvoiceItem é uma linha de serviço resolvida no momento da emissão.
type InvoiceItem struct {
	ServiceID   string
	ServiceName string
	Quantity    int
	IsExternal  bool
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// Invoice é o registro imutável de um orçamento finalizado.
// Depois de emitida, uma nota nunca é alterada: só exibida ou deletada
// (operação restrita a sub_regional/regional e admin).
type Invoice struct {
	ID             string
	InvoiceNumber  string // formato de exibição "MGU-<ULID>"
	ClientID       string // identificador informado no orçamento (pode não estar registrado)
	ClientName     string // resolvido na emissão; "Não registrado" quando não há cadastro
	MechanicName   string
	MechanicID     string
	Location       string // internal | external
	ClientCategory string // cliente | policial | samu

	Items           []InvoiceItem
	ExtraPartsValue decimal.Decimal
	PartsTaxPercent decimal.Decimal
	DiscountValue   decimal.Decimal
	DiscountPercent decimal.Decimal

	ServicesSubtotal decimal.Decimal
	PartsSubtotal    decimal.Decimal
	PartsTax         decimal.Decimal
	Subtotal         decimal.Decimal
	DiscountAmount   decimal.Decimal
	Total            decimal.Decimal

	CreatedAt time.Time
}
