// Package quote implementa a calculadora de orçamentos da oficina: seleção
// de serviços, peças extras, taxa por categoria de cliente, descontos e o
// fechamento determinístico dos totais. Todas as operações são síncronas e
// sem efeito colateral; o estado vive na sessão de um único usuário.
package quote

import (
	"github.com/shopspring/decimal"

	"github.com/guaianases/oficina-api/internal/domain/entity"
)

// Categorias de cliente e suas taxas de peças.
const (
	CategoryCliente  = "cliente"
	CategoryPolicial = "policial"
	CategorySAMU     = "samu"
)

var (
	taxCliente  = decimal.NewFromInt(30)
	taxPolicial = decimal.NewFromInt(20)
	taxSAMU     = decimal.NewFromInt(15)

	oneHundred = decimal.NewFromInt(100)
)

// Line é um serviço selecionado no orçamento. IsExternal é congelado na
// primeira inserção: incrementos posteriores reusam o flag da linha, não o
// local corrente do orçamento.
type Line struct {
	ServiceID  string
	Quantity   int
	IsExternal bool
	UnitPrice  decimal.Decimal
	Subtotal   decimal.Decimal
}

// State é o orçamento em andamento de uma sessão da oficina.
type State struct {
	Lines           []Line
	ExtraPartsValue decimal.Decimal
	ClientCategory  string
	PartsTaxPercent decimal.Decimal
	DiscountValue   decimal.Decimal
	DiscountPercent decimal.Decimal
	ClientID        string
	MechanicName    string
	Location        string // internal | external
}

// Totals é o fechamento monetário do orçamento. Cada campo é arredondado a
// 2 casas de forma independente a partir dos valores em precisão cheia; não
// rederive um campo a partir de outro já arredondado.
type Totals struct {
	ServicesSubtotal decimal.Decimal
	PartsSubtotal    decimal.Decimal
	PartsTax         decimal.Decimal
	Subtotal         decimal.Decimal
	DiscountAmount   decimal.Decimal
	Total            decimal.Decimal
}

// NewState cria um orçamento vazio, com categoria e local default.
func NewState() *State {
	return &State{
		ClientCategory: CategoryCliente,
		Location:       entity.LocationInternal,
	}
}

// priceFor escolhe a coluna de preço conforme o flag externo.
func priceFor(svc *entity.Service, external bool) decimal.Decimal {
	if svc == nil {
		return decimal.Zero
	}
	if external {
		return svc.PriceOffsite
	}
	return svc.PriceInShop
}

// AddService adiciona o serviço ao orçamento. Se já existe uma linha para o
// mesmo serviço, incrementa a quantidade e recalcula o subtotal usando o
// flag externo JÁ FIXADO na linha; senão cria a linha com quantidade 1 e
// flag derivado do local corrente.
func (s *State) AddService(svc *entity.Service) {
	if svc == nil {
		return
	}
	for i := range s.Lines {
		if s.Lines[i].ServiceID == svc.ID {
			line := &s.Lines[i]
			line.Quantity++
			line.UnitPrice = priceFor(svc, line.IsExternal)
			line.Subtotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
			return
		}
	}
	external := s.Location == entity.LocationExternal
	price := priceFor(svc, external)
	s.Lines = append(s.Lines, Line{
		ServiceID:  svc.ID,
		Quantity:   1,
		IsExternal: external,
		UnitPrice:  price,
		Subtotal:   price,
	})
}

// SetQuantity fixa a quantidade de uma linha. Quantidade zero ou negativa
// remove a linha por completo; chamadas posteriores com o mesmo serviço se
// comportam como se ela nunca tivesse existido.
func (s *State) SetQuantity(serviceID string, quantity int) {
	for i := range s.Lines {
		if s.Lines[i].ServiceID != serviceID {
			continue
		}
		if quantity <= 0 {
			s.Lines = append(s.Lines[:i], s.Lines[i+1:]...)
			return
		}
		line := &s.Lines[i]
		line.Quantity = quantity
		line.Subtotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
		return
	}
}

// TaxPercentFor devolve a taxa de peças da categoria: cliente 30, policial
// 20, samu 15. Categoria desconhecida cai na taxa de cliente.
func TaxPercentFor(category string) decimal.Decimal {
	switch category {
	case CategoryPolicial:
		return taxPolicial
	case CategorySAMU:
		return taxSAMU
	default:
		return taxCliente
	}
}

// SetExtraParts atualiza o valor de peças extras e sincroniza a taxa.
func (s *State) SetExtraParts(v decimal.Decimal) {
	s.ExtraPartsValue = v
	s.syncPartsTax()
}

// SetClientCategory troca a categoria do cliente e sincroniza a taxa.
func (s *State) SetClientCategory(category string) {
	s.ClientCategory = category
	s.syncPartsTax()
}

// syncPartsTax rederiva a taxa da categoria somente enquanto há valor de
// peças extras. Quando o valor volta a zero a taxa fica como estava; o
// assimétrico é intencional.
func (s *State) syncPartsTax() {
	if s.ExtraPartsValue.GreaterThan(decimal.Zero) {
		s.PartsTaxPercent = TaxPercentFor(s.ClientCategory)
	}
}

// ComputeTotals fecha os totais do orçamento:
//
//	servicesSubtotal = Σ subtotais das linhas
//	partsSubtotal    = valor de peças extras
//	partsTax         = partsSubtotal × taxa/100
//	subtotal         = serviços + peças + taxa
//	discountAmount   = desconto em valor + subtotal × desconto%/100
//	total            = max(0, subtotal − descontos)
//
// Idempotente: o mesmo estado produz sempre o mesmo resultado.
func (s *State) ComputeTotals() Totals {
	servicesSubtotal := decimal.Zero
	for _, line := range s.Lines {
		servicesSubtotal = servicesSubtotal.Add(line.Subtotal)
	}

	partsSubtotal := s.ExtraPartsValue
	partsTax := partsSubtotal.Mul(s.PartsTaxPercent).Div(oneHundred)
	subtotal := servicesSubtotal.Add(partsSubtotal).Add(partsTax)

	discountAmount := s.DiscountValue.Add(subtotal.Mul(s.DiscountPercent).Div(oneHundred))

	total := subtotal.Sub(discountAmount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{
		ServicesSubtotal: servicesSubtotal.Round(2),
		PartsSubtotal:    partsSubtotal.Round(2),
		PartsTax:         partsTax.Round(2),
		Subtotal:         subtotal.Round(2),
		DiscountAmount:   discountAmount.Round(2),
		Total:            total.Round(2),
	}
}

// Reset descarta o orçamento e devolve um estado vazio. O nome do mecânico
// é preservado quando keepMechanic é true (emissor é mecânico logado).
func (s *State) Reset(keepMechanic bool) *State {
	fresh := NewState()
	if keepMechanic {
		fresh.MechanicName = s.MechanicName
	}
	return fresh
}
