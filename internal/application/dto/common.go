package dto

import "github.com/shopspring/decimal"

// PageRequest paginação para listagens.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores default se Limit/Offset estão zerados.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Money é um decimal com parse leniente: entrada ausente, nula ou
// malformada vira 0 em vez de derrubar a requisição. A tela de orçamento
// nunca quebra por número inválido; o valor simplesmente não conta.
type Money struct {
	decimal.Decimal
}

// UnmarshalJSON aceita número, string numérica, null ou lixo (vira zero).
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		m.Decimal = decimal.Zero
		return nil
	}
	m.Decimal = d
	return nil
}

// MarshalJSON serializa como número JSON.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.Decimal.MarshalJSON()
}
