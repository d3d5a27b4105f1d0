package dto

import "time"

// AddServiceRequest adiciona (ou incrementa) um serviço no orçamento.
type AddServiceRequest struct {
	ServiceID string `json:"service_id"`
}

// SetQuantityRequest fixa a quantidade de uma linha; zero remove.
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuoteRequest atualização parcial dos campos do orçamento.
// Ponteiros distinguem "não enviado" de "enviado com zero".
type UpdateQuoteRequest struct {
	ClientID        *string `json:"client_id"`
	MechanicName    *string `json:"mechanic_name"`
	Location        *string `json:"location"` // internal | external
	ClientCategory  *string `json:"client_category"`
	ExtraPartsValue *Money  `json:"extra_parts_value"`
	PartsTaxPercent *Money  `json:"parts_tax_percent"` // override manual da taxa
	DiscountValue   *Money  `json:"discount_value"`
	DiscountPercent *Money  `json:"discount_percent"`
}

// QuoteLineResponse linha de serviço do orçamento.
type QuoteLineResponse struct {
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name,omitempty"`
	Quantity    int    `json:"quantity"`
	IsExternal  bool   `json:"is_external"`
	UnitPrice   Money  `json:"unit_price"`
	Subtotal    Money  `json:"subtotal"`
}

// TotalsResponse fechamento do orçamento (todos os campos com 2 casas).
type TotalsResponse struct {
	ServicesSubtotal Money `json:"services_subtotal"`
	PartsSubtotal    Money `json:"parts_subtotal"`
	PartsTax         Money `json:"parts_tax"`
	Subtotal         Money `json:"subtotal"`
	DiscountAmount   Money `json:"discount_amount"`
	Total            Money `json:"total"`
}

// QuoteResponse estado corrente do orçamento + totais.
type QuoteResponse struct {
	Lines           []QuoteLineResponse `json:"lines"`
	ExtraPartsValue Money               `json:"extra_parts_value"`
	ClientCategory  string              `json:"client_category"`
	PartsTaxPercent Money               `json:"parts_tax_percent"`
	DiscountValue   Money               `json:"discount_value"`
	DiscountPercent Money               `json:"discount_percent"`
	ClientID        string              `json:"client_id"`
	MechanicName    string              `json:"mechanic_name"`
	Location        string              `json:"location"`
	Totals          TotalsResponse      `json:"totals"`
}

// CounterpartResponse dados do contraparte da nota (cliente ou mecânico
// registrado, ou marcador de não registrado).
type CounterpartResponse struct {
	Kind     string `json:"kind"` // registered_client | registered_mechanic | unregistered
	ID       string `json:"id,omitempty"`
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Position string `json:"position,omitempty"`
}

// InvoiceItemResponse linha de serviço resolvida na nota.
type InvoiceItemResponse struct {
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	Quantity    int    `json:"quantity"`
	IsExternal  bool   `json:"is_external"`
	UnitPrice   Money  `json:"unit_price"`
	Subtotal    Money  `json:"subtotal"`
}

// InvoiceResponse nota fiscal emitida.
type InvoiceResponse struct {
	ID              string                `json:"id"`
	InvoiceNumber   string                `json:"invoice_number"`
	ClientID        string                `json:"client_id"`
	ClientName      string                `json:"client_name"`
	MechanicName    string                `json:"mechanic_name"`
	Location        string                `json:"location"`
	ClientCategory  string                `json:"client_category"`
	Items           []InvoiceItemResponse `json:"items"`
	ExtraPartsValue Money                 `json:"extra_parts_value"`
	PartsTaxPercent Money                 `json:"parts_tax_percent"`
	DiscountValue   Money                 `json:"discount_value"`
	DiscountPercent Money                 `json:"discount_percent"`
	Totals          TotalsResponse        `json:"totals"`
	CreatedAt       time.Time             `json:"created_at"`
}

// ServiceResponse serviço do catálogo.
type ServiceResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PriceInShop  Money  `json:"price_inshop"`
	PriceOffsite Money  `json:"price_offsite"`
	RequiresTow  bool   `json:"requires_tow"`
}

// CreateServiceRequest criação/edição de serviço do catálogo.
type CreateServiceRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	PriceInShop  Money  `json:"price_inshop"`
	PriceOffsite Money  `json:"price_offsite"`
	RequiresTow  bool   `json:"requires_tow"`
}
