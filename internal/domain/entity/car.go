package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Car é um veículo anunciado para revenda.
type Car struct {
	ID        string
	Brand     string
	Model     string
	Year      int
	Price     decimal.Decimal
	ImageURL  string
	Available bool
	CreatedAt time.Time
}

// Status de uma solicitação de compra.
const (
	PurchaseStatusPending  = "pending"
	PurchaseStatusApproved = "approved"
	PurchaseStatusRejected = "rejected"
)

// CarPurchaseRequest é a solicitação de compra de um veículo feita por um
// cliente; encarregado ou acima aceita ou recusa.
type CarPurchaseRequest struct {
	ID           string
	CarID        string
	CustomerID   string
	CustomerName string
	Contact      string
	Status       string // pending | approved | rejected
	ResolvedBy   string
	CreatedAt    time.Time
}
