package dto

import "time"

// CarResponse veículo anunciado.
type CarResponse struct {
	ID        string    `json:"id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Price     Money     `json:"price"`
	ImageURL  string    `json:"image_url,omitempty"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCarRequest anúncio de veículo.
type CreateCarRequest struct {
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	Price    Money  `json:"price"`
	ImageURL string `json:"image_url"`
}

// UpdateCarRequest edição parcial do anúncio.
type UpdateCarRequest struct {
	Brand     *string `json:"brand"`
	Model     *string `json:"model"`
	Year      *int    `json:"year"`
	Price     *Money  `json:"price"`
	ImageURL  *string `json:"image_url"`
	Available *bool   `json:"available"`
}

// CreatePurchaseRequest solicitação de compra de veículo.
type CreatePurchaseRequest struct {
	CarID   string `json:"car_id"`
	Contact string `json:"contact"`
}

// PurchaseRequestResponse solicitação com status.
type PurchaseRequestResponse struct {
	ID           string    `json:"id"`
	CarID        string    `json:"car_id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Contact      string    `json:"contact"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
