package repository

import "github.com/guaianases/oficina-api/internal/domain/entity"

// CarRepository define o porto de persistência para veículos à venda.
type CarRepository interface {
	Create(car *entity.Car) error
	GetByID(id string) (*entity.Car, error)
	ListAvailable() ([]*entity.Car, error)
	List(limit, offset int) ([]*entity.Car, error)
	Update(car *entity.Car) error
	Delete(id string) error
}

// PurchaseRequestRepository define o porto para solicitações de compra.
type PurchaseRequestRepository interface {
	Create(req *entity.CarPurchaseRequest) error
	GetByID(id string) (*entity.CarPurchaseRequest, error)
	ListPending() ([]*entity.CarPurchaseRequest, error)
	List(limit, offset int) ([]*entity.CarPurchaseRequest, error)
	// UpdateStatus grava status e quem resolveu.
	UpdateStatus(id, status, resolvedBy string) error
}
