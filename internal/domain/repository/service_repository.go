package repository

import "github.com/guaianases/oficina-api/internal/domain/entity"

// ServiceRepository define o porto de persistência para o catálogo de serviços.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	// ListActive devolve os serviços ativos na ordem do catálogo.
	ListActive() ([]*entity.Service, error)
	Update(service *entity.Service) error
	Deactivate(id string) error
}
