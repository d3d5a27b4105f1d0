package repository

import "github.com/guaianases/oficina-api/internal/domain/entity"

// MechanicRepository define o porto de persistência para Mechanic.
type MechanicRepository interface {
	Create(mechanic *entity.Mechanic) error
	GetByID(id string) (*entity.Mechanic, error)
	GetByEmail(email string) (*entity.Mechanic, error)
	List(limit, offset int) ([]*entity.Mechanic, error)
	// Update grava approved, position, approved_by e approved_at.
	Update(mechanic *entity.Mechanic) error
	Delete(id string) error
}
