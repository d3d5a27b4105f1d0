package repository

import "github.com/guaianases/oficina-api/internal/domain/entity"

// ClientRepository define o porto de persistência para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByEmail(email string) (*entity.Client, error)
	List(limit, offset int) ([]*entity.Client, error)
}
