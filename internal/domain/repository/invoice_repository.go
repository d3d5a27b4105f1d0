package repository

import "github.com/guaianases/oficina-api/internal/domain/entity"

// InvoiceRepository define o porto de persistência para notas fiscais.
// Notas são imutáveis: não há Update, só inserção, consulta e deleção.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// GetByNumber busca pelo número de exibição (MGU-...), usado no
	// visor público de notas.
	GetByNumber(number string) (*entity.Invoice, error)
	List(limit, offset int) ([]*entity.Invoice, error)
	ListByClient(clientID string, limit, offset int) ([]*entity.Invoice, error)
	Delete(id string) error
}
