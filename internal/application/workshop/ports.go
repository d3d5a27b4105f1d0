package workshop

import (
	"context"

	"github.com/guaianases/oficina-api/internal/domain/entity"
)

// InvoicePDFGenerator gera a representação imprimível de uma nota fiscal.
// Implementado em infrastructure/pdf (Maroto).
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice) ([]byte, error)
}
