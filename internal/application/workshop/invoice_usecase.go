package workshop

import (
	"context"

	"github.com/guaianases/oficina-api/internal/application/dto"
	"github.com/guaianases/oficina-api/internal/domain"
	"github.com/guaianases/oficina-api/internal/domain/repository"
)

// InvoiceUseCase consultas e deleção de notas fiscais já emitidas.
// A autorização por rota fica no middleware; aqui só há a semântica.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	pdfGen      InvoicePDFGenerator
}

// NewInvoiceUseCase constrói o caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, pdfGen InvoicePDFGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, pdfGen: pdfGen}
}

// List devolve todas as notas, mais recentes primeiro (view_all_invoices).
func (uc *InvoiceUseCase) List(limit, offset int) ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// ListByClient devolve as notas do próprio cliente (view_own_invoices).
func (uc *InvoiceUseCase) ListByClient(clientID string, limit, offset int) ([]*dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.ListByClient(clientID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// GetByNumber busca pelo número de exibição (visor público de notas).
func (uc *InvoiceUseCase) GetByNumber(number string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// Delete remove uma nota (delete_invoices: sub_regional, regional, admin).
func (uc *InvoiceUseCase) Delete(id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.invoiceRepo.Delete(id)
}

// PDF gera a representação imprimível da nota.
func (uc *InvoiceUseCase) PDF(ctx context.Context, id string) ([]byte, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdfGen.GenerateInvoicePDF(ctx, inv)
}
