package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/guaianases/oficina-api/internal/application/dto"
	"github.com/guaianases/oficina-api/internal/domain"
	"github.com/guaianases/oficina-api/internal/domain/entity"
	"github.com/guaianases/oficina-api/internal/domain/repository"
)

// CatalogUseCase administração do catálogo de serviços da oficina.
// A listagem pública fica no WorkshopUseCase; aqui só o CRUD restrito.
type CatalogUseCase struct {
	serviceRepo repository.ServiceRepository
}

// NewCatalogUseCase constrói o caso de uso.
func NewCatalogUseCase(serviceRepo repository.ServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{serviceRepo: serviceRepo}
}

// Create adiciona um serviço ao catálogo.
func (uc *CatalogUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	svc := &entity.Service{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Description:  in.Description,
		PriceInShop:  in.PriceInShop.Decimal,
		PriceOffsite: in.PriceOffsite.Decimal,
		RequiresTow:  in.RequiresTow,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.serviceRepo.Create(svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

// Update edita um serviço existente.
func (uc *CatalogUseCase) Update(id string, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	svc, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		svc.Name = in.Name
	}
	svc.Description = in.Description
	svc.PriceInShop = in.PriceInShop.Decimal
	svc.PriceOffsite = in.PriceOffsite.Decimal
	svc.RequiresTow = in.RequiresTow
	if err := uc.serviceRepo.Update(svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

// Deactivate tira o serviço do catálogo sem apagar histórico de notas.
func (uc *CatalogUseCase) Deactivate(id string) error {
	svc, err := uc.serviceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if svc == nil {
		return domain.ErrNotFound
	}
	return uc.serviceRepo.Deactivate(id)
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		PriceInShop:  dto.Money{Decimal: s.PriceInShop},
		PriceOffsite: dto.Money{Decimal: s.PriceOffsite},
		RequiresTow:  s.RequiresTow,
	}
}
