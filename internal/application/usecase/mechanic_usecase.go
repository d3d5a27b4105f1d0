package usecase

import (
	"time"

	"github.com/guaianases/oficina-api/internal/application/dto"
	"github.com/guaianases/oficina-api/internal/domain"
	"github.com/guaianases/oficina-api/internal/domain/access"
	"github.com/guaianases/oficina-api/internal/domain/entity"
	"github.com/guaianases/oficina-api/internal/domain/repository"
)

// MechanicUseCase gestão do quadro de mecânicos (manage_mechanics).
type MechanicUseCase struct {
	mechanicRepo repository.MechanicRepository
}

// NewMechanicUseCase constrói o caso de uso.
func NewMechanicUseCase(mechanicRepo repository.MechanicRepository) *MechanicUseCase {
	return &MechanicUseCase{mechanicRepo: mechanicRepo}
}

var validPositions = map[string]bool{
	entity.PositionColaborador: true,
	entity.PositionEncarregado: true,
	entity.PositionGerente:     true,
	entity.PositionSubRegional: true,
	entity.PositionRegional:    true,
}

// List devolve o quadro com as descrições de cargo para o painel.
func (uc *MechanicUseCase) List(limit, offset int) ([]*dto.MechanicResponse, error) {
	list, err := uc.mechanicRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MechanicResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMechanicResponse(m))
	}
	return out, nil
}

// Approve libera o mecânico com o cargo inicial informado (default
// colaborador) e registra quem aprovou.
func (uc *MechanicUseCase) Approve(id, approvedBy string, in dto.ApproveMechanicRequest) (*dto.MechanicResponse, error) {
	m, err := uc.mechanicRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if m.Approved {
		return nil, domain.ErrConflict
	}
	position := in.Position
	if position == "" {
		position = entity.PositionColaborador
	}
	if !validPositions[position] {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	m.Approved = true
	m.Position = position
	m.ApprovedBy = approvedBy
	m.ApprovedAt = &now
	if err := uc.mechanicRepo.Update(m); err != nil {
		return nil, err
	}
	return toMechanicResponse(m), nil
}

// UpdatePosition troca o cargo de um mecânico já aprovado.
func (uc *MechanicUseCase) UpdatePosition(id string, in dto.UpdatePositionRequest) (*dto.MechanicResponse, error) {
	if !validPositions[in.Position] {
		return nil, domain.ErrInvalidInput
	}
	m, err := uc.mechanicRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	if !m.Approved {
		return nil, domain.ErrConflict
	}
	m.Position = in.Position
	if err := uc.mechanicRepo.Update(m); err != nil {
		return nil, err
	}
	return toMechanicResponse(m), nil
}

// Remove exclui o mecânico do quadro.
func (uc *MechanicUseCase) Remove(id string) error {
	m, err := uc.mechanicRepo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.mechanicRepo.Delete(id)
}

func toMechanicResponse(m *entity.Mechanic) *dto.MechanicResponse {
	return &dto.MechanicResponse{
		ID:          m.ID,
		FullName:    m.FullName,
		Email:       m.Email,
		Phone:       m.Phone,
		Position:    m.PositionOrDefault(),
		Approved:    m.Approved,
		IsActive:    m.IsActive,
		Permissions: access.PositionDescriptions(m.PositionOrDefault()),
		CreatedAt:   m.CreatedAt,
	}
}
