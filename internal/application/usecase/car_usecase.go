package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/guaianases/oficina-api/internal/application/dto"
	"github.com/guaianases/oficina-api/internal/domain"
	"github.com/guaianases/oficina-api/internal/domain/entity"
	"github.com/guaianases/oficina-api/internal/domain/repository"
)

// CarUseCase anúncios de veículos e solicitações de compra.
type CarUseCase struct {
	carRepo     repository.CarRepository
	requestRepo repository.PurchaseRequestRepository
	notifRepo   repository.NotificationRepository
}

// NewCarUseCase constrói o caso de uso.
func NewCarUseCase(
	carRepo repository.CarRepository,
	requestRepo repository.PurchaseRequestRepository,
	notifRepo repository.NotificationRepository,
) *CarUseCase {
	return &CarUseCase{carRepo: carRepo, requestRepo: requestRepo, notifRepo: notifRepo}
}

// ListAvailable devolve os veículos disponíveis (vitrine pública).
func (uc *CarUseCase) ListAvailable() ([]*dto.CarResponse, error) {
	list, err := uc.carRepo.ListAvailable()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CarResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCarResponse(c))
	}
	return out, nil
}

// Create anuncia um veículo (post_cars).
func (uc *CarUseCase) Create(in dto.CreateCarRequest) (*dto.CarResponse, error) {
	if in.Brand == "" || in.Model == "" {
		return nil, domain.ErrInvalidInput
	}
	car := &entity.Car{
		ID:        uuid.New().String(),
		Brand:     in.Brand,
		Model:     in.Model,
		Year:      in.Year,
		Price:     in.Price.Decimal,
		ImageURL:  in.ImageURL,
		Available: true,
		CreatedAt: time.Now(),
	}
	if err := uc.carRepo.Create(car); err != nil {
		return nil, err
	}
	return toCarResponse(car), nil
}

// Update edita um anúncio (manage_cars).
func (uc *CarUseCase) Update(id string, in dto.UpdateCarRequest) (*dto.CarResponse, error) {
	car, err := uc.carRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, domain.ErrNotFound
	}
	if in.Brand != nil {
		car.Brand = *in.Brand
	}
	if in.Model != nil {
		car.Model = *in.Model
	}
	if in.Year != nil {
		car.Year = *in.Year
	}
	if in.Price != nil {
		car.Price = in.Price.Decimal
	}
	if in.ImageURL != nil {
		car.ImageURL = *in.ImageURL
	}
	if in.Available != nil {
		car.Available = *in.Available
	}
	if err := uc.carRepo.Update(car); err != nil {
		return nil, err
	}
	return toCarResponse(car), nil
}

// Delete remove um anúncio (manage_cars).
func (uc *CarUseCase) Delete(id string) error {
	car, err := uc.carRepo.GetByID(id)
	if err != nil {
		return err
	}
	if car == nil {
		return domain.ErrNotFound
	}
	return uc.carRepo.Delete(id)
}

// RequestPurchase registra a solicitação de compra de um cliente e emite a
// notificação para quem gerencia vendas.
func (uc *CarUseCase) RequestPurchase(customerID, customerName string, in dto.CreatePurchaseRequest) (*dto.PurchaseRequestResponse, error) {
	if in.CarID == "" {
		return nil, domain.ErrInvalidInput
	}
	car, err := uc.carRepo.GetByID(in.CarID)
	if err != nil {
		return nil, err
	}
	if car == nil || !car.Available {
		return nil, domain.ErrNotFound
	}
	req := &entity.CarPurchaseRequest{
		ID:           uuid.New().String(),
		CarID:        in.CarID,
		CustomerID:   customerID,
		CustomerName: customerName,
		Contact:      in.Contact,
		Status:       entity.PurchaseStatusPending,
		CreatedAt:    time.Now(),
	}
	if err := uc.requestRepo.Create(req); err != nil {
		return nil, err
	}
	_ = uc.notifRepo.Insert(&entity.Notification{
		ID:        uuid.New().String(),
		Type:      entity.NotificationCarSale,
		Message:   fmt.Sprintf("Nova solicitação de compra: %s %s - Cliente: %s", car.Brand, car.Model, customerName),
		IsRead:    false,
		CreatedAt: time.Now(),
	})
	return toPurchaseResponse(req), nil
}

// ListRequests devolve as solicitações (manage_purchase_requests).
func (uc *CarUseCase) ListRequests(limit, offset int) ([]*dto.PurchaseRequestResponse, error) {
	list, err := uc.requestRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toPurchaseResponse(r))
	}
	return out, nil
}

// ResolveRequest aprova ou recusa uma solicitação pendente. Aprovar também
// tira o carro da vitrine.
func (uc *CarUseCase) ResolveRequest(id, status, resolvedBy string) error {
	if status != entity.PurchaseStatusApproved && status != entity.PurchaseStatusRejected {
		return domain.ErrInvalidInput
	}
	req, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return err
	}
	if req == nil {
		return domain.ErrNotFound
	}
	if req.Status != entity.PurchaseStatusPending {
		return domain.ErrConflict
	}
	if err := uc.requestRepo.UpdateStatus(id, status, resolvedBy); err != nil {
		return err
	}
	if status == entity.PurchaseStatusApproved {
		if car, _ := uc.carRepo.GetByID(req.CarID); car != nil {
			car.Available = false
			_ = uc.carRepo.Update(car)
		}
	}
	return nil
}

func toCarResponse(c *entity.Car) *dto.CarResponse {
	return &dto.CarResponse{
		ID:        c.ID,
		Brand:     c.Brand,
		Model:     c.Model,
		Year:      c.Year,
		Price:     dto.Money{Decimal: c.Price},
		ImageURL:  c.ImageURL,
		Available: c.Available,
		CreatedAt: c.CreatedAt,
	}
}

func toPurchaseResponse(r *entity.CarPurchaseRequest) *dto.PurchaseRequestResponse {
	return &dto.PurchaseRequestResponse{
		ID:           r.ID,
		CarID:        r.CarID,
		CustomerID:   r.CustomerID,
		CustomerName: r.CustomerName,
		Contact:      r.Contact,
		Status:       r.Status,
		CreatedAt:    r.CreatedAt,
	}
}
