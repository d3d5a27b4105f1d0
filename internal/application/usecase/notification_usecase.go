package usecase

import (
	"github.com/guaianases/oficina-api/internal/application/dto"
	"github.com/guaianases/oficina-api/internal/domain/entity"
	"github.com/guaianases/oficina-api/internal/domain/repository"
)

// NotificationUseCase leitura e baixa de notificações (view_notifications).
type NotificationUseCase struct {
	notifRepo repository.NotificationRepository
}

// NewNotificationUseCase constrói o caso de uso.
func NewNotificationUseCase(notifRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifRepo: notifRepo}
}

// List devolve as notificações, mais recentes primeiro.
func (uc *NotificationUseCase) List(limit, offset int) ([]*dto.NotificationResponse, error) {
	list, err := uc.notifRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toNotificationResponses(list), nil
}

// ListUnread devolve só as não lidas (badge do painel).
func (uc *NotificationUseCase) ListUnread() ([]*dto.NotificationResponse, error) {
	list, err := uc.notifRepo.ListUnread()
	if err != nil {
		return nil, err
	}
	return toNotificationResponses(list), nil
}

// MarkRead dá baixa em uma notificação.
func (uc *NotificationUseCase) MarkRead(id string) error {
	return uc.notifRepo.MarkRead(id)
}

// MarkAllRead dá baixa em todas.
func (uc *NotificationUseCase) MarkAllRead() error {
	return uc.notifRepo.MarkAllRead()
}

func toNotificationResponses(list []*entity.Notification) []*dto.NotificationResponse {
	out := make([]*dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, &dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}
