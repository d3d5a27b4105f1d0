package repository

import "github.com/guaianases/oficina-api/internal/domain/entity"

// NotificationRepository define o porto de persistência para notificações.
type NotificationRepository interface {
	Insert(n *entity.Notification) error
	List(limit, offset int) ([]*entity.Notification, error)
	ListUnread() ([]*entity.Notification, error)
	MarkRead(id string) error
	MarkAllRead() error
}
