package postgres

import (
	"context"
	"fmt"

	"github.com/guaianases/oficina-api/internal/domain/entity"
	"github.com/guaianases/oficina-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implementação de NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	db Querier
}

// NewNotificationRepository constrói o repositório.
func NewNotificationRepository(db Querier) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Insert grava uma notificação.
func (r *NotificationRepo) Insert(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, type, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query, n.ID, n.Type, n.Message, n.IsRead, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// List devolve notificações paginadas, mais recentes primeiro.
func (r *NotificationRepo) List(limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT id, type, message, is_read, created_at
		FROM notifications ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryNotifications(query, limit, offset)
}

// ListUnread devolve somente as não lidas.
func (r *NotificationRepo) ListUnread() ([]*entity.Notification, error) {
	query := `
		SELECT id, type, message, is_read, created_at
		FROM notifications WHERE NOT is_read ORDER BY created_at DESC`
	return r.queryNotifications(query)
}

// MarkRead marca uma notificação como lida.
func (r *NotificationRepo) MarkRead(id string) error {
	_, err := r.db.Exec(context.Background(), `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marca todas como lidas.
func (r *NotificationRepo) MarkAllRead() error {
	_, err := r.db.Exec(context.Background(), `UPDATE notifications SET is_read = TRUE WHERE NOT is_read`)
	if err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	return nil
}

func (r *NotificationRepo) queryNotifications(query string, args ...any) ([]*entity.Notification, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.Type, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
