package entity

import "time"

// Tipos de notificação emitidos pelo sistema.
const (
	NotificationInvoice              = "invoice"
	NotificationCarSale              = "car_sale"
	NotificationMechanicRegistration = "mechanic_registration"
)

// Notification é um aviso interno exibido para cargos com permissão
// view_notifications (encarregado e acima) e para o ADMEC.
type Notification struct {
	ID        string
	Type      string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
