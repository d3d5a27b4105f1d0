package dto

import "time"

// MechanicResponse mecânico no painel de gestão.
type MechanicResponse struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Position    string    `json:"position"`
	Approved    bool      `json:"approved"`
	IsActive    bool      `json:"is_active"`
	Permissions []string  `json:"permissions"` // descrições legíveis do cargo
	CreatedAt   time.Time `json:"created_at"`
}

// ApproveMechanicRequest aprovação com cargo inicial.
type ApproveMechanicRequest struct {
	Position string `json:"position"` // default colaborador
}

// UpdatePositionRequest troca de cargo.
type UpdatePositionRequest struct {
	Position string `json:"position"`
}

// NotificationResponse aviso interno.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
