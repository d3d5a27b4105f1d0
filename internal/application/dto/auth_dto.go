package dto

// LoginRequest credenciais de login (clients, mechanics e ADMEC).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterClientRequest cadastro de cliente (aprovação automática).
type RegisterClientRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// RegisterMechanicRequest cadastro de mecânico (fica pendente de aprovação).
type RegisterMechanicRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// UserResponse identidade devolvida após login/registro.
type UserResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Type     string `json:"type"` // client | mechanic | admin
	Position string `json:"position,omitempty"`
	Approved bool   `json:"approved,omitempty"`
}

// LoginResponse token + usuário.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterMechanicResponse mensagem de confirmação do cadastro pendente.
type RegisterMechanicResponse struct {
	Message string `json:"message"`
}
