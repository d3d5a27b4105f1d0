package entity

import "time"

// Tipos de usuário válidos.
const (
	TypeClient   = "client"
	TypeMechanic = "mechanic"
	TypeAdmin    = "admin"
)

// Cargos de mecânico, em ordem crescente de privilégio.
// sub_regional e regional têm o mesmo conjunto de permissões.
const (
	PositionColaborador = "colaborador"
	PositionEncarregado = "encarregado"
	PositionGerente     = "gerente"
	PositionSubRegional = "sub_regional"
	PositionRegional    = "regional"
)

// Client representa um cliente registrado (aprovação automática no cadastro).
type Client struct {
	ID           string
	FullName     string
	Email        string
	Phone        string
	Address      string
	PasswordHash string // bcrypt, nunca texto plano depois de persistir
	IsActive     bool
	CreatedAt    time.Time
}

// Mechanic representa um mecânico da oficina. Entra no sistema com
// Approved = false e só ganha privilégios depois da aprovação do ADMEC.
type Mechanic struct {
	ID           string
	FullName     string
	Email        string
	Phone        string
	PasswordHash string
	Position     string // colaborador, encarregado, gerente, sub_regional, regional
	Approved     bool
	IsActive     bool
	ApprovedBy   string
	ApprovedAt   *time.Time
	CreatedAt    time.Time
}

// PositionOrDefault devolve o cargo do mecânico, ou colaborador quando vazio.
func (m *Mechanic) PositionOrDefault() string {
	if m.Position == "" {
		return PositionColaborador
	}
	return m.Position
}
