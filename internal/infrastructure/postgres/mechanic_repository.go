package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/guaianases/oficina-api/internal/domain"
	"github.com/guaianases/oficina-api/internal/domain/entity"
	"github.com/guaianases/oficina-api/internal/domain/repository"
)

var _ repository.MechanicRepository = (*MechanicRepo)(nil)

// MechanicRepo implementação de MechanicRepository (usável com pool ou tx).
type MechanicRepo struct {
	q Querier
}

// NewMechanicRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMechanicRepository(q Querier) *MechanicRepo {
	return &MechanicRepo{q: q}
}

const mechanicColumns = `id, full_name, email, phone, password, position, approved, is_active, approved_by, approved_at, created_at`

// Create persiste um novo mecânico (não aprovado).
func (r *MechanicRepo) Create(m *entity.Mechanic) error {
	query := `
		INSERT INTO mechanics (id, full_name, email, phone, password, position, approved, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.FullName, m.Email, nullIfEmpty(m.Phone), m.PasswordHash,
		m.PositionOrDefault(), m.Approved, m.IsActive, m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert mechanic: %w", err)
	}
	return nil
}

// GetByID obtém um mecânico por ID.
func (r *MechanicRepo) GetByID(id string) (*entity.Mechanic, error) {
	query := `SELECT ` + mechanicColumns + ` FROM mechanics WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByEmail obtém um mecânico por email (login).
func (r *MechanicRepo) GetByEmail(email string) (*entity.Mechanic, error) {
	query := `SELECT ` + mechanicColumns + ` FROM mechanics WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email))
}

// List lista o quadro paginado, pendentes primeiro.
func (r *MechanicRepo) List(limit, offset int) ([]*entity.Mechanic, error) {
	query := `SELECT ` + mechanicColumns + `
		FROM mechanics ORDER BY approved ASC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list mechanics: %w", err)
	}
	defer rows.Close()
	var list []*entity.Mechanic
	for rows.Next() {
		m, err := scanMechanic(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update grava aprovação, cargo e flags do mecânico.
func (r *MechanicRepo) Update(m *entity.Mechanic) error {
	query := `
		UPDATE mechanics
		SET position = $2, approved = $3, is_active = $4, approved_by = $5, approved_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.PositionOrDefault(), m.Approved, m.IsActive, nullIfEmpty(m.ApprovedBy), m.ApprovedAt,
	)
	if err != nil {
		return fmt.Errorf("update mechanic: %w", err)
	}
	return nil
}

// Delete remove o mecânico.
func (r *MechanicRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM mechanics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete mechanic: %w", err)
	}
	return nil
}

func (r *MechanicRepo) scanOne(row pgx.Row) (*entity.Mechanic, error) {
	m, err := scanMechanic(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mechanic: %w", err)
	}
	return m, nil
}

func scanMechanic(row pgx.Row) (*entity.Mechanic, error) {
	var m entity.Mechanic
	var phone, approvedBy *string
	if err := row.Scan(
		&m.ID, &m.FullName, &m.Email, &phone, &m.PasswordHash,
		&m.Position, &m.Approved, &m.IsActive, &approvedBy, &m.ApprovedAt, &m.CreatedAt,
	); err != nil {
		return nil, err
	}
	m.Phone = derefStr(phone)
	m.ApprovedBy = derefStr(approvedBy)
	return &m, nil
}
