package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/guaianases/oficina-api/internal/domain/entity"
	"github.com/guaianases/oficina-api/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementação de ServiceRepository (usável com pool ou tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// Create persiste um serviço do catálogo.
func (r *ServiceRepo) Create(s *entity.Service) error {
	query := `
		INSERT INTO services (id, name, description, price_inshop, price_offsite, requires_tow, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, nullIfEmpty(s.Description), s.PriceInShop, s.PriceOffsite,
		s.RequiresTow, s.IsActive, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtém um serviço por ID.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	query := `
		SELECT id, name, description, price_inshop, price_offsite, requires_tow, is_active, created_at
		FROM services WHERE id = $1`
	s, err := scanService(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return s, nil
}

// ListActive devolve os serviços ativos na ordem do catálogo.
func (r *ServiceRepo) ListActive() ([]*entity.Service, error) {
	query := `
		SELECT id, name, description, price_inshop, price_offsite, requires_tow, is_active, created_at
		FROM services WHERE is_active ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Update grava os campos editáveis do serviço.
func (r *ServiceRepo) Update(s *entity.Service) error {
	query := `
		UPDATE services
		SET name = $2, description = $3, price_inshop = $4, price_offsite = $5, requires_tow = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, nullIfEmpty(s.Description), s.PriceInShop, s.PriceOffsite, s.RequiresTow,
	)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Deactivate tira o serviço do catálogo (soft delete).
func (r *ServiceRepo) Deactivate(id string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE services SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate service: %w", err)
	}
	return nil
}

func scanService(row pgx.Row) (*entity.Service, error) {
	var s entity.Service
	var description *string
	if err := row.Scan(&s.ID, &s.Name, &description, &s.PriceInShop, &s.PriceOffsite, &s.RequiresTow, &s.IsActive, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Description = derefStr(description)
	return &s, nil
}
