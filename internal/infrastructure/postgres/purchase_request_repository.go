package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/guaianases/oficina-api/internal/domain/entity"
	"github.com/guaianases/oficina-api/internal/domain/repository"
)

var _ repository.PurchaseRequestRepository = (*PurchaseRequestRepo)(nil)

// PurchaseRequestRepo implementação de PurchaseRequestRepository sobre PostgreSQL.
type PurchaseRequestRepo struct {
	db Querier
}

// NewPurchaseRequestRepository constrói o repositório.
func NewPurchaseRequestRepository(db Querier) *PurchaseRequestRepo {
	return &PurchaseRequestRepo{db: db}
}

const purchaseRequestColumns = `id, car_id, customer_id, customer_name, contact, status, resolved_by, created_at`

// Create insere uma solicitação de compra com status pending.
func (r *PurchaseRequestRepo) Create(req *entity.CarPurchaseRequest) error {
	query := `
		INSERT INTO car_purchase_requests (` + purchaseRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		req.ID, req.CarID, req.CustomerID, req.CustomerName, req.Contact,
		req.Status, nullIfEmpty(req.ResolvedBy), req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase request: %w", err)
	}
	return nil
}

// GetByID obtém uma solicitação por ID.
func (r *PurchaseRequestRepo) GetByID(id string) (*entity.CarPurchaseRequest, error) {
	query := `SELECT ` + purchaseRequestColumns + ` FROM car_purchase_requests WHERE id = $1`
	req, err := scanPurchaseRequest(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase request: %w", err)
	}
	return req, nil
}

// ListPending devolve as solicitações ainda não resolvidas, mais antigas primeiro.
func (r *PurchaseRequestRepo) ListPending() ([]*entity.CarPurchaseRequest, error) {
	query := `
		SELECT ` + purchaseRequestColumns + `
		FROM car_purchase_requests WHERE status = $1 ORDER BY created_at ASC`
	return r.queryRequests(query, entity.PurchaseStatusPending)
}

// List devolve todas as solicitações, paginado.
func (r *PurchaseRequestRepo) List(limit, offset int) ([]*entity.CarPurchaseRequest, error) {
	query := `
		SELECT ` + purchaseRequestColumns + `
		FROM car_purchase_requests ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryRequests(query, limit, offset)
}

// UpdateStatus grava o desfecho da solicitação e quem resolveu.
func (r *PurchaseRequestRepo) UpdateStatus(id, status, resolvedBy string) error {
	query := `UPDATE car_purchase_requests SET status = $2, resolved_by = $3 WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query, id, status, resolvedBy)
	if err != nil {
		return fmt.Errorf("update purchase request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("purchase request %s not found", id)
	}
	return nil
}

func (r *PurchaseRequestRepo) queryRequests(query string, args ...any) ([]*entity.CarPurchaseRequest, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.CarPurchaseRequest
	for rows.Next() {
		req, err := scanPurchaseRequest(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, req)
	}
	return list, rows.Err()
}

func scanPurchaseRequest(row pgx.Row) (*entity.CarPurchaseRequest, error) {
	var req entity.CarPurchaseRequest
	var resolvedBy *string
	if err := row.Scan(
		&req.ID, &req.CarID, &req.CustomerID, &req.CustomerName, &req.Contact,
		&req.Status, &resolvedBy, &req.CreatedAt,
	); err != nil {
		return nil, err
	}
	req.ResolvedBy = derefStr(resolvedBy)
	return &req, nil
}
