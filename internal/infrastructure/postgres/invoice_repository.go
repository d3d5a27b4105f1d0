package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/guaianases/oficina-api/internal/domain/entity"
	"github.com/guaianases/oficina-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementação de InvoiceRepository sobre PostgreSQL.
// Guarda o pool (e não um Querier) porque a inserção de cabeçalho + itens
// precisa de transação própria.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository constrói o repositório.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

const invoiceColumns = `
	id, invoice_number, client_id, client_name, mechanic_name, mechanic_id,
	location, client_category, extra_parts_value, parts_tax_percent,
	discount_value, discount_percent, services_subtotal, parts_subtotal,
	parts_tax, subtotal, discount_amount, total, created_at`

// Create persiste a nota e seus itens na mesma transação. Falha em qualquer
// linha desfaz tudo: nunca fica nota sem itens nem itens órfãos.
func (r *InvoiceRepo) Create(inv *entity.Invoice) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	headerQuery := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err = tx.Exec(ctx, headerQuery,
		inv.ID, inv.InvoiceNumber, inv.ClientID, inv.ClientName, inv.MechanicName, inv.MechanicID,
		inv.Location, inv.ClientCategory, inv.ExtraPartsValue, inv.PartsTaxPercent,
		inv.DiscountValue, inv.DiscountPercent, inv.ServicesSubtotal, inv.PartsSubtotal,
		inv.PartsTax, inv.Subtotal, inv.DiscountAmount, inv.Total, inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("invoice number already exists: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}

	itemQuery := `
		INSERT INTO invoice_items (invoice_id, service_id, service_name, quantity, is_external, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, it := range inv.Items {
		if _, err := tx.Exec(ctx, itemQuery,
			inv.ID, it.ServiceID, it.ServiceName, it.Quantity, it.IsExternal, it.UnitPrice, it.Subtotal,
		); err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtém uma nota completa por ID.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByNumber busca pelo número de exibição (MGU-...).
func (r *InvoiceRepo) GetByNumber(number string) (*entity.Invoice, error) {
	return r.getBy(`WHERE invoice_number = $1`, number)
}

func (r *InvoiceRepo) getBy(where string, arg any) (*entity.Invoice, error) {
	ctx := context.Background()
	query := `SELECT ` + invoiceColumns + ` FROM invoices ` + where
	inv, err := scanInvoice(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	if err := r.loadItems(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// List devolve notas paginadas, mais recentes primeiro.
func (r *InvoiceRepo) List(limit, offset int) ([]*entity.Invoice, error) {
	return r.list(`ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
}

// ListByClient devolve as notas emitidas para um cliente.
func (r *InvoiceRepo) ListByClient(clientID string, limit, offset int) ([]*entity.Invoice, error) {
	return r.list(`WHERE client_id = $3 ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset, clientID)
}

func (r *InvoiceRepo) list(tail string, args ...any) ([]*entity.Invoice, error) {
	ctx := context.Background()
	query := `SELECT ` + invoiceColumns + ` FROM invoices ` + tail
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, inv := range list {
		if err := r.loadItems(ctx, inv); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *InvoiceRepo) loadItems(ctx context.Context, inv *entity.Invoice) error {
	query := `
		SELECT service_id, service_name, quantity, is_external, unit_price, subtotal
		FROM invoice_items WHERE invoice_id = $1 ORDER BY service_name`
	rows, err := r.pool.Query(ctx, query, inv.ID)
	if err != nil {
		return fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(&it.ServiceID, &it.ServiceName, &it.Quantity, &it.IsExternal, &it.UnitPrice, &it.Subtotal); err != nil {
			return fmt.Errorf("scan invoice item: %w", err)
		}
		inv.Items = append(inv.Items, it)
	}
	return rows.Err()
}

// Delete remove a nota; os itens caem por ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	if err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.ClientID, &inv.ClientName, &inv.MechanicName, &inv.MechanicID,
		&inv.Location, &inv.ClientCategory, &inv.ExtraPartsValue, &inv.PartsTaxPercent,
		&inv.DiscountValue, &inv.DiscountPercent, &inv.ServicesSubtotal, &inv.PartsSubtotal,
		&inv.PartsTax, &inv.Subtotal, &inv.DiscountAmount, &inv.Total, &inv.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &inv, nil
}
