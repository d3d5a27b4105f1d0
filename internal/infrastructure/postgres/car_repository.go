package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/guaianases/oficina-api/internal/domain/entity"
	"github.com/guaianases/oficina-api/internal/domain/repository"
)

var _ repository.CarRepository = (*CarRepo)(nil)

// CarRepo implementação de CarRepository sobre PostgreSQL.
type CarRepo struct {
	db Querier
}

// NewCarRepository constrói o repositório.
func NewCarRepository(db Querier) *CarRepo {
	return &CarRepo{db: db}
}

const carColumns = `id, brand, model, year, price, image_url, available, created_at`

// Create insere um veículo.
func (r *CarRepo) Create(car *entity.Car) error {
	query := `
		INSERT INTO cars (` + carColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		car.ID, car.Brand, car.Model, car.Year, car.Price, car.ImageURL, car.Available, car.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert car: %w", err)
	}
	return nil
}

// GetByID obtém um veículo por ID.
func (r *CarRepo) GetByID(id string) (*entity.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	car, err := scanCar(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get car: %w", err)
	}
	return car, nil
}

// ListAvailable devolve somente veículos ainda à venda (vitrine pública).
func (r *CarRepo) ListAvailable() ([]*entity.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE available ORDER BY created_at DESC`
	return r.queryCars(query)
}

// List devolve todos os veículos, paginado.
func (r *CarRepo) List(limit, offset int) ([]*entity.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryCars(query, limit, offset)
}

// Update grava os campos mutáveis do veículo.
func (r *CarRepo) Update(car *entity.Car) error {
	query := `
		UPDATE cars
		SET brand = $2, model = $3, year = $4, price = $5, image_url = $6, available = $7
		WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query,
		car.ID, car.Brand, car.Model, car.Year, car.Price, car.ImageURL, car.Available,
	)
	if err != nil {
		return fmt.Errorf("update car: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("car %s not found", car.ID)
	}
	return nil
}

// Delete remove um veículo do anúncio.
func (r *CarRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	return nil
}

func (r *CarRepo) queryCars(query string, args ...any) ([]*entity.Car, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	defer rows.Close()
	var list []*entity.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, car)
	}
	return list, rows.Err()
}

func scanCar(row pgx.Row) (*entity.Car, error) {
	var c entity.Car
	if err := row.Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.Price, &c.ImageURL, &c.Available, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
