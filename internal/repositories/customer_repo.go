package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/promo-campaigns/backend/internal/models"
)

type CustomerRepo struct {
	pool *pgxpool.Pool
}

func NewCustomerRepo(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

func (r *CustomerRepo) Create(ctx context.Context, c *models.Customer) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO customers (email, name)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, c.Email, c.Name).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var c models.Customer
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, name, created_at, updated_at
		FROM customers WHERE id = $1
	`, id).Scan(&c.ID, &c.Email, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var c models.Customer
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, name, created_at, updated_at
		FROM customers WHERE email = $1
	`, email).Scan(&c.ID, &c.Email, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) List(ctx context.Context, limit, offset int) ([]models.Customer, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, email, name, created_at, updated_at
		FROM customers
		ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Email, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepo) Update(ctx context.Context, c *models.Customer) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE customers SET email = $1, name = $2, updated_at = now()
		WHERE id = $3
	`, c.Email, c.Name, c.ID)
	return err
}

// Delete removes the customer; membership edges and usage logs cascade.
func (r *CustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
