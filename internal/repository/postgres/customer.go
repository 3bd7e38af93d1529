package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nvoronina/bankledger/internal/apperrors"
	"github.com/nvoronina/bankledger/internal/models"
	"github.com/nvoronina/bankledger/internal/repository"
)

type CustomerRepo struct {
	DB DBTX
}

const createCustomer = `-- name: CreateCustomer
INSERT INTO customers (first_name, middle_name, last_name)
VALUES ($1, $2, $3)
RETURNING id, created_at, first_name, middle_name, last_name
`

func (r *CustomerRepo) CreateCustomer(ctx context.Context, arg repository.CreateCustomerParams) (models.Customer, error) {
	rows, _ := r.DB.Query(ctx, createCustomer, arg.FirstName, arg.MiddleName, arg.LastName)
	customer, err := pgx.CollectOneRow(rows, rowToCustomer)

	if err != nil {
		return customer, fmt.Errorf("db error: %w", err)
	}

	return customer, nil
}

const getCustomer = `-- name: GetCustomer
SELECT id, created_at, first_name, middle_name, last_name FROM customers
WHERE id = $1
`

func (r *CustomerRepo) GetCustomer(ctx context.Context, id int64) (models.Customer, error) {
	rows, _ := r.DB.Query(ctx, getCustomer, id)
	customer, err := pgx.CollectOneRow(rows, rowToCustomer)

	switch {
	case err == nil:
		return customer, nil
	case errors.Is(err, pgx.ErrNoRows):
		return customer, apperrors.ErrCustomerNotFound
	default:
		return customer, fmt.Errorf("db error: %w", err)
	}
}

const listCustomers = `-- name: ListCustomers
SELECT id, created_at, first_name, middle_name, last_name FROM customers
ORDER BY id
`

func (r *CustomerRepo) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	rows, _ := r.DB.Query(ctx, listCustomers)
	customers, err := pgx.CollectRows(rows, rowToCustomer)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return customers, nil
}

func rowToCustomer(row pgx.CollectableRow) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(&c.ID, &c.CreatedAt, &c.FirstName, &c.MiddleName, &c.LastName)
	return c, err
}
