package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nvoronina/bankledger/internal/apperrors"
	"github.com/nvoronina/bankledger/internal/models"
	"github.com/nvoronina/bankledger/internal/money"
)

type AccountRepo struct {
	DB DBTX
}

const createAccount = `-- name: CreateAccount
INSERT INTO accounts (customer_id, balance)
VALUES ($1, $2)
RETURNING id, customer_id, balance, created_at, updated_at
`

func (r *AccountRepo) CreateAccount(ctx context.Context, customerID int64, initialBalance int64) (models.Account, error) {
	rows, _ := r.DB.Query(ctx, createAccount, customerID, initialBalance)
	account, err := pgx.CollectOneRow(rows, rowToAccount)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return account, apperrors.ErrCustomerNotFound
		}

		return account, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

const getAccount = `-- name: GetAccount
SELECT id, customer_id, balance, created_at, updated_at FROM accounts
WHERE id = $1
`

func (r *AccountRepo) GetAccount(ctx context.Context, id int64) (models.Account, error) {
	rows, _ := r.DB.Query(ctx, getAccount, id)
	account, err := pgx.CollectOneRow(rows, rowToAccount)

	switch {
	case err == nil:
		return account, nil
	case errors.Is(err, pgx.ErrNoRows):
		return account, apperrors.ErrAccountNotFound
	default:
		return account, fmt.Errorf("db error: %w", err)
	}
}

func (r *AccountRepo) GetBalance(ctx context.Context, id int64) (int64, error) {
	account, err := r.GetAccount(ctx, id)
	return account.Balance, err
}

// Single conditional update: the balance check and the write happen in one
// statement, so two concurrent withdrawals cannot both pass the check on a
// stale read. Zero updated rows means either the account is missing or the
// delta would drive the balance negative; a follow-up read tells which.
const adjustBalance = `-- name: AdjustBalance
UPDATE accounts
SET balance = balance + $2, updated_at = now()
WHERE id = $1 AND balance + $2 >= 0
RETURNING id, customer_id, balance, created_at, updated_at
`

func (r *AccountRepo) AdjustBalance(ctx context.Context, id int64, delta int64) (models.Account, error) {
	rows, _ := r.DB.Query(ctx, adjustBalance, id, delta)
	account, err := pgx.CollectOneRow(rows, rowToAccount)

	switch {
	case err == nil:
		return account, nil
	case errors.Is(err, pgx.ErrNoRows):
		current, getErr := r.GetBalance(ctx, id)
		if getErr != nil {
			return account, getErr
		}

		return account, fmt.Errorf(
			"cannot apply amount of %s to account with balance of %s: %w",
			money.FromMinorUnits(delta), money.FromMinorUnits(current), apperrors.ErrInsufficientFunds,
		)
	default:
		return account, fmt.Errorf("db error: %w", err)
	}
}

func rowToAccount(row pgx.CollectableRow) (models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.CustomerID, &a.Balance, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}
