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
)

type TransferRepo struct {
	DB DBTX
}

const createTransfer = `-- name: CreateTransfer
INSERT INTO transfers (from_account_id, to_account_id, amount)
VALUES ($1, $2, $3)
RETURNING id, from_account_id, to_account_id, amount, transfer_date
`

func (r *TransferRepo) CreateTransfer(ctx context.Context, fromAccountID, toAccountID int64, amount int64) (models.Transfer, error) {
	var transfer models.Transfer

	if amount <= 0 {
		return transfer, fmt.Errorf("transfer amount must be positive, got %d: %w", amount, apperrors.ErrInvalidAmount)
	}

	rows, _ := r.DB.Query(ctx, createTransfer, fromAccountID, toAccountID, amount)
	transfer, err := pgx.CollectOneRow(rows, rowToTransfer)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return transfer, apperrors.ErrAccountNotFound
		}

		return transfer, fmt.Errorf("db error: %w", err)
	}

	return transfer, nil
}

// Most recent first; id breaks ties for transfers recorded within the same
// timestamp granularity
const listTransfers = `-- name: ListTransfers
SELECT id, from_account_id, to_account_id, amount, transfer_date FROM transfers
WHERE from_account_id = $1 OR to_account_id = $1
ORDER BY transfer_date DESC, id DESC
`

func (r *TransferRepo) ListTransfers(ctx context.Context, accountID int64) ([]models.Transfer, error) {
	rows, _ := r.DB.Query(ctx, listTransfers, accountID)
	transfers, err := pgx.CollectRows(rows, rowToTransfer)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return transfers, nil
}

func rowToTransfer(row pgx.CollectableRow) (models.Transfer, error) {
	var t models.Transfer
	err := row.Scan(&t.ID, &t.FromAccountID, &t.ToAccountID, &t.Amount, &t.TransferDate)
	return t, err
}
