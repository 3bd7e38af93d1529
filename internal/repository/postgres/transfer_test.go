package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/nvoronina/bankledger/internal/apperrors"
	"github.com/nvoronina/bankledger/internal/models"
	"github.com/nvoronina/bankledger/internal/repository"
	"github.com/nvoronina/bankledger/internal/testutil"
)

func TestTransferRepo(t *testing.T) {
	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	inTx := func(t *testing.T, outerTx DBTX, fn func(pgx.Tx, repository.Storage)) {
		testutil.InTx(outerTx, t, func(innerTx pgx.Tx) {
			storage := NewStorage(innerTx)
			fn(innerTx, storage)
		})
	}

	// Two funded accounts for one customer
	setup := func(t *testing.T, storage repository.Storage) (models.Account, models.Account) {
		t.Helper()

		customer, err := storage.Customer().CreateCustomer(t.Context(), repository.CreateCustomerParams{
			FirstName: "Tomas",
			LastName:  "Berg",
		})
		require.NoError(t, err)

		first, err := storage.Account().CreateAccount(t.Context(), customer.ID, 10000)
		require.NoError(t, err)
		second, err := storage.Account().CreateAccount(t.Context(), customer.ID, 5000)
		require.NoError(t, err)

		return first, second
	}

	t.Run("CreateTransfer", func(t *testing.T) {
		inTx(t, pg.Pool, func(tx pgx.Tx, storage repository.Storage) {
			first, second := setup(t, storage)

			t.Run("create ok", func(t *testing.T) {
				inTx(t, tx, func(_ pgx.Tx, storage repository.Storage) {
					transfer, err := storage.Transfer().CreateTransfer(t.Context(), first.ID, second.ID, 3000)

					require.NoError(t, err)
					require.NotZero(t, transfer.ID)
					require.Equal(t, first.ID, transfer.FromAccountID)
					require.Equal(t, second.ID, transfer.ToAccountID)
					require.Equal(t, int64(3000), transfer.Amount)
					require.NotZero(t, transfer.TransferDate, "transfer date should be assigned by the server")
				})
			})

			t.Run("zero amount rejected", func(t *testing.T) {
				inTx(t, tx, func(_ pgx.Tx, storage repository.Storage) {
					_, err := storage.Transfer().CreateTransfer(t.Context(), first.ID, second.ID, 0)

					require.Error(t, err)
					require.ErrorIs(t, err, apperrors.ErrInvalidAmount)
				})
			})

			t.Run("negative amount rejected", func(t *testing.T) {
				inTx(t, tx, func(_ pgx.Tx, storage repository.Storage) {
					_, err := storage.Transfer().CreateTransfer(t.Context(), first.ID, second.ID, -100)

					require.Error(t, err)
					require.ErrorIs(t, err, apperrors.ErrInvalidAmount)
				})
			})

			t.Run("missing account rejected", func(t *testing.T) {
				inTx(t, tx, func(_ pgx.Tx, storage repository.Storage) {
					_, err := storage.Transfer().CreateTransfer(t.Context(), first.ID+100500, second.ID, 100)

					require.Error(t, err)
					require.ErrorIs(t, err, apperrors.ErrAccountNotFound)
				})
			})
		})
	})

	t.Run("ListTransfers", func(t *testing.T) {
		inTx(t, pg.Pool, func(tx pgx.Tx, storage repository.Storage) {
			first, second := setup(t, storage)

			older, err := storage.Transfer().CreateTransfer(t.Context(), first.ID, second.ID, 1000)
			require.NoError(t, err)
			newer, err := storage.Transfer().CreateTransfer(t.Context(), second.ID, first.ID, 2000)
			require.NoError(t, err)

			t.Run("both directions newest first", func(t *testing.T) {
				inTx(t, tx, func(_ pgx.Tx, storage repository.Storage) {
					transfers, err := storage.Transfer().ListTransfers(t.Context(), first.ID)

					require.NoError(t, err)
					require.Len(t, transfers, 2, "account should see incoming and outgoing transfers")
					require.Equal(t, newer.ID, transfers[0].ID, "most recent transfer should come first")
					require.Equal(t, older.ID, transfers[1].ID)
				})
			})

			t.Run("counterparty sees the same transfers", func(t *testing.T) {
				inTx(t, tx, func(_ pgx.Tx, storage repository.Storage) {
					transfers, err := storage.Transfer().ListTransfers(t.Context(), second.ID)

					require.NoError(t, err)
					require.Len(t, transfers, 2)
				})
			})

			t.Run("no transfers", func(t *testing.T) {
				inTx(t, tx, func(_ pgx.Tx, storage repository.Storage) {
					transfers, err := storage.Transfer().ListTransfers(t.Context(), first.ID+100500)

					require.NoError(t, err, "listing transfers for unknown account is not an error")
					require.Empty(t, transfers)
				})
			})
		})
	})
}
