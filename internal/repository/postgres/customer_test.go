package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/nvoronina/bankledger/internal/apperrors"
	"github.com/nvoronina/bankledger/internal/repository"
	"github.com/nvoronina/bankledger/internal/testutil"
)

func TestCustomerRepo(t *testing.T) {
	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	inTx := func(t *testing.T, outerTx DBTX, fn func(pgx.Tx, repository.Storage)) {
		testutil.InTx(outerTx, t, func(innerTx pgx.Tx) {
			storage := NewStorage(innerTx)
			fn(innerTx, storage)
		})
	}

	t.Run("CreateCustomer", func(t *testing.T) {
		inTx(t, pg.Pool, func(_ pgx.Tx, storage repository.Storage) {
			customer, err := storage.Customer().CreateCustomer(t.Context(), repository.CreateCustomerParams{
				FirstName:  "Maria",
				MiddleName: "Lucia",
				LastName:   "Santos",
			})

			require.NoError(t, err, "customer has to be created ok")
			require.NotZero(t, customer.ID)
			require.Equal(t, "Maria", customer.FirstName)
			require.Equal(t, "Lucia", customer.MiddleName)
			require.Equal(t, "Santos", customer.LastName)
			require.NotZero(t, customer.CreatedAt)
		})
	})

	t.Run("GetCustomer", func(t *testing.T) {
		inTx(t, pg.Pool, func(tx pgx.Tx, storage repository.Storage) {
			customer, err := storage.Customer().CreateCustomer(t.Context(), repository.CreateCustomerParams{
				FirstName: "Pavel",
				LastName:  "Novak",
			})
			require.NoError(t, err)

			t.Run("get existing", func(t *testing.T) {
				inTx(t, tx, func(_ pgx.Tx, storage repository.Storage) {
					got, err := storage.Customer().GetCustomer(t.Context(), customer.ID)

					require.NoError(t, err)
					require.Equal(t, customer.ID, got.ID)
					require.Equal(t, "Pavel", got.FirstName)
				})
			})

			t.Run("get nonexistent", func(t *testing.T) {
				inTx(t, tx, func(_ pgx.Tx, storage repository.Storage) {
					_, err := storage.Customer().GetCustomer(t.Context(), customer.ID+100500)

					require.Error(t, err)
					require.ErrorIs(t, err, apperrors.ErrCustomerNotFound, "should return well known error")
				})
			})
		})
	})

	t.Run("ListCustomers", func(t *testing.T) {
		inTx(t, pg.Pool, func(_ pgx.Tx, storage repository.Storage) {
			first, err := storage.Customer().CreateCustomer(t.Context(), repository.CreateCustomerParams{
				FirstName: "Anna",
				LastName:  "Keller",
			})
			require.NoError(t, err)
			second, err := storage.Customer().CreateCustomer(t.Context(), repository.CreateCustomerParams{
				FirstName: "Ben",
				LastName:  "Keller",
			})
			require.NoError(t, err)

			customers, err := storage.Customer().ListCustomers(t.Context())

			require.NoError(t, err)
			require.Len(t, customers, 2)
			require.Equal(t, first.ID, customers[0].ID, "customers should be ordered by id")
			require.Equal(t, second.ID, customers[1].ID)
		})
	})
}
