package customer

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/nvoronina/bankledger/internal/apperrors"
	"github.com/nvoronina/bankledger/internal/repository/postgres"
	"github.com/nvoronina/bankledger/internal/testutil"
)

func TestCustomer(t *testing.T) {
	t.Parallel()

	pg := testutil.StartPostgresContainer(t)
	t.Cleanup(pg.Terminate)

	// Helper function to create CustomerService within transaction
	inTx := func(t *testing.T, fn func(s *CustomerService)) {
		testutil.InTx(pg.Pool, t, func(tx pgx.Tx) {
			storage := postgres.NewStorage(tx)
			fn(NewService(storage.Customer()))
		})
	}

	t.Run("create and get", func(t *testing.T) {
		inTx(t, func(s *CustomerService) {
			created, err := s.CreateCustomer(t.Context(), "Maria", "Lucia", "Santos")

			require.NoError(t, err, "creating new customer should be ok")
			require.NotZero(t, created.ID)
			require.NotZero(t, created.CreatedAt)

			got, err := s.GetCustomer(t.Context(), created.ID)

			require.NoError(t, err)
			require.Equal(t, created.ID, got.ID)
			require.Equal(t, "Maria", got.FirstName)
			require.Equal(t, "Lucia", got.MiddleName)
			require.Equal(t, "Santos", got.LastName)
		})
	})

	t.Run("get unknown customer fail", func(t *testing.T) {
		inTx(t, func(s *CustomerService) {
			_, err := s.GetCustomer(t.Context(), 100500)

			require.Error(t, err)
			require.ErrorIs(t, err, apperrors.ErrCustomerNotFound)
		})
	})

	t.Run("list", func(t *testing.T) {
		inTx(t, func(s *CustomerService) {
			_, err := s.CreateCustomer(t.Context(), "Anna", "", "Keller")
			require.NoError(t, err)
			_, err = s.CreateCustomer(t.Context(), "Ben", "", "Keller")
			require.NoError(t, err)

			customers, err := s.ListCustomers(t.Context())

			require.NoError(t, err)
			require.Len(t, customers, 2)
		})
	})
}
