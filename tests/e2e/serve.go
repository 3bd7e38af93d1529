package e2e

import (
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nvoronina/bankledger/internal/handlers"
	"github.com/nvoronina/bankledger/internal/logger"
	"github.com/nvoronina/bankledger/internal/repository"
	"github.com/nvoronina/bankledger/internal/repository/postgres"
	"github.com/nvoronina/bankledger/internal/service/customer"
	"github.com/nvoronina/bankledger/internal/service/ledger"
	"github.com/nvoronina/bankledger/internal/testutil"
)

type Services struct {
	CustomerService *customer.CustomerService
	LedgerService   *ledger.LedgerService
	Storage         repository.Storage
}

// Create db transaction and run server with that connection (one connection cause one transaction)
// The created transaction passed to inner function: so, you can safely use testutil.InTx with it
func ServeInTx(dbpool *pgxpool.Pool, t *testing.T, fn func(tx pgx.Tx, srvURL string, services Services)) {
	testutil.InTx(dbpool, t, func(tx pgx.Tx) {
		// Initialize repositories
		storage := postgres.NewStorage(tx)

		// Initialize services
		cs := customer.NewService(storage.Customer())
		ls := ledger.NewService(storage)

		// Complete all together as router
		router := handlers.NewRouter(
			cs,
			ls,
			logger.NewNoOp(),
		)

		// Run http server with the router in transaction
		srv := httptest.NewServer(router)
		defer srv.Close()

		fn(tx, srv.URL, Services{
			CustomerService: cs,
			LedgerService:   ls,
			Storage:         storage,
		})
	})
}
