package handlers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/nvoronina/bankledger/internal/handlers/middleware"
	"github.com/nvoronina/bankledger/internal/logger"
	"github.com/nvoronina/bankledger/internal/models"
)

// chain applies middlewares in the given order: m1(m2(...(h)))
func chain(h http.Handler, mds ...func(next http.Handler) http.Handler) http.Handler {
	for i := len(mds) - 1; i >= 0; i-- {
		h = mds[i](h)
	}
	return h
}

func NewRouter(
	customerService customerService,
	ledgerService ledgerService,
	logger logger.Logger,
) http.Handler {
	api := http.NewServeMux()

	api.Handle("POST /customers", handleCreateCustomer(customerService, logger))
	api.Handle("GET /customers", handleListCustomers(customerService, logger))
	api.Handle("GET /customers/{customerID}", handleGetCustomer(customerService, logger))

	api.Handle("POST /accounts", handleOpenAccount(ledgerService, logger))
	api.Handle("GET /accounts/{accountID}/balance", handleGetBalance(ledgerService, logger))
	api.Handle("POST /accounts/deposit", handleDeposit(ledgerService, logger))
	api.Handle("POST /accounts/withdraw", handleWithdraw(ledgerService, logger))

	api.Handle("POST /transfers", handleTransfer(ledgerService, logger))
	api.Handle("GET /transfers/history/{accountID}", handleTransferHistory(ledgerService, logger))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))

	handler := chain(root,
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(logger),
	)

	return handler
}

type customerService interface {
	CreateCustomer(ctx context.Context, firstName, middleName, lastName string) (models.Customer, error)

	// Has to return apperrors.ErrCustomerNotFound if customer not found
	GetCustomer(ctx context.Context, id int64) (models.Customer, error)

	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

type ledgerService interface {
	// Has to return apperrors.ErrCustomerNotFound if customer not found
	// and apperrors.ErrInvalidAmount for negative or sub-cent balances
	OpenAccount(ctx context.Context, customerID int64, initialBalance decimal.Decimal) (models.Account, error)

	Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (models.Account, error)

	// Has to return apperrors.ErrInsufficientFunds when the balance would
	// go negative
	Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (models.Account, error)

	// Has to return apperrors.ErrSameAccount for same-account transfers
	Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal) (models.Transfer, error)

	GetBalance(ctx context.Context, accountID int64) (decimal.Decimal, error)
	GetHistory(ctx context.Context, accountID int64) ([]models.Transfer, error)
}
