package repository

import (
	"context"

	"github.com/nvoronina/bankledger/internal/models"
)

// Customer repository interface
type CustomerRepo interface {
	CreateCustomer(ctx context.Context, arg CreateCustomerParams) (models.Customer, error)

	// Get customer by its id
	// If customer not found must return apperrors.ErrCustomerNotFound
	GetCustomer(ctx context.Context, id int64) (models.Customer, error)

	// List all customers ordered by id
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

type CreateCustomerParams struct {
	FirstName  string
	MiddleName string
	LastName   string
}

// Account repository interface
type AccountRepo interface {
	// Create account for an existing customer with the initial balance in
	// minor units. If the customer does not exist must return
	// apperrors.ErrCustomerNotFound
	CreateAccount(ctx context.Context, customerID int64, initialBalance int64) (models.Account, error)

	// Get account by its id
	// If account not found must return apperrors.ErrAccountNotFound
	GetAccount(ctx context.Context, id int64) (models.Account, error)

	// Get account balance in minor units
	GetBalance(ctx context.Context, id int64) (int64, error)

	// Apply balance += delta as one atomic conditional update.
	// If the resulting balance would be negative, nothing is changed and
	// apperrors.ErrInsufficientFunds is returned (wrapped with the current
	// balance). Concurrent calls on the same account must not lose updates.
	AdjustBalance(ctx context.Context, id int64, delta int64) (models.Account, error)
}

// Transfer repository interface. Transfers are append only: no update or
// delete methods exist by design.
type TransferRepo interface {
	// Record a completed transfer, amount in minor units, amount > 0
	CreateTransfer(ctx context.Context, fromAccountID, toAccountID int64, amount int64) (models.Transfer, error)

	// All transfers where the account is source or destination,
	// newest first. Empty slice (not an error) when there are none.
	ListTransfers(ctx context.Context, accountID int64) ([]models.Transfer, error)
}

// Storage combines every repository and the transactional scope over them
type Storage interface {
	Customer() CustomerRepo
	Account() AccountRepo
	Transfer() TransferRepo

	// Run fn within one database transaction. The Storage passed to fn is
	// bound to that transaction. Commit if fn returns nil, rollback otherwise.
	InTx(ctx context.Context, fn func(Storage) error) error
}
