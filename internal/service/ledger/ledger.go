// Package ledger implements the account operations: open, deposit, withdraw,
// transfer and history. Amounts cross this boundary as decimal dollars and
// are converted to integer cents before they touch storage.
package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nvoronina/bankledger/internal/apperrors"
	"github.com/nvoronina/bankledger/internal/models"
	"github.com/nvoronina/bankledger/internal/money"
	"github.com/nvoronina/bankledger/internal/repository"
)

type LedgerService struct {
	storage repository.Storage
}

func NewService(storage repository.Storage) *LedgerService {
	return &LedgerService{
		storage: storage,
	}
}

// OpenAccount creates an account for an existing customer.
// Initial balance may be zero but never negative or sub-cent.
func (s *LedgerService) OpenAccount(ctx context.Context, customerID int64, initialBalance decimal.Decimal) (models.Account, error) {
	var account models.Account

	if initialBalance.IsNegative() {
		return account, fmt.Errorf("initial balance must be 0 or more, got %s: %w", initialBalance, apperrors.ErrInvalidAmount)
	}

	cents, err := money.ToMinorUnits(initialBalance)
	if err != nil {
		return account, err
	}

	// Customer existence is checked by the account store itself (FK), no
	// separate lookup needed
	return s.storage.Account().CreateAccount(ctx, customerID, cents)
}

// Deposit credits the account and returns it with the new balance
func (s *LedgerService) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (models.Account, error) {
	cents, err := positiveCents(amount)
	if err != nil {
		return models.Account{}, err
	}

	return s.storage.Account().AdjustBalance(ctx, accountID, cents)
}

// Withdraw debits the account and returns it with the new balance.
// Fails with apperrors.ErrInsufficientFunds if the balance would go negative,
// reporting the requested amount and the current balance.
func (s *LedgerService) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (models.Account, error) {
	cents, err := positiveCents(amount)
	if err != nil {
		return models.Account{}, err
	}

	return s.storage.Account().AdjustBalance(ctx, accountID, -cents)
}

// Transfer moves amount between two accounts and records it.
// Debit, credit and the ledger insert run in one database transaction: a
// failure of any step leaves both balances untouched.
func (s *LedgerService) Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal) (models.Transfer, error) {
	var transfer models.Transfer

	cents, err := positiveCents(amount)
	if err != nil {
		return transfer, err
	}

	// The validation layer rejects same-account transfers too, but this must
	// hold for any caller
	if fromAccountID == toAccountID {
		return transfer, apperrors.ErrSameAccount
	}

	err = s.storage.InTx(ctx, func(storage repository.Storage) error {
		// Adjust the lower id first so two opposite transfers running
		// concurrently lock the rows in the same order
		first, firstDelta := fromAccountID, -cents
		second, secondDelta := toAccountID, +cents
		if second < first {
			first, second = second, first
			firstDelta, secondDelta = secondDelta, firstDelta
		}

		if _, err := storage.Account().AdjustBalance(ctx, first, firstDelta); err != nil {
			return err
		}
		if _, err := storage.Account().AdjustBalance(ctx, second, secondDelta); err != nil {
			return err
		}

		transfer, err = storage.Transfer().CreateTransfer(ctx, fromAccountID, toAccountID, cents)
		return err
	})
	if err != nil {
		return models.Transfer{}, err
	}

	return transfer, nil
}

// GetBalance returns the account balance in dollars
func (s *LedgerService) GetBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	cents, err := s.storage.Account().GetBalance(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	return money.FromMinorUnits(cents), nil
}

// GetHistory returns every transfer where the account is source or
// destination, newest first
func (s *LedgerService) GetHistory(ctx context.Context, accountID int64) ([]models.Transfer, error) {
	return s.storage.Transfer().ListTransfers(ctx, accountID)
}

// positiveCents converts a dollar amount to cents requiring it to be
// strictly positive
func positiveCents(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, fmt.Errorf("amount must be greater than 0, got %s: %w", amount, apperrors.ErrInvalidAmount)
	}

	return money.ToMinorUnits(amount)
}
