package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nvoronina/bankledger/internal/apperrors"
	"github.com/nvoronina/bankledger/internal/handlers/render"
	"github.com/nvoronina/bankledger/internal/logger"
	"github.com/nvoronina/bankledger/internal/models"
	"github.com/nvoronina/bankledger/internal/money"
)

// Balance serialized in dollars, converted from stored cents
type accountResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	Balance    float64   `json:"balance"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toAccountResponse(a models.Account) accountResponse {
	balance, _ := money.FromMinorUnits(a.Balance).Float64()
	return accountResponse{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Balance:    balance,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func handleOpenAccount(ledgerService ledgerService, l logger.Logger) http.Handler {
	type request struct {
		CustomerID int64 `json:"customerId" validate:"required"`
		// Initial deposit may be zero, so no positivity requirement here
		Balance decimal.Decimal `json:"balance" validate:"money"`
	}

	type response struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Account accountResponse `json:"account"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		account, err := ledgerService.OpenAccount(r.Context(), req.CustomerID, req.Balance)

		switch {
		case err == nil:
			render.JSON(w, response{
				Status:  http.StatusOK,
				Message: "Successfully created new account.",
				Account: toAccountResponse(account),
			})
		case errors.Is(err, apperrors.ErrCustomerNotFound):
			render.ServiceError(w, "Account creation failed. Customer not found.", http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrInvalidAmount):
			render.ServiceError(w, "Initial deposit must be 0 or more with at most 2 decimal places.", http.StatusBadRequest)
		default:
			l.Error("Failed to open account", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleGetBalance(ledgerService ledgerService, l logger.Logger) http.Handler {
	type response struct {
		Status  int     `json:"status"`
		Message string  `json:"message"`
		Balance float64 `json:"balance"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := pathID(w, r, "accountID")
		if !ok {
			return
		}

		balance, err := ledgerService.GetBalance(r.Context(), accountID)

		switch {
		case err == nil:
			dollars, _ := balance.Float64()
			render.JSON(w, response{
				Status:  http.StatusOK,
				Message: "Successfully retrieved account balance.",
				Balance: dollars,
			})
		case errors.Is(err, apperrors.ErrAccountNotFound):
			render.ServiceError(w, "Account not found", http.StatusNotFound)
		default:
			l.Error("Failed to get balance", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleDeposit(ledgerService ledgerService, l logger.Logger) http.Handler {
	return handleBalanceChange(
		func(ctx context.Context, accountID int64, amount decimal.Decimal) (models.Account, error) {
			return ledgerService.Deposit(ctx, accountID, amount)
		},
		"Successfully deposited amount to the account.",
		l,
	)
}

func handleWithdraw(ledgerService ledgerService, l logger.Logger) http.Handler {
	return handleBalanceChange(
		func(ctx context.Context, accountID int64, amount decimal.Decimal) (models.Account, error) {
			return ledgerService.Withdraw(ctx, accountID, amount)
		},
		"Successfully withdrew amount from the account.",
		l,
	)
}

// Deposit and withdraw share request shape and error mapping, only the
// ledger operation differs
func handleBalanceChange(
	op func(ctx context.Context, accountID int64, amount decimal.Decimal) (models.Account, error),
	message string,
	l logger.Logger,
) http.Handler {
	type request struct {
		ID     int64           `json:"id" validate:"required"`
		Amount decimal.Decimal `json:"amount" validate:"dgt0,money"`
	}

	type response struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Account accountResponse `json:"account"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		account, err := op(r.Context(), req.ID, req.Amount)

		switch {
		case err == nil:
			render.JSON(w, response{
				Status:  http.StatusOK,
				Message: message,
				Account: toAccountResponse(account),
			})
		case errors.Is(err, apperrors.ErrAccountNotFound):
			render.ServiceError(w, "Account not found", http.StatusNotFound)
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			render.ServiceError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrInvalidAmount):
			render.ServiceError(w, "Amount must be a number greater than 0 with at most 2 decimal places.", http.StatusBadRequest)
		default:
			l.Error("Failed to adjust balance", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}
