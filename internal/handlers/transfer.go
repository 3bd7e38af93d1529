package handlers

import (
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

// Amount serialized in dollars, converted from stored cents
type transferResponse struct {
	ID            int64     `json:"id"`
	FromAccountID int64     `json:"fromAccountId"`
	ToAccountID   int64     `json:"toAccountId"`
	Amount        float64   `json:"amount"`
	TransferDate  time.Time `json:"transferDate"`
}

func toTransferResponse(t models.Transfer) transferResponse {
	amount, _ := money.FromMinorUnits(t.Amount).Float64()
	return transferResponse{
		ID:            t.ID,
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		Amount:        amount,
		TransferDate:  t.TransferDate,
	}
}

func handleTransfer(ledgerService ledgerService, l logger.Logger) http.Handler {
	type request struct {
		FromAccountID  int64           `json:"fromAccountId" validate:"required"`
		ToAccountID    int64           `json:"toAccountId" validate:"required"`
		TransferAmount decimal.Decimal `json:"transferAmount" validate:"dgt0,money"`
	}

	type response struct {
		Status   int              `json:"status"`
		Message  string           `json:"message"`
		Transfer transferResponse `json:"transfer"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		if req.FromAccountID == req.ToAccountID {
			render.ServiceError(w, "Cannot transfer within the same account.", http.StatusBadRequest)
			return
		}

		transfer, err := ledgerService.Transfer(r.Context(), req.FromAccountID, req.ToAccountID, req.TransferAmount)

		switch {
		case err == nil:
			render.JSON(w, response{
				Status:   http.StatusOK,
				Message:  "Successfully completed account transfer.",
				Transfer: toTransferResponse(transfer),
			})
		case errors.Is(err, apperrors.ErrAccountNotFound):
			render.ServiceError(w, "Account not found", http.StatusNotFound)
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			render.ServiceError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrSameAccount):
			render.ServiceError(w, "Cannot transfer within the same account.", http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrInvalidAmount):
			render.ServiceError(w, "Transfer amount must be a number greater than 0 with at most 2 decimal places.", http.StatusBadRequest)
		default:
			l.Error("Failed to transfer", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleTransferHistory(ledgerService ledgerService, l logger.Logger) http.Handler {
	type response struct {
		Status    int                `json:"status"`
		Message   string             `json:"message"`
		Transfers []transferResponse `json:"transfers"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := pathID(w, r, "accountID")
		if !ok {
			return
		}

		transfers, err := ledgerService.GetHistory(r.Context(), accountID)

		switch err {
		case nil:
			res := response{
				Status:    http.StatusOK,
				Message:   "Successfully retrieved account transfer history.",
				Transfers: make([]transferResponse, 0, len(transfers)),
			}
			for _, t := range transfers {
				res.Transfers = append(res.Transfers, toTransferResponse(t))
			}
			render.JSON(w, res)
		default:
			l.Error("Failed to get transfer history", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}
