package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/nvoronina/bankledger/internal/apperrors"
	"github.com/nvoronina/bankledger/internal/handlers/render"
	"github.com/nvoronina/bankledger/internal/logger"
	"github.com/nvoronina/bankledger/internal/models"
)

type customerResponse struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"firstName"`
	MiddleName string    `json:"middleName,omitempty"`
	LastName   string    `json:"lastName"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toCustomerResponse(c models.Customer) customerResponse {
	return customerResponse{
		ID:         c.ID,
		FirstName:  c.FirstName,
		MiddleName: c.MiddleName,
		LastName:   c.LastName,
		CreatedAt:  c.CreatedAt,
	}
}

func handleCreateCustomer(customerService customerService, l logger.Logger) http.Handler {
	type request struct {
		FirstName  string `json:"firstName" validate:"required"`
		MiddleName string `json:"middleName"`
		LastName   string `json:"lastName" validate:"required"`
	}

	type response struct {
		Status   int              `json:"status"`
		Message  string           `json:"message"`
		Customer customerResponse `json:"customer"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		customer, err := customerService.CreateCustomer(r.Context(), req.FirstName, req.MiddleName, req.LastName)

		switch err {
		case nil:
			render.JSON(w, response{
				Status:   http.StatusOK,
				Message:  "Successfully created new customer.",
				Customer: toCustomerResponse(customer),
			})
		default:
			l.Error("Failed to create customer", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleGetCustomer(customerService customerService, l logger.Logger) http.Handler {
	type response struct {
		Status   int              `json:"status"`
		Message  string           `json:"message"`
		Customer customerResponse `json:"customer"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customerID, ok := pathID(w, r, "customerID")
		if !ok {
			return
		}

		customer, err := customerService.GetCustomer(r.Context(), customerID)

		switch {
		case err == nil:
			render.JSON(w, response{
				Status:   http.StatusOK,
				Message:  "Successfully retrieved customer.",
				Customer: toCustomerResponse(customer),
			})
		case errors.Is(err, apperrors.ErrCustomerNotFound):
			render.ServiceError(w, "Customer not found", http.StatusNotFound)
		default:
			l.Error("Failed to get customer", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

func handleListCustomers(customerService customerService, l logger.Logger) http.Handler {
	type response struct {
		Status    int                `json:"status"`
		Message   string             `json:"message"`
		Customers []customerResponse `json:"customers"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customers, err := customerService.ListCustomers(r.Context())

		switch err {
		case nil:
			res := response{
				Status:    http.StatusOK,
				Message:   "Successfully retrieved customers.",
				Customers: make([]customerResponse, 0, len(customers)),
			}
			for _, c := range customers {
				res.Customers = append(res.Customers, toCustomerResponse(c))
			}
			render.JSON(w, res)
		default:
			l.Error("Failed to list customers", "error", err)
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
		}
	})
}

// pathID parses an integer route parameter, rendering the error response on
// bad input
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		render.ServiceError(w, "Route parameter must be an integer.", http.StatusBadRequest)
		return 0, false
	}

	return id, true
}
