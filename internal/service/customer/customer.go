package customer

import (
	"context"

	"github.com/nvoronina/bankledger/internal/models"
	"github.com/nvoronina/bankledger/internal/repository"
)

type CustomerService struct {
	// Repository to access long term data
	customerRepo repository.CustomerRepo
}

func NewService(customerRepo repository.CustomerRepo) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, firstName, middleName, lastName string) (models.Customer, error) {
	return s.customerRepo.CreateCustomer(ctx, repository.CreateCustomerParams{
		FirstName:  firstName,
		MiddleName: middleName,
		LastName:   lastName,
	})
}

// GetCustomer returns the customer or apperrors.ErrCustomerNotFound
func (s *CustomerService) GetCustomer(ctx context.Context, id int64) (models.Customer, error) {
	return s.customerRepo.GetCustomer(ctx, id)
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.customerRepo.ListCustomers(ctx)
}
