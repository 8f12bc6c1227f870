package services

import (
	"context"

	"github.com/ashu-89/FoodOrderingApp-BackEnd-1/internal/model"
)

type CustomerService struct {
	Customers CustomerStore
}

func NewCustomerService(cs CustomerStore) *CustomerService {
	return &CustomerService{Customers: cs}
}

// UpdateCustomer updates a customer's name fields. Last name may be cleared;
// first name must stay non-empty.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customer *model.Customer) (*model.Customer, error) {
	if customer.FirstName == "" {
		return nil, ErrFirstNameEmpty
	}
	if err := s.Customers.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}
