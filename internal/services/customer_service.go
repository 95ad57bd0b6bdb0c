package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rentaldesk/internal/domain/models"
	"rentaldesk/internal/repositories"
	"rentaldesk/internal/utils"
)

type CustomerService struct {
	Customers repositories.CustomerRepository
	RequestID string
}

// AddCustomer validates and stores a new customer. Phone, national id and
// license number must be unique.
func (s CustomerService) AddCustomer(ctx context.Context, in models.CustomerInput) (models.Customer, error) {
	in = normalizeCustomer(in)
	if err := validateStruct(in); err != nil {
		return models.Customer{}, err
	}

	c, err := s.Customers.Create(ctx, in)
	if err != nil {
		utils.LogFailure(s.RequestID, "customer", "add", err)
		return models.Customer{}, err
	}
	utils.LogEvent(s.RequestID, "customer", "add", fmt.Sprintf("customer_id=%d", c.ID), zap.Int64("customer_id", c.ID))
	return c, nil
}

func (s CustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.Customers.List(ctx)
}

func normalizeCustomer(in models.CustomerInput) models.CustomerInput {
	return models.CustomerInput{
		Name:          utils.NormalizeSpace(in.Name),
		Phone:         utils.TrimOrEmpty(in.Phone),
		Email:         utils.TrimOrEmpty(in.Email),
		NationalID:    utils.TrimOrEmpty(in.NationalID),
		LicenseNumber: utils.TrimOrEmpty(in.LicenseNumber),
		Address:       utils.TrimOrEmpty(in.Address),
	}
}
