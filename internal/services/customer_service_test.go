package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/domain/models"
	"rentaldesk/internal/repositories"
)

func TestAddCustomer_NormalizesInput(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec("INSERT INTO Customers").
		WithArgs("Asha Rao", "9000000001", "asha@example.com", nil, "DL-01", nil).
		WillReturnResult(sqlmock.NewResult(4, 1))

	svc := CustomerService{Customers: repositories.CustomerRepository{DB: db}}
	c, err := svc.AddCustomer(context.Background(), models.CustomerInput{
		Name:          "  Asha   Rao ",
		Phone:         " 9000000001",
		Email:         "asha@example.com ",
		LicenseNumber: "DL-01",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), c.ID)
	assert.Equal(t, "Asha Rao", c.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCustomer_MissingLicenseIsValidation(t *testing.T) {
	db, mock := newMock(t)

	svc := CustomerService{Customers: repositories.CustomerRepository{DB: db}}
	_, err := svc.AddCustomer(context.Background(), models.CustomerInput{Name: "Asha", Phone: "9000000001"})

	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "license_number", verr.Field)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCustomer_BadEmailIsValidation(t *testing.T) {
	db, _ := newMock(t)

	svc := CustomerService{Customers: repositories.CustomerRepository{DB: db}}
	_, err := svc.AddCustomer(context.Background(), models.CustomerInput{
		Name: "Asha", Phone: "9000000001", Email: "not-an-email", LicenseNumber: "DL-01",
	})
	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
}

func TestAddCustomer_DuplicatePhone(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectExec("INSERT INTO Customers").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '9000000001' for key 'Customers.uniq_customers_phone'"})

	svc := CustomerService{Customers: repositories.CustomerRepository{DB: db}}
	_, err := svc.AddCustomer(context.Background(), models.CustomerInput{
		Name: "Ravi", Phone: "9000000001", LicenseNumber: "DL-02",
	})
	assert.True(t, domain.IsConstraintViolation(err), "got %v", err)
	assert.Contains(t, err.Error(), "phone already registered")
}
