package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/domain/models"
)

func TestCustomerCreate_StoresEmptyOptionalsAsNull(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO Customers").
		WithArgs("Asha", "9000000001", nil, nil, "DL-01", nil).
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := CustomerRepository{DB: db}
	c, err := repo.Create(context.Background(), models.CustomerInput{Name: "Asha", Phone: "9000000001", LicenseNumber: "DL-01"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if c.ID != 7 {
		t.Fatalf("expected id 7, got %d", c.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCustomerCreate_DuplicatePhoneIsConstraintViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO Customers").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '9000000001' for key 'Customers.uniq_customers_phone'"})

	repo := CustomerRepository{DB: db}
	_, err = repo.Create(context.Background(), models.CustomerInput{Name: "Ravi", Phone: "9000000001", LicenseNumber: "DL-02"})
	if !domain.IsConstraintViolation(err) {
		t.Fatalf("expected constraint violation, got %v", err)
	}
	if !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate in chain")
	}
	if err.Error() != "customer conflict: phone already registered" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestCustomerCreate_OtherErrorsAreStorageFailures(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO Customers").WillReturnError(errors.New("connection refused"))

	_, err = CustomerRepository{DB: db}.Create(context.Background(), models.CustomerInput{Name: "A", Phone: "1", LicenseNumber: "L"})
	if !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestCustomerList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"customer_id", "name", "phone", "email", "aadhaar_no", "dl_no", "address"}).
		AddRow(1, "Asha", "9000000001", "", "", "DL-01", "").
		AddRow(2, "Ravi", "9000000002", "ravi@example.com", "1234", "DL-02", "Patia")
	mock.ExpectQuery("SELECT (.+) FROM Customers ORDER BY customer_id").WillReturnRows(rows)

	list, err := CustomerRepository{DB: db}.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list) != 2 || list[1].Email != "ravi@example.com" {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestCustomerGetByID_Missing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM Customers WHERE customer_id").WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"customer_id"}))

	_, err = CustomerRepository{DB: db}.GetByID(context.Background(), 99)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
