package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/repositories"
)

func TestInventoryMarkUnavailable(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("UPDATE Vehicles SET available = \\? WHERE vehicle_id = \\?").
		WithArgs(false, int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))

	svc := InventoryService{Vehicles: repositories.VehicleRepository{DB: db}}
	if err := svc.MarkUnavailable(context.Background(), 2); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInventoryMarkUnavailable_UnknownVehicle(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("UPDATE Vehicles SET available = \\?").
		WithArgs(false, int64(9)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM Vehicles WHERE vehicle_id = \\?").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	svc := InventoryService{Vehicles: repositories.VehicleRepository{DB: db}}
	if err := svc.MarkUnavailable(context.Background(), 9); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestInventoryReserve_AlreadyRented(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec("UPDATE Vehicles SET available = 0").
		WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM Vehicles WHERE vehicle_id = \\?").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	svc := InventoryService{Vehicles: repositories.VehicleRepository{DB: db}}
	if err := svc.Reserve(context.Background(), 2); !errors.Is(err, domain.ErrVehicleUnavailable) {
		t.Fatalf("expected vehicle unavailable, got %v", err)
	}
}

func TestInventoryGetVehicle_RejectsBadID(t *testing.T) {
	db, mock := newMock(t)
	svc := InventoryService{Vehicles: repositories.VehicleRepository{DB: db}}
	if _, err := svc.GetVehicle(context.Background(), 0); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected db access: %v", err)
	}
}
