package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"rentaldesk/internal/repositories"
)

var (
	rentalCols   = []string{"rental_id", "customer_id", "vehicle_id", "start_date", "end_date", "actual_return", "total_amount", "fine_amount", "payment_status"}
	vehicleCols  = []string{"vehicle_id", "vehicle_type", "brand", "model", "reg_no", "rent_per_day", "available"}
	customerCols = []string{"customer_id", "name", "phone", "email", "aadhaar_no", "dl_no", "address"}
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newRentalService(db *sql.DB, pub *recordingPublisher) RentalService {
	svc := RentalService{
		DB:        db,
		Rentals:   repositories.RentalRepository{DB: db},
		Customers: repositories.CustomerRepository{DB: db},
		Inventory: InventoryService{Vehicles: repositories.VehicleRepository{DB: db}},
		RequestID: "req-test",
	}
	// a typed nil would still satisfy events.Publisher
	if pub != nil {
		svc.Events = pub
	}
	return svc
}

type recordingPublisher struct {
	topics   []string
	payloads []any
}

func (p *recordingPublisher) Publish(_ context.Context, _ string, topic string, payload any) error {
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, payload)
	return nil
}
