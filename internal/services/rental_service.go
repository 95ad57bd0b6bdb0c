package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	intconfig "rentaldesk/internal/config"
	intdb "rentaldesk/internal/db"
	"rentaldesk/internal/domain"
	"rentaldesk/internal/domain/models"
	"rentaldesk/internal/events"
	"rentaldesk/internal/repositories"
	"rentaldesk/internal/utils"
)

// RentalService owns the rental state machine: booking opens a rental and
// takes the vehicle out of inventory, return closes it and puts it back.
type RentalService struct {
	DB        *sql.DB
	Rentals   repositories.RentalRepository
	Customers repositories.CustomerRepository
	Inventory InventoryService
	Events    events.Publisher
	RequestID string
}

type BookingInput struct {
	CustomerID int64
	VehicleID  int64
	StartDate  time.Time
	EndDate    time.Time
}

// BookingQuote is shown to the desk before the booking is confirmed.
type BookingQuote struct {
	domain.RentalQuote
	CustomerID int64          `json:"customer_id"`
	Vehicle    models.Vehicle `json:"vehicle"`
	StartDate  time.Time      `json:"start_date"`
	EndDate    time.Time      `json:"end_date"`
}

// ReturnQuote describes the outcome of returning a rental on a given date.
type ReturnQuote struct {
	RentalID   int64     `json:"rental_id"`
	VehicleID  int64     `json:"vehicle_id"`
	EndDate    time.Time `json:"end_date"`
	ReturnDate time.Time `json:"return_date"`
	DaysLate   int       `json:"days_late"`
	FineAmount float64   `json:"fine_amount"`
	AmountDue  float64   `json:"amount_due"`
}

func (q BookingQuote) MarshalJSON() ([]byte, error) {
	type alias BookingQuote
	return json.Marshal(struct {
		alias
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}{alias(q), utils.FormatDate(q.StartDate), utils.FormatDate(q.EndDate)})
}

func (q ReturnQuote) MarshalJSON() ([]byte, error) {
	type alias ReturnQuote
	return json.Marshal(struct {
		alias
		EndDate    string `json:"end_date"`
		ReturnDate string `json:"return_date"`
	}{alias(q), utils.FormatDate(q.EndDate), utils.FormatDate(q.ReturnDate)})
}

func (s RentalService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (in BookingInput) normalize() (BookingInput, error) {
	if err := requirePositiveID("customer_id", in.CustomerID); err != nil {
		return in, err
	}
	if err := requirePositiveID("vehicle_id", in.VehicleID); err != nil {
		return in, err
	}
	in.StartDate = utils.DateOnly(in.StartDate)
	in.EndDate = utils.DateOnly(in.EndDate)
	if _, err := domain.RentalDays(in.StartDate, in.EndDate); err != nil {
		return in, err
	}
	return in, nil
}

// QuoteRental computes the estimate without writing anything. It fails when
// the vehicle is already rented so the desk can pick another one.
func (s RentalService) QuoteRental(ctx context.Context, in BookingInput) (BookingQuote, error) {
	in, err := in.normalize()
	if err != nil {
		return BookingQuote{}, err
	}
	if _, err := s.Customers.GetByID(ctx, in.CustomerID); err != nil {
		return BookingQuote{}, err
	}
	v, err := s.Inventory.GetVehicle(ctx, in.VehicleID)
	if err != nil {
		return BookingQuote{}, err
	}
	if !v.Available {
		return BookingQuote{}, domain.ConflictError{Resource: "vehicle", Err: domain.ErrVehicleUnavailable}
	}
	q, err := domain.QuoteRental(v.RentPerDay, in.StartDate, in.EndDate)
	if err != nil {
		return BookingQuote{}, err
	}
	return BookingQuote{RentalQuote: q, CustomerID: in.CustomerID, Vehicle: v, StartDate: in.StartDate, EndDate: in.EndDate}, nil
}

// BookRental re-checks every precondition and then, in one transaction,
// reserves the vehicle and inserts the rental.
func (s RentalService) BookRental(ctx context.Context, in BookingInput) (models.Rental, error) {
	in, err := in.normalize()
	if err != nil {
		return models.Rental{}, err
	}

	var rental models.Rental
	err = intdb.WithTx(ctx, s.db(), func(tx *sql.Tx) error {
		if _, err := s.Customers.WithTx(tx).GetByID(ctx, in.CustomerID); err != nil {
			return err
		}
		inv := s.Inventory.WithTx(tx)
		if err := inv.Reserve(ctx, in.VehicleID); err != nil {
			return err
		}
		v, err := inv.GetVehicle(ctx, in.VehicleID)
		if err != nil {
			return err
		}
		q, err := domain.QuoteRental(v.RentPerDay, in.StartDate, in.EndDate)
		if err != nil {
			return err
		}

		rental = models.Rental{
			CustomerID:    in.CustomerID,
			VehicleID:     in.VehicleID,
			StartDate:     in.StartDate,
			EndDate:       in.EndDate,
			TotalAmount:   q.TotalAmount,
			PaymentStatus: models.PaymentPending,
		}
		id, err := s.Rentals.WithTx(tx).Create(ctx, rental)
		if err != nil {
			return err
		}
		rental.ID = id
		return nil
	})
	if err != nil {
		utils.LogFailure(s.RequestID, "rental", "book", err, zap.Int64("vehicle_id", in.VehicleID))
		return models.Rental{}, domain.Storage("book rental", err)
	}

	utils.LogEvent(s.RequestID, "rental", "book",
		fmt.Sprintf("rental_id=%d vehicle_id=%d total=%s", rental.ID, rental.VehicleID, utils.FormatMoney(rental.TotalAmount)))
	publish(ctx, s.Events, s.RequestID, events.TopicRentalBooked, events.RentalBooked{
		RentalID:    rental.ID,
		CustomerID:  rental.CustomerID,
		VehicleID:   rental.VehicleID,
		StartDate:   rental.StartDate,
		EndDate:     rental.EndDate,
		TotalAmount: rental.TotalAmount,
	})
	return rental, nil
}

func quoteReturn(rt models.Rental, returnDate time.Time) (ReturnQuote, error) {
	if !rt.IsOpen() {
		return ReturnQuote{}, domain.ConflictError{Resource: "rental", Err: domain.ErrAlreadyReturned}
	}
	returnDate = utils.DateOnly(returnDate)
	if returnDate.Before(utils.DateOnly(rt.StartDate)) {
		return ReturnQuote{}, domain.ValidationError{Field: "return_date", Msg: "must not be before start_date", Err: domain.ErrInvalidDateRange}
	}
	fine := domain.ComputeFine(rt.EndDate, returnDate)
	return ReturnQuote{
		RentalID:   rt.ID,
		VehicleID:  rt.VehicleID,
		EndDate:    rt.EndDate,
		ReturnDate: returnDate,
		DaysLate:   domain.DaysLate(rt.EndDate, returnDate),
		FineAmount: fine,
		AmountDue:  domain.AmountDue(rt.TotalAmount, fine),
	}, nil
}

// QuoteReturn shows the fine a return on returnDate would incur.
func (s RentalService) QuoteReturn(ctx context.Context, rentalID int64, returnDate time.Time) (ReturnQuote, error) {
	if err := requirePositiveID("rental_id", rentalID); err != nil {
		return ReturnQuote{}, err
	}
	rt, err := s.Rentals.GetByID(ctx, rentalID)
	if err != nil {
		return ReturnQuote{}, err
	}
	return quoteReturn(rt, returnDate)
}

// ReturnVehicle closes an open rental, records the fine and puts the vehicle
// back into inventory, all in one transaction.
func (s RentalService) ReturnVehicle(ctx context.Context, rentalID int64, returnDate time.Time) (ReturnQuote, error) {
	if err := requirePositiveID("rental_id", rentalID); err != nil {
		return ReturnQuote{}, err
	}

	var q ReturnQuote
	err := intdb.WithTx(ctx, s.db(), func(tx *sql.Tx) error {
		rentals := s.Rentals.WithTx(tx)
		rt, err := rentals.GetForUpdate(ctx, rentalID)
		if err != nil {
			return err
		}
		q, err = quoteReturn(rt, returnDate)
		if err != nil {
			return err
		}
		if err := rentals.MarkReturned(ctx, rt.ID, q.ReturnDate, q.FineAmount); err != nil {
			return err
		}
		return s.Inventory.WithTx(tx).MarkAvailable(ctx, rt.VehicleID)
	})
	if err != nil {
		utils.LogFailure(s.RequestID, "rental", "return", err, zap.Int64("rental_id", rentalID))
		return ReturnQuote{}, domain.Storage("return vehicle", err)
	}

	utils.LogEvent(s.RequestID, "rental", "return",
		fmt.Sprintf("rental_id=%d days_late=%d fine=%s", q.RentalID, q.DaysLate, utils.FormatMoney(q.FineAmount)))
	publish(ctx, s.Events, s.RequestID, events.TopicRentalReturned, events.RentalReturned{
		RentalID:   q.RentalID,
		VehicleID:  q.VehicleID,
		ReturnDate: q.ReturnDate,
		DaysLate:   q.DaysLate,
		FineAmount: q.FineAmount,
	})
	return q, nil
}

func (s RentalService) GetRental(ctx context.Context, id int64) (models.Rental, error) {
	if err := requirePositiveID("rental_id", id); err != nil {
		return models.Rental{}, err
	}
	return s.Rentals.GetByID(ctx, id)
}

// ListOpen returns rentals that can still be returned.
func (s RentalService) ListOpen(ctx context.Context) ([]models.Rental, error) {
	return s.Rentals.ListOpen(ctx)
}
