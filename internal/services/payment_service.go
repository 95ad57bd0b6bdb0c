package services

import (
	"context"
	"database/sql"
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

// PaymentService settles rentals: one payment per rental, for the total plus
// whatever fine is stored at the time of settlement.
type PaymentService struct {
	DB        *sql.DB
	Rentals   repositories.RentalRepository
	Payments  repositories.PaymentRepository
	Events    events.Publisher
	RequestID string
	Today     func() time.Time
}

func (s PaymentService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s PaymentService) today() time.Time {
	if s.Today != nil {
		return utils.DateOnly(s.Today())
	}
	return utils.Today()
}

// ListPending returns unpaid rentals with the amount that would settle them.
func (s PaymentService) ListPending(ctx context.Context) ([]models.PendingRental, error) {
	rentals, err := s.Rentals.ListByPaymentStatus(ctx, models.PaymentPending)
	if err != nil {
		return nil, err
	}
	out := make([]models.PendingRental, 0, len(rentals))
	for _, rt := range rentals {
		out = append(out, models.PendingRental{Rental: rt, AmountDue: rt.AmountDue()})
	}
	return out, nil
}

// RecordPayment inserts the payment and marks the rental Paid in one
// transaction. The amount is read from the locked rental row, never from an
// earlier quote.
func (s PaymentService) RecordPayment(ctx context.Context, rentalID int64, method string) (models.Payment, error) {
	m, err := models.ParsePaymentMethod(method)
	if err != nil {
		return models.Payment{}, err
	}
	if err := requirePositiveID("rental_id", rentalID); err != nil {
		return models.Payment{}, err
	}

	var p models.Payment
	err = intdb.WithTx(ctx, s.db(), func(tx *sql.Tx) error {
		rentals := s.Rentals.WithTx(tx)
		rt, err := rentals.GetForUpdate(ctx, rentalID)
		if err != nil {
			return err
		}
		if rt.IsPaid() {
			return domain.ConflictError{Resource: "rental", Err: domain.ErrAlreadyPaid}
		}

		p = models.Payment{
			RentalID:    rt.ID,
			Amount:      rt.AmountDue(),
			PaymentDate: s.today(),
			Method:      m,
		}
		id, err := s.Payments.WithTx(tx).Create(ctx, p)
		if err != nil {
			return err
		}
		p.ID = id
		return rentals.MarkPaid(ctx, rt.ID)
	})
	if err != nil {
		utils.LogFailure(s.RequestID, "payment", "record", err, zap.Int64("rental_id", rentalID))
		return models.Payment{}, domain.Storage("record payment", err)
	}

	utils.LogEvent(s.RequestID, "payment", "record",
		fmt.Sprintf("payment_id=%d rental_id=%d amount=%s method=%s", p.ID, p.RentalID, utils.FormatMoney(p.Amount), p.Method))
	publish(ctx, s.Events, s.RequestID, events.TopicPaymentRecorded, events.PaymentRecorded{
		PaymentID: p.ID,
		RentalID:  p.RentalID,
		Amount:    p.Amount,
		Method:    string(p.Method),
	})
	return p, nil
}

func (s PaymentService) GetPayment(ctx context.Context, id int64) (models.Payment, error) {
	if err := requirePositiveID("payment_id", id); err != nil {
		return models.Payment{}, err
	}
	return s.Payments.GetByID(ctx, id)
}
