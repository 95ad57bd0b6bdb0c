package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	intconfig "rentaldesk/internal/config"
	intdb "rentaldesk/internal/db"
	"rentaldesk/internal/domain"
	"rentaldesk/internal/domain/models"
)

type RentalRepository struct {
	DB intdb.Querier
}

func (r RentalRepository) db() intdb.Querier {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// WithTx returns a copy bound to tx.
func (r RentalRepository) WithTx(tx *sql.Tx) RentalRepository {
	r.DB = tx
	return r
}

const rentalColumns = `rental_id, customer_id, vehicle_id, start_date, end_date, actual_return,
	COALESCE(total_amount,0), COALESCE(fine_amount,0), COALESCE(payment_status,'Pending')`

func scanRental(s rowScanner) (models.Rental, error) {
	var (
		rt       models.Rental
		returned sql.NullTime
		status   string
	)
	if err := s.Scan(&rt.ID, &rt.CustomerID, &rt.VehicleID, &rt.StartDate, &rt.EndDate, &returned,
		&rt.TotalAmount, &rt.FineAmount, &status); err != nil {
		return models.Rental{}, err
	}
	if returned.Valid {
		t := returned.Time
		rt.ActualReturn = &t
	}
	rt.PaymentStatus = models.PaymentStatus(status)
	return rt, nil
}

// Create inserts an open, Pending rental and returns its id.
func (r RentalRepository) Create(ctx context.Context, rt models.Rental) (int64, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO Rentals (customer_id, vehicle_id, start_date, end_date, total_amount, fine_amount, payment_status)
		VALUES (?, ?, ?, ?, ?, 0, ?)`,
		rt.CustomerID, rt.VehicleID, rt.StartDate, rt.EndDate, rt.TotalAmount, string(models.PaymentPending))
	if err != nil {
		return 0, domain.Storage("insert rental", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.Storage("insert rental", err)
	}
	return id, nil
}

func (r RentalRepository) get(ctx context.Context, id int64, suffix string) (models.Rental, error) {
	row := r.db().QueryRowContext(ctx, `SELECT `+rentalColumns+` FROM Rentals WHERE rental_id = ? LIMIT 1`+suffix, id)
	rt, err := scanRental(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Rental{}, domain.NotFoundError{Resource: "rental", Err: err}
		}
		return models.Rental{}, domain.Storage("load rental", err)
	}
	return rt, nil
}

func (r RentalRepository) GetByID(ctx context.Context, id int64) (models.Rental, error) {
	return r.get(ctx, id, "")
}

// GetForUpdate locks the rental row; only meaningful inside a transaction.
func (r RentalRepository) GetForUpdate(ctx context.Context, id int64) (models.Rental, error) {
	return r.get(ctx, id, " FOR UPDATE")
}

func (r RentalRepository) list(ctx context.Context, where string, args ...any) ([]models.Rental, error) {
	rows, err := r.db().QueryContext(ctx, `SELECT `+rentalColumns+` FROM Rentals `+where+` ORDER BY rental_id`, args...)
	if err != nil {
		return nil, domain.Storage("list rentals", err)
	}
	defer rows.Close()

	out := []models.Rental{}
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, domain.Storage("scan rental", err)
		}
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Storage("list rentals", err)
	}
	return out, nil
}

// ListOpen returns rentals without an actual return date.
func (r RentalRepository) ListOpen(ctx context.Context) ([]models.Rental, error) {
	return r.list(ctx, "WHERE actual_return IS NULL")
}

func (r RentalRepository) ListByPaymentStatus(ctx context.Context, status models.PaymentStatus) ([]models.Rental, error) {
	return r.list(ctx, "WHERE payment_status = ?", string(status))
}

// MarkReturned closes an open rental. It fails with AlreadyReturned when the
// rental was closed in the meantime.
func (r RentalRepository) MarkReturned(ctx context.Context, id int64, returnDate time.Time, fine float64) error {
	res, err := r.db().ExecContext(ctx, `
		UPDATE Rentals SET actual_return = ?, fine_amount = ?
		WHERE rental_id = ? AND actual_return IS NULL`, returnDate, fine, id)
	if err != nil {
		return domain.Storage("mark rental returned", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ConflictError{Resource: "rental", Err: domain.ErrAlreadyReturned}
	}
	return nil
}

// MarkPaid settles a Pending rental. It fails with AlreadyPaid otherwise.
func (r RentalRepository) MarkPaid(ctx context.Context, id int64) error {
	res, err := r.db().ExecContext(ctx, `
		UPDATE Rentals SET payment_status = ?
		WHERE rental_id = ? AND payment_status = ?`, string(models.PaymentPaid), id, string(models.PaymentPending))
	if err != nil {
		return domain.Storage("mark rental paid", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ConflictError{Resource: "rental", Err: domain.ErrAlreadyPaid}
	}
	return nil
}

// Count returns the number of rentals ever created.
func (r RentalRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db().QueryRowContext(ctx, `SELECT COUNT(*) FROM Rentals`).Scan(&n); err != nil {
		return 0, domain.Storage("count rentals", err)
	}
	return n, nil
}
