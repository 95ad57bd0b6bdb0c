package repositories

import (
	"context"
	"database/sql"
	"errors"

	intconfig "rentaldesk/internal/config"
	intdb "rentaldesk/internal/db"
	"rentaldesk/internal/domain"
	"rentaldesk/internal/domain/models"
)

type PaymentRepository struct {
	DB intdb.Querier
}

func (r PaymentRepository) db() intdb.Querier {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// WithTx returns a copy bound to tx.
func (r PaymentRepository) WithTx(tx *sql.Tx) PaymentRepository {
	r.DB = tx
	return r
}

// Create inserts a payment. Payments.rental_id is unique, so a second
// payment for the same rental surfaces as AlreadyPaid.
func (r PaymentRepository) Create(ctx context.Context, p models.Payment) (int64, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO Payments (rental_id, amount, payment_date, method)
		VALUES (?, ?, ?, ?)`, p.RentalID, p.Amount, p.PaymentDate, string(p.Method))
	if err != nil {
		if _, ok := duplicateKey(err); ok {
			return 0, domain.ConflictError{Resource: "rental", Err: domain.ErrAlreadyPaid}
		}
		return 0, domain.Storage("insert payment", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.Storage("insert payment", err)
	}
	return id, nil
}

func (r PaymentRepository) GetByID(ctx context.Context, id int64) (models.Payment, error) {
	var (
		p      models.Payment
		method string
	)
	err := r.db().QueryRowContext(ctx, `
		SELECT payment_id, rental_id, amount, payment_date, method
		FROM Payments WHERE payment_id = ? LIMIT 1`, id).
		Scan(&p.ID, &p.RentalID, &p.Amount, &p.PaymentDate, &method)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Payment{}, domain.NotFoundError{Resource: "payment", Err: err}
		}
		return models.Payment{}, domain.Storage("load payment", err)
	}
	p.Method = models.PaymentMethod(method)
	return p, nil
}

// SumAmount is the total of every recorded payment; zero when there are none.
func (r PaymentRepository) SumAmount(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db().QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM Payments`).Scan(&total); err != nil {
		return 0, domain.Storage("sum payments", err)
	}
	return total, nil
}
