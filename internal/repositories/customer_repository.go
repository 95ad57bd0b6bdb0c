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

type CustomerRepository struct {
	DB intdb.Querier
}

func (r CustomerRepository) db() intdb.Querier {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// WithTx returns a copy bound to tx.
func (r CustomerRepository) WithTx(tx *sql.Tx) CustomerRepository {
	r.DB = tx
	return r
}

const customerColumns = `customer_id, name, phone, COALESCE(email,''), COALESCE(aadhaar_no,''), dl_no, COALESCE(address,'')`

var customerKeyFields = map[string]string{
	"uniq_customers_phone":   "phone",
	"uniq_customers_aadhaar": "national_id",
	"uniq_customers_dl":      "license_number",
}

// Create inserts a customer. Empty optional fields are stored as NULL.
func (r CustomerRepository) Create(ctx context.Context, in models.CustomerInput) (models.Customer, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO Customers (name, phone, email, aadhaar_no, dl_no, address)
		VALUES (?, ?, ?, ?, ?, ?)`,
		in.Name, in.Phone, intdb.NullIfEmpty(in.Email), intdb.NullIfEmpty(in.NationalID), in.LicenseNumber, intdb.NullIfEmpty(in.Address))
	if err != nil {
		if key, ok := duplicateKey(err); ok {
			field := customerKeyFields[key]
			if field == "" {
				field = "phone, national_id or license_number"
			}
			return models.Customer{}, domain.ConflictError{Resource: "customer", Msg: field + " already registered", Err: domain.ErrDuplicate}
		}
		return models.Customer{}, domain.Storage("insert customer", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Customer{}, domain.Storage("insert customer", err)
	}
	return models.Customer{
		ID:            id,
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		NationalID:    in.NationalID,
		LicenseNumber: in.LicenseNumber,
		Address:       in.Address,
	}, nil
}

func (r CustomerRepository) GetByID(ctx context.Context, id int64) (models.Customer, error) {
	var c models.Customer
	err := r.db().QueryRowContext(ctx, `SELECT `+customerColumns+` FROM Customers WHERE customer_id = ? LIMIT 1`, id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.NationalID, &c.LicenseNumber, &c.Address)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, domain.NotFoundError{Resource: "customer", Err: err}
		}
		return models.Customer{}, domain.Storage("load customer", err)
	}
	return c, nil
}

func (r CustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	rows, err := r.db().QueryContext(ctx, `SELECT `+customerColumns+` FROM Customers ORDER BY customer_id`)
	if err != nil {
		return nil, domain.Storage("list customers", err)
	}
	defer rows.Close()

	out := []models.Customer{}
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.NationalID, &c.LicenseNumber, &c.Address); err != nil {
			return nil, domain.Storage("scan customer", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Storage("list customers", err)
	}
	return out, nil
}
