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

type VehicleRepository struct {
	DB intdb.Querier
}

func (r VehicleRepository) db() intdb.Querier {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// WithTx returns a copy bound to tx.
func (r VehicleRepository) WithTx(tx *sql.Tx) VehicleRepository {
	r.DB = tx
	return r
}

const vehicleColumns = `vehicle_id, vehicle_type, COALESCE(brand,''), COALESCE(model,''), reg_no, rent_per_day, available`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(s rowScanner) (models.Vehicle, error) {
	var v models.Vehicle
	var category string
	if err := s.Scan(&v.ID, &category, &v.Brand, &v.Model, &v.RegNo, &v.RentPerDay, &v.Available); err != nil {
		return models.Vehicle{}, err
	}
	v.Category = models.Category(category)
	return v, nil
}

func (r VehicleRepository) list(ctx context.Context, where string) ([]models.Vehicle, error) {
	rows, err := r.db().QueryContext(ctx, `SELECT `+vehicleColumns+` FROM Vehicles `+where+` ORDER BY vehicle_id`)
	if err != nil {
		return nil, domain.Storage("list vehicles", err)
	}
	defer rows.Close()

	out := []models.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, domain.Storage("scan vehicle", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Storage("list vehicles", err)
	}
	return out, nil
}

func (r VehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	return r.list(ctx, "")
}

func (r VehicleRepository) ListAvailable(ctx context.Context) ([]models.Vehicle, error) {
	return r.list(ctx, "WHERE available = 1")
}

func (r VehicleRepository) GetByID(ctx context.Context, id int64) (models.Vehicle, error) {
	row := r.db().QueryRowContext(ctx, `SELECT `+vehicleColumns+` FROM Vehicles WHERE vehicle_id = ? LIMIT 1`, id)
	v, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vehicle{}, domain.NotFoundError{Resource: "vehicle", Err: err}
		}
		return models.Vehicle{}, domain.Storage("load vehicle", err)
	}
	return v, nil
}

func (r VehicleRepository) exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db().QueryRowContext(ctx, `SELECT 1 FROM Vehicles WHERE vehicle_id = ? LIMIT 1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domain.Storage("check vehicle", err)
	}
	return true, nil
}

// SetAvailable flips the flag unconditionally. A zero row count is only
// NotFound when the row is really missing, since MySQL may not count
// unchanged rows.
func (r VehicleRepository) SetAvailable(ctx context.Context, id int64, available bool) error {
	res, err := r.db().ExecContext(ctx, `UPDATE Vehicles SET available = ? WHERE vehicle_id = ?`, available, id)
	if err != nil {
		return domain.Storage("update vehicle availability", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	ok, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}

// ReserveIfAvailable flips available to false only if it is currently true.
func (r VehicleRepository) ReserveIfAvailable(ctx context.Context, id int64) error {
	res, err := r.db().ExecContext(ctx, `UPDATE Vehicles SET available = 0 WHERE vehicle_id = ? AND available = 1`, id)
	if err != nil {
		return domain.Storage("reserve vehicle", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	ok, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return domain.ConflictError{Resource: "vehicle", Err: domain.ErrVehicleUnavailable}
}
