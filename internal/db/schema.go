package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rentaldesk/internal/utils"
)

// Tables lists the store tables in creation order.
var Tables = []string{"Customers", "Vehicles", "Rentals", "Payments"}

var schemaDDL = []string{`
CREATE TABLE IF NOT EXISTS Customers (
	customer_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	phone VARCHAR(32) NOT NULL,
	email VARCHAR(255) NULL,
	aadhaar_no VARCHAR(32) NULL,
	dl_no VARCHAR(64) NOT NULL,
	address TEXT NULL,
	UNIQUE KEY uniq_customers_phone (phone),
	UNIQUE KEY uniq_customers_aadhaar (aadhaar_no),
	UNIQUE KEY uniq_customers_dl (dl_no)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`, `
CREATE TABLE IF NOT EXISTS Vehicles (
	vehicle_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	vehicle_type VARCHAR(16) NOT NULL,
	brand VARCHAR(100) NULL,
	model VARCHAR(100) NULL,
	reg_no VARCHAR(32) NOT NULL,
	rent_per_day DECIMAL(12,2) NOT NULL,
	available BOOLEAN NOT NULL DEFAULT 1,
	UNIQUE KEY uniq_vehicles_reg_no (reg_no),
	CONSTRAINT chk_vehicles_type CHECK (vehicle_type IN ('Bike','Car')),
	CONSTRAINT chk_vehicles_rate CHECK (rent_per_day > 0)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`, `
CREATE TABLE IF NOT EXISTS Rentals (
	rental_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	customer_id BIGINT NOT NULL,
	vehicle_id BIGINT NOT NULL,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	actual_return DATE NULL,
	total_amount DECIMAL(12,2) NOT NULL,
	fine_amount DECIMAL(12,2) NOT NULL DEFAULT 0,
	payment_status VARCHAR(16) NOT NULL DEFAULT 'Pending',
	KEY idx_rentals_vehicle_open (vehicle_id, actual_return),
	KEY idx_rentals_payment_status (payment_status),
	CONSTRAINT chk_rentals_payment_status CHECK (payment_status IN ('Pending','Paid')),
	CONSTRAINT fk_rentals_customer FOREIGN KEY (customer_id) REFERENCES Customers(customer_id),
	CONSTRAINT fk_rentals_vehicle FOREIGN KEY (vehicle_id) REFERENCES Vehicles(vehicle_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`, `
CREATE TABLE IF NOT EXISTS Payments (
	payment_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	rental_id BIGINT NOT NULL,
	amount DECIMAL(12,2) NOT NULL,
	payment_date DATE NOT NULL DEFAULT (CURRENT_DATE),
	method VARCHAR(16) NOT NULL,
	UNIQUE KEY uniq_payments_rental (rental_id),
	CONSTRAINT chk_payments_method CHECK (method IN ('Cash','UPI','PayTM','Card')),
	CONSTRAINT fk_payments_rental FOREIGN KEY (rental_id) REFERENCES Rentals(rental_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
}

// SeedVehicle is one row of the starter fleet.
type SeedVehicle struct {
	Category   string
	Brand      string
	Model      string
	RegNo      string
	RentPerDay float64
}

// StarterFleet is inserted on provisioning; existing registrations are left untouched.
var StarterFleet = []SeedVehicle{
	{"Bike", "Hero", "Splendor Plus", "OD-33-AB-1234", 400},
	{"Bike", "Honda", "Activa 6G", "OD-33-AC-5678", 500},
	{"Car", "Maruti Suzuki", "Swift", "OD-33-CA-1111", 1500},
	{"Car", "Hyundai", "i20", "OD-33-CB-2222", 2000},
}

// EnsureSchema creates missing tables and seeds the starter fleet.
func EnsureSchema(ctx context.Context, q Querier) error {
	for _, ddl := range schemaDDL {
		if _, err := q.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	seeded := int64(0)
	for _, v := range StarterFleet {
		res, err := q.ExecContext(ctx, `
			INSERT IGNORE INTO Vehicles (vehicle_type, brand, model, reg_no, rent_per_day)
			VALUES (?, ?, ?, ?, ?)`,
			v.Category, v.Brand, v.Model, v.RegNo, v.RentPerDay)
		if err != nil {
			return fmt.Errorf("seed vehicle %s: %w", v.RegNo, err)
		}
		n, _ := res.RowsAffected()
		seeded += n
	}

	utils.Logger().Info("schema ready", zap.Int64("vehicles_seeded", seeded))
	return nil
}

// MissingTables returns the store tables not present in the current schema.
func MissingTables(ctx context.Context, q Querier) []string {
	missing := []string{}
	for _, t := range Tables {
		if !HasTable(ctx, q, t) {
			missing = append(missing, t)
		}
	}
	return missing
}
