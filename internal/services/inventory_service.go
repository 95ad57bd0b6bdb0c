package services

import (
	"context"
	"database/sql"

	"rentaldesk/internal/domain/models"
	"rentaldesk/internal/repositories"
)

// InventoryService tracks vehicle availability. The flag flips are only
// called by RentalService inside its transactions.
type InventoryService struct {
	Vehicles repositories.VehicleRepository
}

// WithTx returns a copy whose writes run on tx.
func (s InventoryService) WithTx(tx *sql.Tx) InventoryService {
	s.Vehicles = s.Vehicles.WithTx(tx)
	return s
}

// ListVehicles returns the whole fleet with availability flags.
func (s InventoryService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.Vehicles.List(ctx)
}

func (s InventoryService) ListAvailable(ctx context.Context) ([]models.Vehicle, error) {
	return s.Vehicles.ListAvailable(ctx)
}

func (s InventoryService) GetVehicle(ctx context.Context, id int64) (models.Vehicle, error) {
	if err := requirePositiveID("vehicle_id", id); err != nil {
		return models.Vehicle{}, err
	}
	return s.Vehicles.GetByID(ctx, id)
}

// MarkAvailable puts a vehicle back into inventory; called on return.
func (s InventoryService) MarkAvailable(ctx context.Context, id int64) error {
	return s.Vehicles.SetAvailable(ctx, id, true)
}

// MarkUnavailable takes a vehicle out of service regardless of its state.
// Booking does not use it; it goes through Reserve.
func (s InventoryService) MarkUnavailable(ctx context.Context, id int64) error {
	return s.Vehicles.SetAvailable(ctx, id, false)
}

// Reserve marks the vehicle unavailable only if it is available right now.
func (s InventoryService) Reserve(ctx context.Context, id int64) error {
	return s.Vehicles.ReserveIfAvailable(ctx, id)
}
