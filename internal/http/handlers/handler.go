package handlers

import (
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"

	intdb "rentaldesk/internal/db"
	"rentaldesk/internal/events"
	"rentaldesk/internal/http/middleware"
	"rentaldesk/internal/repositories"
	"rentaldesk/internal/services"
	"rentaldesk/internal/utils"
)

// Handler builds request-scoped services on top of a shared pool and bus.
type Handler struct {
	DB     *sql.DB
	Events events.Publisher
	// Today overrides the clock used for defaulted dates.
	Today func() time.Time
}

func (h Handler) today() time.Time {
	if h.Today != nil {
		return utils.DateOnly(h.Today())
	}
	return utils.Today()
}

// store hands repositories an untyped nil when no pool is set, so they fall
// back to the global connection.
func (h Handler) store() intdb.Querier {
	if h.DB == nil {
		return nil
	}
	return h.DB
}

func (h Handler) inventory() services.InventoryService {
	return services.InventoryService{Vehicles: repositories.VehicleRepository{DB: h.store()}}
}

func (h Handler) customers(c *gin.Context) services.CustomerService {
	return services.CustomerService{
		Customers: repositories.CustomerRepository{DB: h.store()},
		RequestID: middleware.GetRequestID(c),
	}
}

func (h Handler) rentals(c *gin.Context) services.RentalService {
	return services.RentalService{
		DB:        h.DB,
		Rentals:   repositories.RentalRepository{DB: h.store()},
		Customers: repositories.CustomerRepository{DB: h.store()},
		Inventory: h.inventory(),
		Events:    h.Events,
		RequestID: middleware.GetRequestID(c),
	}
}

func (h Handler) payments(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		DB:        h.DB,
		Rentals:   repositories.RentalRepository{DB: h.store()},
		Payments:  repositories.PaymentRepository{DB: h.store()},
		Events:    h.Events,
		RequestID: middleware.GetRequestID(c),
		Today:     h.Today,
	}
}

func (h Handler) reports() services.ReportsService {
	return services.ReportsService{
		Rentals:  repositories.RentalRepository{DB: h.store()},
		Payments: repositories.PaymentRepository{DB: h.store()},
	}
}

func (h Handler) docs(c *gin.Context) services.DocsService {
	return services.DocsService{
		Payments:  repositories.PaymentRepository{DB: h.store()},
		Rentals:   repositories.RentalRepository{DB: h.store()},
		Customers: repositories.CustomerRepository{DB: h.store()},
		Vehicles:  repositories.VehicleRepository{DB: h.store()},
		RequestID: middleware.GetRequestID(c),
	}
}
