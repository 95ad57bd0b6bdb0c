package api

import (
	"database/sql"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	intconfig "rentaldesk/internal/config"
	"rentaldesk/internal/events"
	h "rentaldesk/internal/http/handlers"
	"rentaldesk/internal/http/middleware"
	"rentaldesk/internal/utils"
)

// Deps are the shared resources handed to every handler.
type Deps struct {
	DB     *sql.DB
	Events events.Publisher
}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"code":   "not_found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	hd := h.Handler{DB: deps.DB, Events: deps.Events}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", hd.DBCheck)
		api.GET("/routes", h.Routes)

		// View Vehicles
		vehicles := api.Group("/vehicles")
		vehicles.GET("", hd.ListVehicles)
		vehicles.GET("/available", hd.ListAvailableVehicles)
		vehicles.GET("/:id", hd.GetVehicle)

		// Add Customer
		customers := api.Group("/customers")
		customers.GET("", hd.ListCustomers)
		customers.POST("", hd.CreateCustomer)

		// New Rental and Return Vehicle
		rentals := api.Group("/rentals")
		rentals.POST("/quote", hd.QuoteRental)
		rentals.POST("", hd.BookRental)
		rentals.GET("/open", hd.ListOpenRentals)
		rentals.GET("/:id", hd.GetRental)
		rentals.POST("/:id/return/quote", hd.QuoteReturn)
		rentals.POST("/:id/return", hd.ReturnVehicle)

		// Record Payment
		payments := api.Group("/payments")
		payments.GET("/pending", hd.ListPendingPayments)
		payments.POST("", hd.RecordPayment)
		payments.GET("/:id/receipt", hd.GetPaymentReceipt)

		// View Reports
		reports := api.Group("/reports")
		reports.GET("", hd.ReportSummary)
		reports.GET("/revenue", hd.ReportRevenue)
		reports.GET("/rentals", hd.ReportRentalCount)
	}

	h.SetRouter(r)
	return r
}
