package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"rentaldesk/internal/services"
)

type rentalPayload struct {
	CustomerID int64  `json:"customer_id" binding:"required"`
	VehicleID  int64  `json:"vehicle_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
}

type returnPayload struct {
	ReturnDate string `json:"return_date"`
}

func (p rentalPayload) input() (services.BookingInput, error) {
	start, err := parseDate("start_date", p.StartDate, nil)
	if err != nil {
		return services.BookingInput{}, err
	}
	end, err := parseDate("end_date", p.EndDate, nil)
	if err != nil {
		return services.BookingInput{}, err
	}
	return services.BookingInput{CustomerID: p.CustomerID, VehicleID: p.VehicleID, StartDate: start, EndDate: end}, nil
}

func (h Handler) bindRental(c *gin.Context) (services.BookingInput, bool) {
	var p rentalPayload
	if !BindJSONOrError(c, &p) {
		return services.BookingInput{}, false
	}
	in, err := p.input()
	if err != nil {
		RespondDomainError(c, err)
		return services.BookingInput{}, false
	}
	return in, true
}

// POST /api/rentals/quote
func (h Handler) QuoteRental(c *gin.Context) {
	in, ok := h.bindRental(c)
	if !ok {
		return
	}
	q, err := h.rentals(c).QuoteRental(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// POST /api/rentals
func (h Handler) BookRental(c *gin.Context) {
	in, ok := h.bindRental(c)
	if !ok {
		return
	}
	rt, err := h.rentals(c).BookRental(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rt)
}

// GET /api/rentals/open
func (h Handler) ListOpenRentals(c *gin.Context) {
	list, err := h.rentals(c).ListOpen(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rentals": list})
}

// GET /api/rentals/:id
func (h Handler) GetRental(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	rt, err := h.rentals(c).GetRental(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rt)
}

// bindReturn reads the optional return_date; an empty body means today.
func (h Handler) bindReturn(c *gin.Context) (int64, returnPayload, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return 0, returnPayload{}, false
	}
	var p returnPayload
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&p); err != nil && !errors.Is(err, io.EOF) {
			respondError(c, http.StatusBadRequest, "validation_error", "invalid payload", err.Error())
			return 0, returnPayload{}, false
		}
	}
	return id, p, true
}

// POST /api/rentals/:id/return/quote
func (h Handler) QuoteReturn(c *gin.Context) {
	id, p, ok := h.bindReturn(c)
	if !ok {
		return
	}
	returnDate, err := parseDate("return_date", p.ReturnDate, h.today)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	q, err := h.rentals(c).QuoteReturn(c.Request.Context(), id, returnDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// POST /api/rentals/:id/return
func (h Handler) ReturnVehicle(c *gin.Context) {
	id, p, ok := h.bindReturn(c)
	if !ok {
		return
	}
	returnDate, err := parseDate("return_date", p.ReturnDate, h.today)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	q, err := h.rentals(c).ReturnVehicle(c.Request.Context(), id, returnDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}
