package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentaldesk/internal/domain/models"
)

type customerPayload struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email"`
	NationalID    string `json:"national_id"`
	LicenseNumber string `json:"license_number" binding:"required"`
	Address       string `json:"address"`
}

// POST /api/customers
func (h Handler) CreateCustomer(c *gin.Context) {
	var p customerPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	cust, err := h.customers(c).AddCustomer(c.Request.Context(), models.CustomerInput{
		Name:          p.Name,
		Phone:         p.Phone,
		Email:         p.Email,
		NationalID:    p.NationalID,
		LicenseNumber: p.LicenseNumber,
		Address:       p.Address,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

// GET /api/customers
func (h Handler) ListCustomers(c *gin.Context) {
	list, err := h.customers(c).ListCustomers(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": list})
}
