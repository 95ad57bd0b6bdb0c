package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/vehicles
func (h Handler) ListVehicles(c *gin.Context) {
	vehicles, err := h.inventory().ListVehicles(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// GET /api/vehicles/available
func (h Handler) ListAvailableVehicles(c *gin.Context) {
	vehicles, err := h.inventory().ListAvailable(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// GET /api/vehicles/:id
func (h Handler) GetVehicle(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	v, err := h.inventory().GetVehicle(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}
