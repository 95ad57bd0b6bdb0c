package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"rentaldesk/internal/domain"
	"rentaldesk/internal/http/middleware"
	"rentaldesk/internal/utils"
)

// RespondError sends standard error payload with request_id included.
// Keeps backward compatibility by always providing "message".
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "request body is empty", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid payload", err.Error())
		return false
	}
	return true
}

// paramID reads a positive integer path parameter.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param(name)), 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: name, Msg: "must be a positive id"})
		return 0, false
	}
	return id, true
}

// parseDate parses a YYYY-MM-DD field. An empty value yields fallback when
// one is given.
func parseDate(field, raw string, fallback func() time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if fallback != nil {
			return fallback(), nil
		}
		return time.Time{}, domain.ValidationError{Field: field, Msg: "is required"}
	}
	t, err := utils.ParseDate(raw)
	if err != nil {
		return time.Time{}, domain.ValidationError{Field: field, Msg: "must be a YYYY-MM-DD date", Err: err}
	}
	return t, nil
}
