package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"heart-risk-service/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	status, msg := errorStatus(err)
	c.JSON(status, gin.H{"error": msg})
}

func errorStatus(err error) (int, string) {
	switch {
	// Bad request / validation errors
	case errors.Is(err, domain.ErrFieldOutOfRange):
		return http.StatusBadRequest, err.Error()

	// Service unavailable errors
	case errors.Is(err, domain.ErrModelUnavailable):
		return http.StatusServiceUnavailable, domain.ErrModelUnavailable.Error()

	// Provider broke its contract
	case errors.Is(err, domain.ErrContractViolation):
		return http.StatusInternalServerError, "model returned an invalid result"

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
