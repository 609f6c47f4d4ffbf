package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridehub/service-rental/pkg/domain"
)

// Success writes a 200 with the payload wrapped in a data envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Created writes a 201 with the payload wrapped in a data envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

// Paginated writes a 200 with pagination metadata.
func Paginated(c *gin.Context, data interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{
		"data": data,
		"meta": gin.H{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// Error maps a DomainError kind to its HTTP status class. Anything that
// is not a DomainError surfaces as a generic 500 so internals never leak.
func Error(c *gin.Context, err error) {
	var domErr *domain.DomainError
	if !errors.As(err, &domErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(domErr.Err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(domErr.Err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(domErr.Err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(domErr.Err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(domErr.Err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(domErr.Err, domain.ErrInvalidState):
		status = http.StatusUnprocessableEntity
	case errors.Is(domErr.Err, domain.ErrUpstream):
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{"error": domErr.Message})
}
