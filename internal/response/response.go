// Package response maps service results and domain errors onto the JSON
// envelope returned by every handler.
package response

import (
	"errors"
	"net/http"

	"github.com/bagabo/hotel-booking/internal/domain"
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"data": data})
}

// NoContent writes an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paginated writes a 200 response with items and paging metadata.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{
		"data":  items,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// Error maps a domain error onto the appropriate HTTP status. Unknown errors
// become opaque 500s so internals never leak to clients.
func Error(c *gin.Context, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		c.JSON(http.StatusInternalServerError, ErrorBody{Error: "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch de.Kind {
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindUnauthorized:
		status = http.StatusUnauthorized
	case domain.KindForbidden:
		status = http.StatusForbidden
	}
	c.JSON(status, ErrorBody{Error: de.Message, Reason: de.Reason})
}
