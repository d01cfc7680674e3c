// Package httpapi exposes the portfolio service over REST using gin.
// Handlers translate HTTP requests into service calls and service errors
// back into the JSON error envelope.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ganeshpodishetti/portfolio-api/internal/common"
)

// ErrorResponse is the JSON error envelope returned on every failure.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenPairResponse carries a freshly minted token pair.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// renderError maps service-layer sentinel errors onto HTTP statuses.
// Anything unrecognized is a 500 with no internals leaked.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: err.Error()})
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, common.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, common.ErrAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "already exists"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// badRequest reports a malformed payload or path parameter.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request", Details: err.Error()})
}
