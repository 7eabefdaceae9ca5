package controllers

import (
	"errors"
	"net/http"

	"auction-house/apperrors"
	"auction-house/models"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors to the HTTP contract. Internal failures
// are logged with their cause and surfaced without detail.
func respondError(c *gin.Context, err error) {
	if ve, ok := apperrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid or missing fields",
			Details: ve.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "User not granted"})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
	case errors.Is(err, apperrors.ErrEmailTaken):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Email already registered"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid email or password"})
	default:
		utils.Error("internal error", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal Server Error"})
	}
}

// respondBindError reports a malformed request body.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "Invalid or missing fields",
		Details: []string{err.Error()},
	})
}
