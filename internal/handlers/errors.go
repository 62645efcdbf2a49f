package handlers

import (
	"errors"
	"net/http"

	"github.com/Minhaj-beep/teer-api/internal/services"
	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP status codes: not-found to 404,
// caller-correctable problems to 400, a closed update window to 403 and
// everything else to 500.
func respondError(c *gin.Context, err error) {
	var validation *services.ValidationError
	var window *services.WindowClosedError

	switch {
	case errors.Is(err, services.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
	case errors.As(err, &window):
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "Updates are not allowed within 5 minutes of the game time",
			"remaining": window.Remaining.String(),
		})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error(), "field": validation.Field})
	case errors.Is(err, services.ErrDuplicateName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists."})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
	case errors.Is(err, services.ErrUserInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": "User is inactive."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
