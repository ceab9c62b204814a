package httpserver

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/domain"
)

const (
	sessionHeader = "X-Session-ID"
	adminHeader   = "X-Admin-Token"
)

// sessionRequired rejects cart/checkout requests without a session header.
// Sessions are minted client-side (or via POST /session); the server never
// validates their contents, only keys state by them.
func sessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader(sessionHeader)) == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "MISSING_SESSION", "message": sessionHeader + " header required"})
			return
		}
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(sessionHeader))
}

// adminRequired guards the admin CRUD surface with a shared token.
func adminRequired(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "ADMIN_DISABLED"})
			return
		}
		got := c.GetHeader(adminHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "UNAUTHORIZED"})
			return
		}
		c.Next()
	}
}

// writeError maps domain errors onto HTTP responses.
func writeError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "VALIDATION_ERROR", "fields": verr.Fields})
	case errors.Is(err, domain.ErrCouponAlreadyApplied):
		c.JSON(http.StatusConflict, gin.H{"error": "ALREADY_APPLIED"})
	case errors.Is(err, domain.ErrCouponNotFoundOrInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "NOT_FOUND_OR_INACTIVE"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "NOT_FOUND"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "INTERNAL"})
	}
}
