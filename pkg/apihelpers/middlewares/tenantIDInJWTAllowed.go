package middlewares

import (
	"log/slog"
	"net/http"

	jwthandling "github.com/engage-framework/engage-backend/pkg/jwt-handling"
	"github.com/gin-gonic/gin"
)

func IsTenantIDInJWTAllowed(allowedTenantIDs []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		parsedToken, ok := c.Get("validatedToken")
		if !ok {
			slog.Warn("validatedToken not found in context")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "validatedToken not found in context"})
			return
		}

		tenantID := parsedToken.(*jwthandling.UserClaims).TenantID

		allowed := false
		for _, allowedTenantID := range allowedTenantIDs {
			if tenantID == allowedTenantID {
				allowed = true
				break
			}
		}

		if !allowed {
			slog.Warn("tenantID not allowed", slog.String("tenantID", tenantID))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "tenantID not allowed"})
			return
		}
	}
}
