package apihandlers

import (
	"net/http"

	"github.com/engage-framework/engage-backend/pkg/engagement"
	jwthandling "github.com/engage-framework/engage-backend/pkg/jwt-handling"
	"github.com/gin-gonic/gin"
)

func getTokenFromContext(c *gin.Context) *jwthandling.UserClaims {
	return c.MustGet("validatedToken").(*jwthandling.UserClaims)
}

// writeError translates domain errors into HTTP responses. Unclassified
// errors stay opaque to the client.
func writeError(c *gin.Context, err error) {
	switch {
	case engagement.IsNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case engagement.IsInvalidInputError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case engagement.IsInvalidStateError(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unexpected error"})
	}
}
