package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/engage-framework/engage-backend/pkg/apihelpers/middlewares"
	jwthandling "github.com/engage-framework/engage-backend/pkg/jwt-handling"
)

func (h *HttpEndpoints) AddAuthAPI(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/signin-with-idp", mw.RequirePayload(), h.signInWithIdP)
	}
}

type SignInRequest struct {
	Sub      string   `json:"sub"`
	Roles    []string `json:"roles"`
	TenantID string   `json:"tenantId"`
}

// signInWithIdP exchanges an identity asserted by the upstream identity
// provider for an API token. The user must exist in the tenant's directory.
func (h *HttpEndpoints) signInWithIdP(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	if !h.isTenantAllowed(req.TenantID) {
		slog.Warn("signInWithIdP: tenant not allowed", slog.String("tenantID", req.TenantID))
		c.JSON(http.StatusForbidden, gin.H{"error": "tenant not allowed"})
		return
	}

	if req.Sub == "" {
		slog.Warn("signInWithIdP: no sub")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing sub"})
		return
	}

	user, err := h.directoryDBConn.GetUserByID(req.TenantID, req.Sub)
	if err != nil {
		slog.Warn("signInWithIdP: user not found in directory", slog.String("tenantID", req.TenantID), slog.String("userID", req.Sub))
		c.JSON(http.StatusForbidden, gin.H{"error": "user not found"})
		return
	}
	if !user.IsActive {
		slog.Warn("signInWithIdP: inactive user", slog.String("tenantID", req.TenantID), slog.String("userID", req.Sub))
		c.JSON(http.StatusForbidden, gin.H{"error": "user not active"})
		return
	}

	isAdmin := false
	for _, role := range req.Roles {
		if role == "admin" {
			isAdmin = true
			break
		}
	}

	token, err := jwthandling.GenerateNewUserToken(
		h.tokenExpiresIn,
		req.Sub,
		req.TenantID,
		isAdmin,
		map[string]string{"displayName": user.DisplayName},
		h.tokenSignKey,
	)
	if err != nil {
		slog.Error("signInWithIdP: error generating token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error generating token"})
		return
	}

	slog.Info("user signed in", slog.String("tenantID", req.TenantID), slog.String("userID", req.Sub))
	c.JSON(http.StatusOK, gin.H{
		"accessToken": token,
		"expiresIn":   h.tokenExpiresIn.Seconds(),
		"isAdmin":     isAdmin,
	})
}

func (h *HttpEndpoints) isTenantAllowed(tenantID string) bool {
	for _, id := range h.allowedTenantIDs {
		if id == tenantID {
			return true
		}
	}
	return false
}
