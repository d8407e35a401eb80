package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/engage-framework/engage-backend/pkg/apihelpers/middlewares"
	"github.com/engage-framework/engage-backend/pkg/engagement"
)

func (h *HttpEndpoints) AddCoreValueAPI(rg *gin.RouterGroup) {
	coreValuesGroup := rg.Group("/core-values")

	coreValuesGroup.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	coreValuesGroup.Use(mw.IsTenantIDInJWTAllowed(h.allowedTenantIDs))
	{
		coreValuesGroup.GET("", h.getCoreValues)
		coreValuesGroup.POST("", mw.RequirePayload(), mw.IsAdminUser(), h.createCoreValue)
		coreValuesGroup.DELETE("/:coreValueID", mw.IsAdminUser(), h.deactivateCoreValue)
	}
}

func (h *HttpEndpoints) getCoreValues(c *gin.Context) {
	token := getTokenFromContext(c)

	activeOnly := c.DefaultQuery("activeOnly", "true") == "true"
	coreValues, err := engagement.GetCoreValues(token.TenantID, activeOnly)
	if err != nil {
		slog.Error("error fetching core values", slog.String("tenantID", token.TenantID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching core values"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coreValues": coreValues})
}

type newCoreValueReq struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func (h *HttpEndpoints) createCoreValue(c *gin.Context) {
	token := getTokenFromContext(c)

	var req newCoreValueReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	coreValue, err := engagement.CreateCoreValue(token.TenantID, req.Name, req.Description)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"coreValue": coreValue})
}

func (h *HttpEndpoints) deactivateCoreValue(c *gin.Context) {
	token := getTokenFromContext(c)

	if err := engagement.DeactivateCoreValue(token.TenantID, c.Param("coreValueID")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "core value deactivated"})
}
