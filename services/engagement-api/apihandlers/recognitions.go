package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engage-framework/engage-backend/pkg/apihelpers"
	mw "github.com/engage-framework/engage-backend/pkg/apihelpers/middlewares"
	"github.com/engage-framework/engage-backend/pkg/engagement"
)

func (h *HttpEndpoints) AddRecognitionAPI(rg *gin.RouterGroup) {
	recognitionsGroup := rg.Group("/recognitions")

	recognitionsGroup.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	recognitionsGroup.Use(mw.IsTenantIDInJWTAllowed(h.allowedTenantIDs))
	{
		recognitionsGroup.POST("", mw.RequirePayload(), h.sendRecognition)
		recognitionsGroup.GET("", h.getRecognitionFeed)
	}
}

func (h *HttpEndpoints) sendRecognition(c *gin.Context) {
	token := getTokenFromContext(c)

	var req engagement.NewRecognition
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	recognition, err := engagement.SendRecognition(token.TenantID, token.Subject, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recognition": recognition})
}

func (h *HttpEndpoints) getRecognitionFeed(c *gin.Context) {
	token := getTokenFromContext(c)

	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination parameters"})
		return
	}

	// non admin users only see the public feed
	publicOnly := c.DefaultQuery("publicOnly", "true") == "true"
	if !token.IsAdmin {
		publicOnly = true
	}

	recognitions, paginationInfo, err := engagement.GetRecognitionFeed(token.TenantID, publicOnly, query.Page, query.Limit)
	if err != nil {
		slog.Error("error fetching recognition feed", slog.String("tenantID", token.TenantID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching recognition feed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recognitions": recognitions, "pagination": paginationInfo})
}
