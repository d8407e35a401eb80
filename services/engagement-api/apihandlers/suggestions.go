package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/engage-framework/engage-backend/pkg/apihelpers"
	mw "github.com/engage-framework/engage-backend/pkg/apihelpers/middlewares"
	"github.com/engage-framework/engage-backend/pkg/engagement"
)

func (h *HttpEndpoints) AddSuggestionAPI(rg *gin.RouterGroup) {
	suggestionsGroup := rg.Group("/suggestions")

	suggestionsGroup.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	suggestionsGroup.Use(mw.IsTenantIDInJWTAllowed(h.allowedTenantIDs))
	{
		suggestionsGroup.POST("", mw.RequirePayload(), h.createSuggestion)
		suggestionsGroup.GET("", mw.IsAdminUser(), h.getSuggestions)
		suggestionsGroup.GET("/keywords", mw.IsAdminUser(), h.getSuggestionKeywords)
		suggestionsGroup.GET("/:suggestionID", mw.IsAdminUser(), h.getSuggestion)
		suggestionsGroup.PUT("/:suggestionID/status", mw.RequirePayload(), mw.IsAdminUser(), h.updateSuggestionStatus)
	}
}

func (h *HttpEndpoints) createSuggestion(c *gin.Context) {
	token := getTokenFromContext(c)

	var req engagement.NewSuggestion
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	suggestion, err := engagement.CreateSuggestion(token.TenantID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"suggestion": suggestion})
}

func (h *HttpEndpoints) getSuggestions(c *gin.Context) {
	token := getTokenFromContext(c)

	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination parameters"})
		return
	}

	suggestions, paginationInfo, err := engagement.GetSuggestions(token.TenantID, c.Query("status"), query.Page, query.Limit)
	if err != nil {
		slog.Error("error fetching suggestions", slog.String("tenantID", token.TenantID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching suggestions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions, "pagination": paginationInfo})
}

func (h *HttpEndpoints) getSuggestion(c *gin.Context) {
	token := getTokenFromContext(c)

	suggestion, err := engagement.GetSuggestion(token.TenantID, c.Param("suggestionID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

type updateSuggestionStatusReq struct {
	Status    string `json:"status"`
	AdminNote string `json:"adminNote,omitempty"`
}

func (h *HttpEndpoints) updateSuggestionStatus(c *gin.Context) {
	token := getTokenFromContext(c)

	var req updateSuggestionStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	if err := engagement.UpdateSuggestionStatus(token.TenantID, c.Param("suggestionID"), req.Status, req.AdminNote); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "suggestion status updated"})
}

func (h *HttpEndpoints) getSuggestionKeywords(c *gin.Context) {
	token := getTokenFromContext(c)

	keywords, err := engagement.GetKeywordFrequency(token.TenantID)
	if err != nil {
		slog.Error("error computing keyword frequency", slog.String("tenantID", token.TenantID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error computing keyword frequency"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"keywords": keywords})
}
