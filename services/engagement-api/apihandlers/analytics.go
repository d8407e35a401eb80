package apihandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	mw "github.com/engage-framework/engage-backend/pkg/apihelpers/middlewares"
	"github.com/engage-framework/engage-backend/pkg/engagement"
)

func (h *HttpEndpoints) AddAnalyticsAPI(rg *gin.RouterGroup) {
	analyticsGroup := rg.Group("/analytics")

	analyticsGroup.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	analyticsGroup.Use(mw.IsTenantIDInJWTAllowed(h.allowedTenantIDs))
	analyticsGroup.Use(mw.IsAdminUser())
	{
		analyticsGroup.GET("/engagement-trend", h.getEngagementTrend)
		analyticsGroup.GET("/department-heatmap", h.getDepartmentHeatmap)
		analyticsGroup.GET("/completion-rates", h.getSurveyCompletionRates)
		analyticsGroup.GET("/question-ranking", h.getQuestionRanking)
		analyticsGroup.GET("/recognition-stats", h.getRecognitionStats)
	}
}

func (h *HttpEndpoints) getEngagementTrend(c *gin.Context) {
	token := getTokenFromContext(c)

	months, err := strconv.Atoi(c.DefaultQuery("months", strconv.Itoa(engagement.DEFAULT_TREND_MONTHS)))
	if err != nil || months < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid months parameter"})
		return
	}

	trend, err := engagement.GetEngagementTrend(token.TenantID, months)
	if err != nil {
		slog.Error("error computing engagement trend", slog.String("tenantID", token.TenantID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error computing engagement trend"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trend": trend})
}

func (h *HttpEndpoints) getDepartmentHeatmap(c *gin.Context) {
	token := getTokenFromContext(c)

	heatmap, err := engagement.GetDepartmentHeatmap(token.TenantID)
	if err != nil {
		slog.Error("error computing department heatmap", slog.String("tenantID", token.TenantID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error computing department heatmap"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"heatmap": heatmap})
}

func (h *HttpEndpoints) getSurveyCompletionRates(c *gin.Context) {
	token := getTokenFromContext(c)

	rates, err := engagement.GetSurveyCompletionRates(token.TenantID)
	if err != nil {
		slog.Error("error computing completion rates", slog.String("tenantID", token.TenantID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error computing completion rates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"completionRates": rates})
}

func (h *HttpEndpoints) getQuestionRanking(c *gin.Context) {
	token := getTokenFromContext(c)

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(engagement.DEFAULT_QUESTION_RANK_LEN)))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
		return
	}

	ranking, err := engagement.GetTopBottomQuestions(token.TenantID, limit)
	if err != nil {
		slog.Error("error computing question ranking", slog.String("tenantID", token.TenantID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error computing question ranking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ranking": ranking})
}

func (h *HttpEndpoints) getRecognitionStats(c *gin.Context) {
	token := getTokenFromContext(c)

	stats, err := engagement.GetRecognitionStats(token.TenantID, c.Query("receiverId"))
	if err != nil {
		slog.Error("error computing recognition stats", slog.String("tenantID", token.TenantID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error computing recognition stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
