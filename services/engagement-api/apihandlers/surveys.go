package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/engage-framework/engage-backend/pkg/apihelpers"
	mw "github.com/engage-framework/engage-backend/pkg/apihelpers/middlewares"
	"github.com/engage-framework/engage-backend/pkg/engagement"
	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

func (h *HttpEndpoints) AddSurveyAPI(rg *gin.RouterGroup) {
	surveysGroup := rg.Group("/surveys")

	surveysGroup.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	surveysGroup.Use(mw.IsTenantIDInJWTAllowed(h.allowedTenantIDs))
	{
		surveysGroup.GET("", h.getSurveys)
		surveysGroup.POST("", mw.RequirePayload(), mw.IsAdminUser(), h.createSurvey)
	}

	surveyGroup := surveysGroup.Group("/:surveyID")
	{
		surveyGroup.GET("", h.getSurvey)
		surveyGroup.PUT("", mw.RequirePayload(), mw.IsAdminUser(), h.updateSurvey)
		surveyGroup.DELETE("", mw.IsAdminUser(), h.deleteSurvey)
		surveyGroup.POST("/publish", mw.IsAdminUser(), h.publishSurvey)
		surveyGroup.POST("/close", mw.IsAdminUser(), h.closeSurvey)
		surveyGroup.POST("/assignments", mw.RequirePayload(), mw.IsAdminUser(), h.assignSurvey)
		surveyGroup.GET("/assignments", mw.IsAdminUser(), h.getSurveyAssignments)
		surveyGroup.GET("/completion-rate", mw.IsAdminUser(), h.getSurveyCompletionRate)
		surveyGroup.POST("/responses", mw.RequirePayload(), h.submitSurveyResponse)
		surveyGroup.GET("/responses", mw.IsAdminUser(), h.getSurveyResponses)
	}
}

func (h *HttpEndpoints) getSurveys(c *gin.Context) {
	token := getTokenFromContext(c)

	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination parameters"})
		return
	}

	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	surveys, paginationInfo, err := h.engagementDBConn.GetSurveys(token.TenantID, filter, query.Page, query.Limit)
	if err != nil {
		slog.Error("error fetching surveys", slog.String("tenantID", token.TenantID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching surveys"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"surveys": surveys, "pagination": paginationInfo})
}

func (h *HttpEndpoints) createSurvey(c *gin.Context) {
	token := getTokenFromContext(c)

	var req engagement.NewSurvey
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	survey, err := engagement.CreateSurvey(token.TenantID, token.Subject, req)
	if err != nil {
		writeError(c, err)
		return
	}

	slog.Info("survey created", slog.String("tenantID", token.TenantID), slog.String("surveyID", survey.ID.Hex()), slog.String("userID", token.Subject))
	c.JSON(http.StatusCreated, gin.H{"survey": survey})
}

func (h *HttpEndpoints) getSurvey(c *gin.Context) {
	token := getTokenFromContext(c)

	survey, err := engagement.GetSurvey(token.TenantID, c.Param("surveyID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"survey": survey})
}

func (h *HttpEndpoints) updateSurvey(c *gin.Context) {
	token := getTokenFromContext(c)

	var req engagement.SurveyPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	if err := engagement.UpdateSurvey(token.TenantID, c.Param("surveyID"), req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "survey updated"})
}

func (h *HttpEndpoints) deleteSurvey(c *gin.Context) {
	token := getTokenFromContext(c)
	surveyID := c.Param("surveyID")

	if err := engagement.DeleteSurvey(token.TenantID, surveyID); err != nil {
		writeError(c, err)
		return
	}

	slog.Info("survey deleted", slog.String("tenantID", token.TenantID), slog.String("surveyID", surveyID), slog.String("userID", token.Subject))
	c.JSON(http.StatusOK, gin.H{"message": "survey deleted"})
}

func (h *HttpEndpoints) getSurveyAssignments(c *gin.Context) {
	token := getTokenFromContext(c)

	assignments, err := engagement.GetSurveyAssignments(token.TenantID, c.Param("surveyID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignments": assignments})
}

func (h *HttpEndpoints) publishSurvey(c *gin.Context) {
	token := getTokenFromContext(c)
	surveyID := c.Param("surveyID")

	survey, err := engagement.PublishSurvey(token.TenantID, surveyID)
	if err != nil {
		writeError(c, err)
		return
	}

	slog.Info("survey published", slog.String("tenantID", token.TenantID), slog.String("surveyID", surveyID), slog.String("userID", token.Subject))
	c.JSON(http.StatusOK, gin.H{"survey": survey})
}

func (h *HttpEndpoints) closeSurvey(c *gin.Context) {
	token := getTokenFromContext(c)
	surveyID := c.Param("surveyID")

	if err := engagement.CloseSurvey(token.TenantID, surveyID); err != nil {
		writeError(c, err)
		return
	}

	slog.Info("survey closed", slog.String("tenantID", token.TenantID), slog.String("surveyID", surveyID), slog.String("userID", token.Subject))
	c.JSON(http.StatusOK, gin.H{"message": "survey closed"})
}

type assignSurveyReq struct {
	UserIDs []string `json:"userIds"`
}

func (h *HttpEndpoints) assignSurvey(c *gin.Context) {
	token := getTokenFromContext(c)

	var req assignSurveyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	if err := engagement.AssignSurvey(token.TenantID, c.Param("surveyID"), req.UserIDs); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "survey assigned"})
}

func (h *HttpEndpoints) getSurveyCompletionRate(c *gin.Context) {
	token := getTokenFromContext(c)

	result, err := engagement.GetSurveyCompletionRate(token.TenantID, c.Param("surveyID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"completionRate": result})
}

type submitResponseReq struct {
	Answers []engagementTypes.SurveyAnswer `json:"answers"`
}

func (h *HttpEndpoints) submitSurveyResponse(c *gin.Context) {
	token := getTokenFromContext(c)

	var req submitResponseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	response, err := engagement.SubmitResponse(token.TenantID, c.Param("surveyID"), token.Subject, req.Answers)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"response": response})
}

func (h *HttpEndpoints) getSurveyResponses(c *gin.Context) {
	token := getTokenFromContext(c)

	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination parameters"})
		return
	}

	responses, paginationInfo, err := h.engagementDBConn.GetResponsesForSurvey(token.TenantID, c.Param("surveyID"), query.Page, query.Limit)
	if err != nil {
		slog.Error("error fetching survey responses", slog.String("tenantID", token.TenantID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching survey responses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"responses": responses, "pagination": paginationInfo})
}
