package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	mw "github.com/engage-framework/engage-backend/pkg/apihelpers/middlewares"
	"github.com/engage-framework/engage-backend/pkg/engagement"
)

func (h *HttpEndpoints) AddAssessmentAPI(rg *gin.RouterGroup) {
	cyclesGroup := rg.Group("/assessment-cycles")

	cyclesGroup.Use(mw.GetAndValidateUserJWT(h.tokenSignKey))
	cyclesGroup.Use(mw.IsTenantIDInJWTAllowed(h.allowedTenantIDs))
	{
		cyclesGroup.GET("/active", h.getActiveAssessmentCycles)
		cyclesGroup.POST("", mw.RequirePayload(), mw.IsAdminUser(), h.createAssessmentCycle)
	}

	cycleGroup := cyclesGroup.Group("/:cycleID")
	{
		cycleGroup.POST("/assessments", mw.RequirePayload(), h.submitAssessment)
		cycleGroup.GET("/gap-analysis/:employeeID", h.getGapAnalysis)
		cycleGroup.GET("/team-gap-analysis", h.getTeamGapAnalysis)
	}
}

func (h *HttpEndpoints) createAssessmentCycle(c *gin.Context) {
	token := getTokenFromContext(c)

	var req engagement.NewAssessmentCycle
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}

	cycle, err := engagement.CreateAssessmentCycle(token.TenantID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	slog.Info("assessment cycle created", slog.String("tenantID", token.TenantID), slog.String("cycleID", cycle.ID.Hex()), slog.String("userID", token.Subject))
	c.JSON(http.StatusCreated, gin.H{"cycle": cycle})
}

func (h *HttpEndpoints) getActiveAssessmentCycles(c *gin.Context) {
	token := getTokenFromContext(c)

	cycles, err := engagement.GetActiveCycles(token.TenantID)
	if err != nil {
		slog.Error("error fetching assessment cycles", slog.String("tenantID", token.TenantID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error fetching assessment cycles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cycles": cycles})
}

func (h *HttpEndpoints) submitAssessment(c *gin.Context) {
	token := getTokenFromContext(c)

	var req engagement.AssessmentSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("error parsing request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "error parsing request body"})
		return
	}
	req.CycleID = c.Param("cycleID")
	req.AssessorID = token.Subject

	if err := engagement.SubmitAssessment(token.TenantID, req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "assessment saved"})
}

func (h *HttpEndpoints) getGapAnalysis(c *gin.Context) {
	token := getTokenFromContext(c)

	entries, err := engagement.GetGapAnalysis(token.TenantID, c.Param("cycleID"), c.Param("employeeID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gapAnalysis": entries})
}

// getTeamGapAnalysis reports on the direct reports of the requesting user.
func (h *HttpEndpoints) getTeamGapAnalysis(c *gin.Context) {
	token := getTokenFromContext(c)

	results, err := engagement.GetTeamGapAnalysis(token.TenantID, c.Param("cycleID"), token.Subject)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"teamGapAnalysis": results})
}
