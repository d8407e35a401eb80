package engagement

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

type NewAssessmentCycle struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	IsActive  bool      `json:"isActive"`
}

type AssessmentSubmission struct {
	CycleID        string  `json:"cycleId"`
	EmployeeID     string  `json:"employeeId"`
	AssessorID     string  `json:"assessorId"`
	CoreValueID    string  `json:"coreValueId"`
	Rating         float64 `json:"rating"`
	Comment        string  `json:"comment,omitempty"`
	AssessmentType string  `json:"assessmentType"`
}

type EmployeeGapAnalysis struct {
	EmployeeID  string             `json:"employeeId"`
	DisplayName string             `json:"displayName,omitempty"`
	Entries     []GapAnalysisEntry `json:"entries"`
}

type GapAnalysisEntry struct {
	CoreValueID   string   `json:"coreValueId"`
	ValueName     string   `json:"valueName"`
	SelfRating    *float64 `json:"selfRating"`
	ManagerRating *float64 `json:"managerRating"`
	Gap           *float64 `json:"gap"`
}

func CreateAssessmentCycle(tenantID string, cycleDef NewAssessmentCycle) (cycle engagementTypes.AssessmentCycle, err error) {
	if cycleDef.Name == "" {
		return cycle, NewInvalidInputError("cycle name is required")
	}
	if cycleDef.EndDate.Before(cycleDef.StartDate) {
		return cycle, NewInvalidInputError("cycle end date cannot be before its start date")
	}

	cycle = engagementTypes.AssessmentCycle{
		Name:      cycleDef.Name,
		StartDate: cycleDef.StartDate,
		EndDate:   cycleDef.EndDate,
		IsActive:  cycleDef.IsActive,
		CreatedAt: time.Now(),
	}
	if err := engagementDBService.CreateAssessmentCycle(tenantID, &cycle); err != nil {
		return cycle, err
	}
	return cycle, nil
}

func GetActiveCycles(tenantID string) ([]engagementTypes.AssessmentCycle, error) {
	return engagementDBService.GetActiveAssessmentCycles(tenantID)
}

// SubmitAssessment upserts a rating keyed by the natural 4-tuple. On
// conflict only rating and comment change; the assessment type stays as
// written the first time.
func SubmitAssessment(tenantID string, submission AssessmentSubmission) error {
	if submission.AssessmentType != engagementTypes.ASSESSMENT_TYPE_SELF &&
		submission.AssessmentType != engagementTypes.ASSESSMENT_TYPE_MANAGER {
		return NewInvalidInputError("assessment type must be self or manager")
	}
	if submission.EmployeeID == "" || submission.AssessorID == "" || submission.CoreValueID == "" {
		return NewInvalidInputError("employee, assessor and core value are required")
	}

	if _, err := engagementDBService.GetAssessmentCycleByID(tenantID, submission.CycleID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewNotFoundError("assessment cycle not found")
		}
		return err
	}

	key := engagementTypes.AssessmentKey{
		CycleID:     submission.CycleID,
		EmployeeID:  submission.EmployeeID,
		AssessorID:  submission.AssessorID,
		CoreValueID: submission.CoreValueID,
	}
	return engagementDBService.UpsertSelfAssessment(tenantID, key, submission.Rating, submission.Comment, submission.AssessmentType)
}

// GetGapAnalysis compares self and manager ratings per core value for one
// employee within a cycle.
func GetGapAnalysis(tenantID string, cycleID string, employeeID string) ([]GapAnalysisEntry, error) {
	assessments, err := engagementDBService.GetAssessmentsForEmployee(tenantID, cycleID, employeeID)
	if err != nil {
		return nil, err
	}

	coreValues, err := engagementDBService.GetCoreValues(tenantID, false)
	if err != nil {
		return nil, err
	}
	return buildGapAnalysis(assessments, coreValueNameIndex(coreValues)), nil
}

// GetTeamGapAnalysis runs the gap analysis for every direct report of the
// given manager. Reports without assessments in the cycle are included with
// an empty entry list.
func GetTeamGapAnalysis(tenantID string, cycleID string, managerID string) ([]EmployeeGapAnalysis, error) {
	reports, err := directoryDBService.GetManagedUsers(tenantID, managerID)
	if err != nil {
		return nil, err
	}

	coreValues, err := engagementDBService.GetCoreValues(tenantID, false)
	if err != nil {
		return nil, err
	}
	valueNames := coreValueNameIndex(coreValues)

	results := make([]EmployeeGapAnalysis, 0, len(reports))
	for _, report := range reports {
		employeeID := report.ID.Hex()
		assessments, err := engagementDBService.GetAssessmentsForEmployee(tenantID, cycleID, employeeID)
		if err != nil {
			return nil, err
		}
		results = append(results, EmployeeGapAnalysis{
			EmployeeID:  employeeID,
			DisplayName: report.DisplayName,
			Entries:     buildGapAnalysis(assessments, valueNames),
		})
	}
	return results, nil
}

func coreValueNameIndex(coreValues []engagementTypes.CoreValue) map[string]string {
	names := make(map[string]string, len(coreValues))
	for _, cv := range coreValues {
		names[cv.ID.Hex()] = cv.Name
	}
	return names
}

// buildGapAnalysis groups assessments by core value in the order they were
// first encountered. The gap is only computed when both sides are present;
// one-sided core values are returned with a null gap.
func buildGapAnalysis(assessments []engagementTypes.SelfAssessment, valueNames map[string]string) []GapAnalysisEntry {
	order := []string{}
	groups := map[string]*GapAnalysisEntry{}
	seen := map[engagementTypes.AssessmentKey]struct{}{}

	for _, assessment := range assessments {
		if _, ok := seen[assessment.AssessmentKey]; ok {
			continue
		}
		seen[assessment.AssessmentKey] = struct{}{}

		entry, ok := groups[assessment.CoreValueID]
		if !ok {
			valueName, found := valueNames[assessment.CoreValueID]
			if !found {
				valueName = engagementTypes.UNKNOWN_CORE_VALUE_LABEL
			}
			entry = &GapAnalysisEntry{
				CoreValueID: assessment.CoreValueID,
				ValueName:   valueName,
			}
			groups[assessment.CoreValueID] = entry
			order = append(order, assessment.CoreValueID)
		}

		rating := assessment.Rating
		switch assessment.AssessmentType {
		case engagementTypes.ASSESSMENT_TYPE_SELF:
			if entry.SelfRating == nil {
				entry.SelfRating = &rating
			}
		case engagementTypes.ASSESSMENT_TYPE_MANAGER:
			if entry.ManagerRating == nil {
				entry.ManagerRating = &rating
			}
		}
	}

	result := make([]GapAnalysisEntry, 0, len(order))
	for _, coreValueID := range order {
		entry := groups[coreValueID]
		if entry.SelfRating != nil && entry.ManagerRating != nil {
			gap := *entry.SelfRating - *entry.ManagerRating
			entry.Gap = &gap
		}
		result = append(result, *entry)
	}
	return result
}
