package engagement

import (
	"testing"

	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

func selfAssessment(cycleID, employeeID, assessorID, coreValueID string, rating float64, aType string) engagementTypes.SelfAssessment {
	return engagementTypes.SelfAssessment{
		AssessmentKey: engagementTypes.AssessmentKey{
			CycleID:     cycleID,
			EmployeeID:  employeeID,
			AssessorID:  assessorID,
			CoreValueID: coreValueID,
		},
		Rating:         rating,
		AssessmentType: aType,
	}
}

func TestBuildGapAnalysis(t *testing.T) {
	valueNames := map[string]string{
		"cv1": "Integrity",
		"cv2": "Ownership",
	}

	t.Run("gap computed when both sides present", func(t *testing.T) {
		assessments := []engagementTypes.SelfAssessment{
			selfAssessment("c1", "e1", "e1", "cv1", 8, engagementTypes.ASSESSMENT_TYPE_SELF),
			selfAssessment("c1", "e1", "m1", "cv1", 6, engagementTypes.ASSESSMENT_TYPE_MANAGER),
		}
		result := buildGapAnalysis(assessments, valueNames)
		if len(result) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(result))
		}
		entry := result[0]
		if entry.ValueName != "Integrity" {
			t.Errorf("valueName = %s, want Integrity", entry.ValueName)
		}
		if entry.SelfRating == nil || *entry.SelfRating != 8 {
			t.Errorf("selfRating = %v, want 8", entry.SelfRating)
		}
		if entry.ManagerRating == nil || *entry.ManagerRating != 6 {
			t.Errorf("managerRating = %v, want 6", entry.ManagerRating)
		}
		if entry.Gap == nil || *entry.Gap != 2 {
			t.Errorf("gap = %v, want 2", entry.Gap)
		}
	})

	t.Run("self only yields null gap", func(t *testing.T) {
		assessments := []engagementTypes.SelfAssessment{
			selfAssessment("c1", "e1", "e1", "cv1", 8, engagementTypes.ASSESSMENT_TYPE_SELF),
		}
		result := buildGapAnalysis(assessments, valueNames)
		if len(result) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(result))
		}
		entry := result[0]
		if entry.SelfRating == nil || *entry.SelfRating != 8 {
			t.Errorf("selfRating = %v, want 8", entry.SelfRating)
		}
		if entry.ManagerRating != nil {
			t.Errorf("managerRating = %v, want nil", entry.ManagerRating)
		}
		if entry.Gap != nil {
			t.Errorf("gap = %v, want nil", entry.Gap)
		}
	})

	t.Run("manager only yields null gap", func(t *testing.T) {
		assessments := []engagementTypes.SelfAssessment{
			selfAssessment("c1", "e1", "m1", "cv2", 5, engagementTypes.ASSESSMENT_TYPE_MANAGER),
		}
		result := buildGapAnalysis(assessments, valueNames)
		if len(result) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(result))
		}
		if result[0].Gap != nil {
			t.Errorf("gap = %v, want nil", result[0].Gap)
		}
	})

	t.Run("groups keep first-encounter order", func(t *testing.T) {
		assessments := []engagementTypes.SelfAssessment{
			selfAssessment("c1", "e1", "e1", "cv2", 7, engagementTypes.ASSESSMENT_TYPE_SELF),
			selfAssessment("c1", "e1", "e1", "cv1", 9, engagementTypes.ASSESSMENT_TYPE_SELF),
			selfAssessment("c1", "e1", "m1", "cv2", 6, engagementTypes.ASSESSMENT_TYPE_MANAGER),
		}
		result := buildGapAnalysis(assessments, valueNames)
		if len(result) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(result))
		}
		if result[0].CoreValueID != "cv2" || result[1].CoreValueID != "cv1" {
			t.Errorf("unexpected order: %s, %s", result[0].CoreValueID, result[1].CoreValueID)
		}
	})

	t.Run("unknown core value resolves to Unknown", func(t *testing.T) {
		assessments := []engagementTypes.SelfAssessment{
			selfAssessment("c1", "e1", "e1", "deleted", 4, engagementTypes.ASSESSMENT_TYPE_SELF),
		}
		result := buildGapAnalysis(assessments, valueNames)
		if len(result) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(result))
		}
		if result[0].ValueName != engagementTypes.UNKNOWN_CORE_VALUE_LABEL {
			t.Errorf("valueName = %s, want %s", result[0].ValueName, engagementTypes.UNKNOWN_CORE_VALUE_LABEL)
		}
	})

	t.Run("duplicate natural keys are ignored", func(t *testing.T) {
		assessments := []engagementTypes.SelfAssessment{
			selfAssessment("c1", "e1", "e1", "cv1", 8, engagementTypes.ASSESSMENT_TYPE_SELF),
			selfAssessment("c1", "e1", "e1", "cv1", 3, engagementTypes.ASSESSMENT_TYPE_SELF),
		}
		result := buildGapAnalysis(assessments, valueNames)
		if len(result) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(result))
		}
		if result[0].SelfRating == nil || *result[0].SelfRating != 8 {
			t.Errorf("selfRating = %v, want 8", result[0].SelfRating)
		}
	})
}
