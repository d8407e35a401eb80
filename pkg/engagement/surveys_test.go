package engagement

import (
	"testing"

	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

func TestPrepareSurveyQuestions(t *testing.T) {
	notRequired := false
	customOrder := 7

	inputs := []NewSurveyQuestion{
		{Text: "Q1", Type: engagementTypes.QUESTION_TYPE_LIKERT_SCALE},
		{Text: "Q2", Type: engagementTypes.QUESTION_TYPE_OPEN_TEXT, IsRequired: &notRequired},
		{Text: "Q3", Type: engagementTypes.QUESTION_TYPE_YES_NO, SortOrder: &customOrder},
	}

	questions := prepareSurveyQuestions(inputs)
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}

	// isRequired defaults to true
	if !questions[0].IsRequired {
		t.Error("questions[0].IsRequired = false, want true")
	}
	if questions[1].IsRequired {
		t.Error("questions[1].IsRequired = true, want false")
	}

	// sortOrder defaults to the authoring index
	if questions[0].SortOrder != 0 || questions[1].SortOrder != 1 {
		t.Errorf("unexpected default sort orders: %d, %d", questions[0].SortOrder, questions[1].SortOrder)
	}
	if questions[2].SortOrder != 7 {
		t.Errorf("questions[2].SortOrder = %d, want 7", questions[2].SortOrder)
	}

	// every question gets its own id
	if questions[0].ID.IsZero() || questions[0].ID == questions[1].ID {
		t.Error("question ids not assigned")
	}
}

func TestResponseAttribution(t *testing.T) {
	tests := []struct {
		name        string
		isAnonymous bool
		userID      string
		want        string
	}{
		{
			name:        "anonymous survey drops known submitter",
			isAnonymous: true,
			userID:      "u1",
			want:        "",
		},
		{
			name:        "regular survey keeps submitter",
			isAnonymous: false,
			userID:      "u1",
			want:        "u1",
		},
		{
			name:        "regular survey without submitter",
			isAnonymous: false,
			userID:      "",
			want:        "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := responseAttribution(tt.isAnonymous, tt.userID); got != tt.want {
				t.Errorf("responseAttribution() = %q, want %q", got, tt.want)
			}
		})
	}
}
