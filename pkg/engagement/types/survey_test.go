package types

import (
	"testing"
	"time"
)

func TestSurveyPublish(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("draft can be published", func(t *testing.T) {
		survey := Survey{Status: SURVEY_STATUS_DRAFT}
		if err := survey.Publish(now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if survey.Status != SURVEY_STATUS_PUBLISHED {
			t.Errorf("status = %s, want %s", survey.Status, SURVEY_STATUS_PUBLISHED)
		}
		if survey.PublishedAt == nil || !survey.PublishedAt.Equal(now) {
			t.Errorf("publishedAt not stamped: %v", survey.PublishedAt)
		}
	})

	t.Run("published cannot be published again", func(t *testing.T) {
		survey := Survey{Status: SURVEY_STATUS_PUBLISHED}
		if err := survey.Publish(now); err == nil {
			t.Error("expected error when publishing a published survey")
		}
	})

	t.Run("closed cannot be published", func(t *testing.T) {
		survey := Survey{Status: SURVEY_STATUS_CLOSED}
		if err := survey.Publish(now); err == nil {
			t.Error("expected error when publishing a closed survey")
		}
	})
}

func TestSurveyClose(t *testing.T) {
	t.Run("close keeps publishedAt", func(t *testing.T) {
		publishedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		survey := Survey{Status: SURVEY_STATUS_PUBLISHED, PublishedAt: &publishedAt}
		if err := survey.Close(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if survey.Status != SURVEY_STATUS_CLOSED {
			t.Errorf("status = %s, want %s", survey.Status, SURVEY_STATUS_CLOSED)
		}
		if survey.PublishedAt == nil || !survey.PublishedAt.Equal(publishedAt) {
			t.Errorf("publishedAt changed: %v", survey.PublishedAt)
		}
	})

	t.Run("draft can be closed directly", func(t *testing.T) {
		survey := Survey{Status: SURVEY_STATUS_DRAFT}
		if err := survey.Close(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if survey.Status != SURVEY_STATUS_CLOSED {
			t.Errorf("status = %s, want %s", survey.Status, SURVEY_STATUS_CLOSED)
		}
	})
}

func TestIsScorableQuestionType(t *testing.T) {
	tests := []struct {
		qType string
		want  bool
	}{
		{QUESTION_TYPE_LIKERT_SCALE, true},
		{QUESTION_TYPE_YES_NO, true},
		{QUESTION_TYPE_MULTIPLE_CHOICE, false},
		{QUESTION_TYPE_OPEN_TEXT, false},
	}
	for _, tt := range tests {
		if got := IsScorableQuestionType(tt.qType); got != tt.want {
			t.Errorf("IsScorableQuestionType(%s) = %v, want %v", tt.qType, got, tt.want)
		}
	}
}
