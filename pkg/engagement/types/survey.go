package types

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// survey statuses
const (
	SURVEY_STATUS_DRAFT     = "draft"
	SURVEY_STATUS_PUBLISHED = "published"
	SURVEY_STATUS_CLOSED    = "closed"
)

// question types
const (
	QUESTION_TYPE_LIKERT_SCALE    = "likert_scale"
	QUESTION_TYPE_YES_NO          = "yes_no"
	QUESTION_TYPE_MULTIPLE_CHOICE = "multiple_choice"
	QUESTION_TYPE_OPEN_TEXT       = "open_text"
)

var (
	ErrSurveyNotDraft = errors.New("survey is not in draft status")
	ErrSurveyClosed   = errors.New("survey is closed")
)

type Survey struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	AuthorID    string             `bson:"authorID,omitempty" json:"authorId,omitempty"`
	Status      string             `bson:"status" json:"status"`
	IsAnonymous bool               `bson:"isAnonymous" json:"isAnonymous"`
	Questions   []SurveyQuestion   `bson:"questions" json:"questions"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	PublishedAt *time.Time         `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	ClosesAt    *time.Time         `bson:"closesAt,omitempty" json:"closesAt,omitempty"`
}

type SurveyQuestion struct {
	ID          primitive.ObjectID `bson:"id" json:"id"`
	Text        string             `bson:"text" json:"text"`
	Type        string             `bson:"type" json:"type"`
	IsRequired  bool               `bson:"isRequired" json:"isRequired"`
	SortOrder   int                `bson:"sortOrder" json:"sortOrder"`
	CoreValueID string             `bson:"coreValueID,omitempty" json:"coreValueId,omitempty"`
	Options     []string           `bson:"options,omitempty" json:"options,omitempty"`
}

// Publish moves the survey from draft to published. Any other starting
// status is rejected.
func (s *Survey) Publish(now time.Time) error {
	if s.Status != SURVEY_STATUS_DRAFT {
		return ErrSurveyNotDraft
	}
	s.Status = SURVEY_STATUS_PUBLISHED
	s.PublishedAt = &now
	return nil
}

// Close is allowed from any non-terminal status. Closing an already closed
// survey is a no-op, publishedAt is never touched.
func (s *Survey) Close() error {
	s.Status = SURVEY_STATUS_CLOSED
	return nil
}

func (s *Survey) IsClosed() bool {
	return s.Status == SURVEY_STATUS_CLOSED
}

// IsScorableQuestionType reports whether answers to the question type carry
// a numeric value.
func IsScorableQuestionType(qType string) bool {
	return qType == QUESTION_TYPE_LIKERT_SCALE || qType == QUESTION_TYPE_YES_NO
}
