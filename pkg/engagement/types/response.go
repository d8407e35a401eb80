package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// assignment statuses
const (
	ASSIGNMENT_STATUS_PENDING   = "pending"
	ASSIGNMENT_STATUS_COMPLETED = "completed"
)

// SurveyAssignment tracks that a user owes a response to a survey. It is
// kept separate from the response itself, so completion can be recorded
// even when the response is stored without attribution.
type SurveyAssignment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SurveyID    string             `bson:"surveyID" json:"surveyId"`
	UserID      string             `bson:"userID" json:"userId"`
	Status      string             `bson:"status" json:"status"`
	AssignedAt  time.Time          `bson:"assignedAt" json:"assignedAt"`
	CompletedAt *time.Time         `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}

// SurveyResponse holds one submission with its answers embedded. UserID
// stays empty for responses to anonymous surveys.
type SurveyResponse struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SurveyID  string             `bson:"surveyID" json:"surveyId"`
	UserID    string             `bson:"userID,omitempty" json:"userId,omitempty"`
	Answers   []SurveyAnswer     `bson:"answers" json:"answers"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// SurveyAnswer carries either a numeric or a text value, depending on the
// question type.
type SurveyAnswer struct {
	QuestionID   string   `bson:"questionID" json:"questionId"`
	NumericValue *float64 `bson:"numericValue,omitempty" json:"numericValue,omitempty"`
	TextValue    string   `bson:"textValue,omitempty" json:"textValue,omitempty"`
}
