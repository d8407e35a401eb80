package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// assessment types
const (
	ASSESSMENT_TYPE_SELF    = "self"
	ASSESSMENT_TYPE_MANAGER = "manager"
)

type AssessmentCycle struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	StartDate time.Time          `bson:"startDate" json:"startDate"`
	EndDate   time.Time          `bson:"endDate" json:"endDate"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// AssessmentKey is the natural key of a self/manager assessment. It is used
// both as the uniqueness constraint in the store and as map key during gap
// analysis grouping.
type AssessmentKey struct {
	CycleID     string `bson:"cycleID" json:"cycleId"`
	EmployeeID  string `bson:"employeeID" json:"employeeId"`
	AssessorID  string `bson:"assessorID" json:"assessorId"`
	CoreValueID string `bson:"coreValueID" json:"coreValueId"`
}

// SelfAssessment stores one rating for a core value within a cycle.
// Resubmitting the same key overwrites rating and comment only.
type SelfAssessment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AssessmentKey  `bson:",inline"`
	Rating         float64   `bson:"rating" json:"rating"`
	Comment        string    `bson:"comment,omitempty" json:"comment,omitempty"`
	AssessmentType string    `bson:"assessmentType" json:"assessmentType"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
