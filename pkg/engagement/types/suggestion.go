package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// suggestion statuses
const (
	SUGGESTION_STATUS_OPEN        = "open"
	SUGGESTION_STATUS_IN_PROGRESS = "in_progress"
	SUGGESTION_STATUS_RESOLVED    = "resolved"
	SUGGESTION_STATUS_DISMISSED   = "dismissed"
)

// Suggestion is an anonymous-by-default feedback entry. UserID is only set
// when the submitter chose to attach their identity.
type Suggestion struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Text      string             `bson:"text" json:"text"`
	Tags      []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Status    string             `bson:"status" json:"status"`
	AdminNote string             `bson:"adminNote,omitempty" json:"adminNote,omitempty"`
	UserID    string             `bson:"userID,omitempty" json:"userId,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
