package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Label used in statistics when a referenced core value cannot be resolved,
// e.g. because it was deleted from the catalog.
const UNKNOWN_CORE_VALUE_LABEL = "Unknown"

// Label used in the heatmap for answers to questions without a core value.
const GENERAL_CORE_VALUE_LABEL = "General"

type CoreValue struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
