package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Recognition struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SenderID    string             `bson:"senderID" json:"senderId"`
	ReceiverID  string             `bson:"receiverID" json:"receiverId"`
	CoreValueID string             `bson:"coreValueID" json:"coreValueId"`
	Message     string             `bson:"message" json:"message"`
	IsPublic    bool               `bson:"isPublic" json:"isPublic"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
