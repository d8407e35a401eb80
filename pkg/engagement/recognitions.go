package engagement

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	engagementdb "github.com/engage-framework/engage-backend/pkg/db/engagement"
	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

type NewRecognition struct {
	ReceiverID  string `json:"receiverId"`
	CoreValueID string `json:"coreValueId"`
	Message     string `json:"message"`
	IsPublic    bool   `json:"isPublic"`
}

// SendRecognition stores a peer recognition. The core value must exist in
// the tenant's catalog at send time; statistics tolerate later deletions.
func SendRecognition(tenantID string, senderID string, recognitionDef NewRecognition) (recognition engagementTypes.Recognition, err error) {
	if strings.TrimSpace(recognitionDef.Message) == "" {
		return recognition, NewInvalidInputError("recognition message is required")
	}
	if recognitionDef.ReceiverID == "" {
		return recognition, NewInvalidInputError("recognition receiver is required")
	}

	if _, err := engagementDBService.GetCoreValueByID(tenantID, recognitionDef.CoreValueID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return recognition, NewNotFoundError("core value not found")
		}
		return recognition, err
	}

	recognition = engagementTypes.Recognition{
		SenderID:    senderID,
		ReceiverID:  recognitionDef.ReceiverID,
		CoreValueID: recognitionDef.CoreValueID,
		Message:     recognitionDef.Message,
		IsPublic:    recognitionDef.IsPublic,
		CreatedAt:   time.Now(),
	}
	if err := engagementDBService.CreateRecognition(tenantID, &recognition); err != nil {
		return recognition, err
	}
	return recognition, nil
}

func GetRecognitionFeed(tenantID string, publicOnly bool, page int64, limit int64) ([]engagementTypes.Recognition, *engagementdb.PaginationInfos, error) {
	filter := bson.M{}
	if publicOnly {
		filter["isPublic"] = true
	}
	return engagementDBService.GetRecognitions(tenantID, filter, page, limit)
}
