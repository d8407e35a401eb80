package engagement

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

func (dbService *EngagementDBService) CreateRecognition(tenantID string, recognition *engagementTypes.Recognition) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	ret, err := dbService.collectionRecognitions(tenantID).InsertOne(ctx, recognition)
	if err != nil {
		return err
	}
	recognition.ID = ret.InsertedID.(primitive.ObjectID)
	return nil
}

func (dbService *EngagementDBService) GetRecognitionsByFilter(tenantID string, filter bson.M) (recognitions []engagementTypes.Recognition, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	cursor, err := dbService.collectionRecognitions(tenantID).Find(ctx, filter)
	if err != nil {
		return recognitions, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &recognitions)
	return recognitions, err
}

// get paginated recognitions, newest first
func (dbService *EngagementDBService) GetRecognitions(tenantID string, filter bson.M, page int64, limit int64) (recognitions []engagementTypes.Recognition, paginationInfo *PaginationInfos, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	totalCount, err := dbService.collectionRecognitions(tenantID).CountDocuments(ctx, filter)
	if err != nil {
		return recognitions, nil, err
	}

	paginationInfo = prepPaginationInfos(totalCount, page, limit)
	skip := (paginationInfo.CurrentPage - 1) * paginationInfo.PageSize

	opts := options.Find().
		SetSort(bson.D{primitive.E{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(paginationInfo.PageSize)

	cursor, err := dbService.collectionRecognitions(tenantID).Find(ctx, filter, opts)
	if err != nil {
		return recognitions, nil, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &recognitions)
	return recognitions, paginationInfo, err
}
