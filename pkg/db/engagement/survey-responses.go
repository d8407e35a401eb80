package engagement

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

func (dbService *EngagementDBService) AddSurveyResponse(tenantID string, response *engagementTypes.SurveyResponse) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	ret, err := dbService.collectionSurveyResponses(tenantID).InsertOne(ctx, response)
	if err != nil {
		return err
	}
	response.ID = ret.InsertedID.(primitive.ObjectID)
	return nil
}

// responses created since the given time, oldest first
func (dbService *EngagementDBService) GetResponsesSince(tenantID string, since time.Time) (responses []engagementTypes.SurveyResponse, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"createdAt": bson.M{"$gte": since},
	}
	opts := options.Find().SetSort(bson.D{primitive.E{Key: "createdAt", Value: 1}})

	cursor, err := dbService.collectionSurveyResponses(tenantID).Find(ctx, filter, opts)
	if err != nil {
		return responses, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &responses)
	return responses, err
}

// responses that carry a submitter, used for department level aggregates
func (dbService *EngagementDBService) GetAttributedResponses(tenantID string) (responses []engagementTypes.SurveyResponse, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"userID": bson.M{"$exists": true, "$ne": ""},
	}

	cursor, err := dbService.collectionSurveyResponses(tenantID).Find(ctx, filter)
	if err != nil {
		return responses, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &responses)
	return responses, err
}

func (dbService *EngagementDBService) GetAllSurveyResponses(tenantID string) (responses []engagementTypes.SurveyResponse, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	cursor, err := dbService.collectionSurveyResponses(tenantID).Find(ctx, bson.M{})
	if err != nil {
		return responses, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &responses)
	return responses, err
}

func (dbService *EngagementDBService) CountSurveyResponses(tenantID string, filter bson.M) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionSurveyResponses(tenantID).CountDocuments(ctx, filter)
}

// get paginated responses for a survey, newest first
func (dbService *EngagementDBService) GetResponsesForSurvey(tenantID string, surveyID string, page int64, limit int64) (responses []engagementTypes.SurveyResponse, paginationInfo *PaginationInfos, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"surveyID": surveyID}

	totalCount, err := dbService.CountSurveyResponses(tenantID, filter)
	if err != nil {
		return responses, nil, err
	}

	paginationInfo = prepPaginationInfos(totalCount, page, limit)
	skip := (paginationInfo.CurrentPage - 1) * paginationInfo.PageSize

	opts := options.Find().
		SetSort(bson.D{primitive.E{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(paginationInfo.PageSize)

	cursor, err := dbService.collectionSurveyResponses(tenantID).Find(ctx, filter, opts)
	if err != nil {
		return responses, nil, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &responses)
	return responses, paginationInfo, err
}
