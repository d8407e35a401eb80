package engagement

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

var sortByPublishedAtDesc = bson.D{
	primitive.E{Key: "publishedAt", Value: -1},
}

func (dbService *EngagementDBService) CreateSurvey(tenantID string, survey *engagementTypes.Survey) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	ret, err := dbService.collectionSurveys(tenantID).InsertOne(ctx, survey)
	if err != nil {
		return err
	}
	survey.ID = ret.InsertedID.(primitive.ObjectID)
	return nil
}

func (dbService *EngagementDBService) GetSurveyByID(tenantID string, surveyID string) (survey engagementTypes.Survey, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(surveyID)
	if err != nil {
		return survey, err
	}

	filter := bson.M{
		"_id": _id,
	}

	err = dbService.collectionSurveys(tenantID).FindOne(ctx, filter).Decode(&survey)
	return survey, err
}

// get paginated surveys, newest first
func (dbService *EngagementDBService) GetSurveys(tenantID string, filter bson.M, page int64, limit int64) (surveys []engagementTypes.Survey, paginationInfo *PaginationInfos, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	totalCount, err := dbService.collectionSurveys(tenantID).CountDocuments(ctx, filter)
	if err != nil {
		return surveys, nil, err
	}

	paginationInfo = prepPaginationInfos(totalCount, page, limit)
	skip := (paginationInfo.CurrentPage - 1) * paginationInfo.PageSize

	opts := options.Find().
		SetSort(bson.D{primitive.E{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(paginationInfo.PageSize)

	cursor, err := dbService.collectionSurveys(tenantID).Find(ctx, filter, opts)
	if err != nil {
		return surveys, nil, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &surveys)
	return surveys, paginationInfo, err
}

// surveys that have been published at least once, most recently published first
func (dbService *EngagementDBService) GetNonDraftSurveys(tenantID string) (surveys []engagementTypes.Survey, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"status": bson.M{"$ne": engagementTypes.SURVEY_STATUS_DRAFT},
	}

	opts := options.Find().SetSort(sortByPublishedAtDesc)

	cursor, err := dbService.collectionSurveys(tenantID).Find(ctx, filter, opts)
	if err != nil {
		return surveys, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &surveys)
	return surveys, err
}

func (dbService *EngagementDBService) GetAllSurveys(tenantID string) (surveys []engagementTypes.Survey, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	cursor, err := dbService.collectionSurveys(tenantID).Find(ctx, bson.M{})
	if err != nil {
		return surveys, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &surveys)
	return surveys, err
}

// UpdateSurveyFields applies a $set patch to a survey document.
func (dbService *EngagementDBService) UpdateSurveyFields(tenantID string, surveyID string, update bson.M) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(surveyID)
	if err != nil {
		return err
	}

	res, err := dbService.collectionSurveys(tenantID).UpdateOne(ctx, bson.M{"_id": _id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (dbService *EngagementDBService) DeleteSurvey(tenantID string, surveyID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(surveyID)
	if err != nil {
		return err
	}

	res, err := dbService.collectionSurveys(tenantID).DeleteOne(ctx, bson.M{"_id": _id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
