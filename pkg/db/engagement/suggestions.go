package engagement

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

func (dbService *EngagementDBService) CreateSuggestion(tenantID string, suggestion *engagementTypes.Suggestion) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	ret, err := dbService.collectionSuggestions(tenantID).InsertOne(ctx, suggestion)
	if err != nil {
		return err
	}
	suggestion.ID = ret.InsertedID.(primitive.ObjectID)
	return nil
}

func (dbService *EngagementDBService) GetSuggestionByID(tenantID string, suggestionID string) (suggestion engagementTypes.Suggestion, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(suggestionID)
	if err != nil {
		return suggestion, err
	}

	err = dbService.collectionSuggestions(tenantID).FindOne(ctx, bson.M{"_id": _id}).Decode(&suggestion)
	return suggestion, err
}

// get paginated suggestions, newest first
func (dbService *EngagementDBService) GetSuggestions(tenantID string, filter bson.M, page int64, limit int64) (suggestions []engagementTypes.Suggestion, paginationInfo *PaginationInfos, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	totalCount, err := dbService.collectionSuggestions(tenantID).CountDocuments(ctx, filter)
	if err != nil {
		return suggestions, nil, err
	}

	paginationInfo = prepPaginationInfos(totalCount, page, limit)
	skip := (paginationInfo.CurrentPage - 1) * paginationInfo.PageSize

	opts := options.Find().
		SetSort(bson.D{primitive.E{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(paginationInfo.PageSize)

	cursor, err := dbService.collectionSuggestions(tenantID).Find(ctx, filter, opts)
	if err != nil {
		return suggestions, nil, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &suggestions)
	return suggestions, paginationInfo, err
}

func (dbService *EngagementDBService) GetAllSuggestions(tenantID string) (suggestions []engagementTypes.Suggestion, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	cursor, err := dbService.collectionSuggestions(tenantID).Find(ctx, bson.M{})
	if err != nil {
		return suggestions, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &suggestions)
	return suggestions, err
}

func (dbService *EngagementDBService) UpdateSuggestionStatus(tenantID string, suggestionID string, status string, adminNote string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(suggestionID)
	if err != nil {
		return err
	}

	update := bson.M{
		"status": status,
	}
	if adminNote != "" {
		update["adminNote"] = adminNote
	}

	res, err := dbService.collectionSuggestions(tenantID).UpdateOne(ctx, bson.M{"_id": _id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
