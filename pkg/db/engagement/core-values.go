package engagement

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

func (dbService *EngagementDBService) CreateCoreValue(tenantID string, coreValue *engagementTypes.CoreValue) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	ret, err := dbService.collectionCoreValues(tenantID).InsertOne(ctx, coreValue)
	if err != nil {
		return err
	}
	coreValue.ID = ret.InsertedID.(primitive.ObjectID)
	return nil
}

func (dbService *EngagementDBService) GetCoreValues(tenantID string, activeOnly bool) (coreValues []engagementTypes.CoreValue, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}

	cursor, err := dbService.collectionCoreValues(tenantID).Find(ctx, filter)
	if err != nil {
		return coreValues, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &coreValues)
	return coreValues, err
}

func (dbService *EngagementDBService) GetCoreValueByID(tenantID string, coreValueID string) (coreValue engagementTypes.CoreValue, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(coreValueID)
	if err != nil {
		return coreValue, err
	}

	err = dbService.collectionCoreValues(tenantID).FindOne(ctx, bson.M{"_id": _id}).Decode(&coreValue)
	return coreValue, err
}

func (dbService *EngagementDBService) DeactivateCoreValue(tenantID string, coreValueID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(coreValueID)
	if err != nil {
		return err
	}

	res, err := dbService.collectionCoreValues(tenantID).UpdateOne(ctx, bson.M{"_id": _id}, bson.M{"$set": bson.M{"isActive": false}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
