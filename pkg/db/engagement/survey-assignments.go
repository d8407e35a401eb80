package engagement

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

// UpsertSurveyAssignment creates the assignment if it does not exist yet.
// Re-assigning the same (survey, user) pair is a no-op, existing status and
// completion timestamp are left alone.
func (dbService *EngagementDBService) UpsertSurveyAssignment(tenantID string, surveyID string, userID string, assignedAt time.Time) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"surveyID": surveyID,
		"userID":   userID,
	}
	update := bson.M{
		"$setOnInsert": bson.M{
			"surveyID":   surveyID,
			"userID":     userID,
			"status":     engagementTypes.ASSIGNMENT_STATUS_PENDING,
			"assignedAt": assignedAt,
		},
	}

	_, err := dbService.collectionSurveyAssignments(tenantID).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// MarkAssignmentCompleted completes the user's assignment for the survey if
// one exists. Submitters without an assignment are not an error.
func (dbService *EngagementDBService) MarkAssignmentCompleted(tenantID string, surveyID string, userID string, completedAt time.Time) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"surveyID": surveyID,
		"userID":   userID,
	}
	update := bson.M{
		"$set": bson.M{
			"status":      engagementTypes.ASSIGNMENT_STATUS_COMPLETED,
			"completedAt": completedAt,
		},
	}

	_, err := dbService.collectionSurveyAssignments(tenantID).UpdateOne(ctx, filter, update)
	return err
}

func (dbService *EngagementDBService) CountSurveyAssignments(tenantID string, filter bson.M) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionSurveyAssignments(tenantID).CountDocuments(ctx, filter)
}

func (dbService *EngagementDBService) GetAssignmentsForSurvey(tenantID string, surveyID string) (assignments []engagementTypes.SurveyAssignment, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	cursor, err := dbService.collectionSurveyAssignments(tenantID).Find(ctx, bson.M{"surveyID": surveyID})
	if err != nil {
		return assignments, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &assignments)
	return assignments, err
}
