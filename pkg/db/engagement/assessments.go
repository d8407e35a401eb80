package engagement

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

func (dbService *EngagementDBService) CreateAssessmentCycle(tenantID string, cycle *engagementTypes.AssessmentCycle) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	ret, err := dbService.collectionAssessmentCycles(tenantID).InsertOne(ctx, cycle)
	if err != nil {
		return err
	}
	cycle.ID = ret.InsertedID.(primitive.ObjectID)
	return nil
}

func (dbService *EngagementDBService) GetAssessmentCycleByID(tenantID string, cycleID string) (cycle engagementTypes.AssessmentCycle, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(cycleID)
	if err != nil {
		return cycle, err
	}

	err = dbService.collectionAssessmentCycles(tenantID).FindOne(ctx, bson.M{"_id": _id}).Decode(&cycle)
	return cycle, err
}

// active cycles, most recently started first
func (dbService *EngagementDBService) GetActiveAssessmentCycles(tenantID string) (cycles []engagementTypes.AssessmentCycle, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"isActive": true}
	opts := options.Find().SetSort(bson.D{primitive.E{Key: "startDate", Value: -1}})

	cursor, err := dbService.collectionAssessmentCycles(tenantID).Find(ctx, filter, opts)
	if err != nil {
		return cycles, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &cycles)
	return cycles, err
}

// UpsertSelfAssessment writes rating and comment for the natural key. The
// assessment type and the key fields are only ever set on insert; the unique
// index on the key guarantees racing writers end up with one row.
func (dbService *EngagementDBService) UpsertSelfAssessment(
	tenantID string,
	key engagementTypes.AssessmentKey,
	rating float64,
	comment string,
	assessmentType string,
) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"cycleID":     key.CycleID,
		"employeeID":  key.EmployeeID,
		"assessorID":  key.AssessorID,
		"coreValueID": key.CoreValueID,
	}
	update := bson.M{
		"$set": bson.M{
			"rating":    rating,
			"comment":   comment,
			"updatedAt": time.Now(),
		},
		"$setOnInsert": bson.M{
			"cycleID":        key.CycleID,
			"employeeID":     key.EmployeeID,
			"assessorID":     key.AssessorID,
			"coreValueID":    key.CoreValueID,
			"assessmentType": assessmentType,
		},
	}

	_, err := dbService.collectionSelfAssessments(tenantID).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// assessments of an employee within a cycle, in insertion order
func (dbService *EngagementDBService) GetAssessmentsForEmployee(tenantID string, cycleID string, employeeID string) (assessments []engagementTypes.SelfAssessment, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"cycleID":    cycleID,
		"employeeID": employeeID,
	}
	opts := options.Find().SetSort(bson.D{primitive.E{Key: "_id", Value: 1}})

	cursor, err := dbService.collectionSelfAssessments(tenantID).Find(ctx, filter, opts)
	if err != nil {
		return assessments, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &assessments)
	return assessments, err
}
