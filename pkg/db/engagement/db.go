package engagement

import (
	"context"
	"log/slog"
	"time"

	"github.com/engage-framework/engage-backend/pkg/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names
const (
	COLLECTION_NAME_CORE_VALUES        = "coreValues"
	COLLECTION_NAME_SURVEYS            = "surveys"
	COLLECTION_NAME_SURVEY_ASSIGNMENTS = "surveyAssignments"
	COLLECTION_NAME_SURVEY_RESPONSES   = "surveyResponses"
	COLLECTION_NAME_ASSESSMENT_CYCLES  = "assessmentCycles"
	COLLECTION_NAME_SELF_ASSESSMENTS   = "selfAssessments"
	COLLECTION_NAME_SUGGESTIONS        = "suggestions"
	COLLECTION_NAME_RECOGNITIONS       = "recognitions"
)

type EngagementDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
	TenantIDs    []string
}

func NewEngagementDBService(configs db.DBConfig) (*EngagementDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)
	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	engagementDBSc := &EngagementDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
		TenantIDs:    configs.TenantIDs,
	}

	if err := engagementDBSc.ensureIndexes(); err != nil {
		slog.Error("Error ensuring indexes for engagement DB", slog.String("error", err.Error()))
	}

	return engagementDBSc, nil
}

// Every tenant gets its own database, so no query can ever cross tenants.
func (dbService *EngagementDBService) getDBName(tenantID string) string {
	return dbService.DBNamePrefix + tenantID + "_engagementDB"
}

func (dbService *EngagementDBService) collectionCoreValues(tenantID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(tenantID)).Collection(COLLECTION_NAME_CORE_VALUES)
}

func (dbService *EngagementDBService) collectionSurveys(tenantID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(tenantID)).Collection(COLLECTION_NAME_SURVEYS)
}

func (dbService *EngagementDBService) collectionSurveyAssignments(tenantID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(tenantID)).Collection(COLLECTION_NAME_SURVEY_ASSIGNMENTS)
}

func (dbService *EngagementDBService) collectionSurveyResponses(tenantID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(tenantID)).Collection(COLLECTION_NAME_SURVEY_RESPONSES)
}

func (dbService *EngagementDBService) collectionAssessmentCycles(tenantID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(tenantID)).Collection(COLLECTION_NAME_ASSESSMENT_CYCLES)
}

func (dbService *EngagementDBService) collectionSelfAssessments(tenantID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(tenantID)).Collection(COLLECTION_NAME_SELF_ASSESSMENTS)
}

func (dbService *EngagementDBService) collectionSuggestions(tenantID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(tenantID)).Collection(COLLECTION_NAME_SUGGESTIONS)
}

func (dbService *EngagementDBService) collectionRecognitions(tenantID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(tenantID)).Collection(COLLECTION_NAME_RECOGNITIONS)
}

func (dbService *EngagementDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *EngagementDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for engagement DB")

	for _, tenantID := range dbService.TenantIDs {
		err := dbService.CreateIndexForSelfAssessmentsCollection(tenantID)
		if err != nil {
			slog.Error("Error creating index for selfAssessments", slog.String("tenantID", tenantID), slog.String("error", err.Error()))
		}

		err = dbService.CreateIndexForSurveyAssignmentsCollection(tenantID)
		if err != nil {
			slog.Error("Error creating index for surveyAssignments", slog.String("tenantID", tenantID), slog.String("error", err.Error()))
		}

		err = dbService.CreateIndexForSurveyResponsesCollection(tenantID)
		if err != nil {
			slog.Error("Error creating index for surveyResponses", slog.String("tenantID", tenantID), slog.String("error", err.Error()))
		}

		err = dbService.CreateIndexForRecognitionsCollection(tenantID)
		if err != nil {
			slog.Error("Error creating index for recognitions", slog.String("tenantID", tenantID), slog.String("error", err.Error()))
		}
	}
	return nil
}

// The unique compound index serializes racing submissions for the same
// natural key to a single row.
func (dbService *EngagementDBService) CreateIndexForSelfAssessmentsCollection(tenantID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	collection := dbService.collectionSelfAssessments(tenantID)
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "cycleID", Value: 1},
			{Key: "employeeID", Value: 1},
			{Key: "assessorID", Value: 1},
			{Key: "coreValueID", Value: 1},
		},
		Options: options.Index().SetName("assessmentKey_1").SetUnique(true),
	})
	return err
}

func (dbService *EngagementDBService) CreateIndexForSurveyAssignmentsCollection(tenantID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	collection := dbService.collectionSurveyAssignments(tenantID)
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "surveyID", Value: 1},
			{Key: "userID", Value: 1},
		},
		Options: options.Index().SetName("surveyID_userID_1").SetUnique(true),
	})
	return err
}

func (dbService *EngagementDBService) CreateIndexForSurveyResponsesCollection(tenantID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	collection := dbService.collectionSurveyResponses(tenantID)
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "surveyID", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "createdAt", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "userID", Value: 1},
				{Key: "createdAt", Value: 1},
			},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (dbService *EngagementDBService) CreateIndexForRecognitionsCollection(tenantID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	collection := dbService.collectionRecognitions(tenantID)
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "receiverID", Value: 1},
			},
		},
		{
			Keys: bson.D{
				{Key: "createdAt", Value: -1},
			},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
