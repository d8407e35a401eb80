package directory

import (
	"context"
	"time"

	"github.com/engage-framework/engage-backend/pkg/db"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names
const (
	COLLECTION_NAME_USERS       = "users"
	COLLECTION_NAME_DEPARTMENTS = "departments"
)

// DirectoryDBService gives read access to the user and department directory
// maintained by the provisioning system. The engagement core only consumes
// membership lookups from it.
type DirectoryDBService struct {
	DBClient     *mongo.Client
	timeout      int
	DBNamePrefix string
	TenantIDs    []string
}

func NewDirectoryDBService(configs db.DBConfig) (*DirectoryDBService, error) {
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

	return &DirectoryDBService{
		DBClient:     dbClient,
		timeout:      configs.Timeout,
		DBNamePrefix: configs.DBNamePrefix,
		TenantIDs:    configs.TenantIDs,
	}, nil
}

func (dbService *DirectoryDBService) getDBName(tenantID string) string {
	return dbService.DBNamePrefix + tenantID + "_directoryDB"
}

func (dbService *DirectoryDBService) collectionUsers(tenantID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(tenantID)).Collection(COLLECTION_NAME_USERS)
}

func (dbService *DirectoryDBService) collectionDepartments(tenantID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(tenantID)).Collection(COLLECTION_NAME_DEPARTMENTS)
}

func (dbService *DirectoryDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}
