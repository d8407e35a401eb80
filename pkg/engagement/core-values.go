package engagement

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	engagementTypes "github.com/engage-framework/engage-backend/pkg/engagement/types"
)

func CreateCoreValue(tenantID string, name string, description string) (coreValue engagementTypes.CoreValue, err error) {
	if strings.TrimSpace(name) == "" {
		return coreValue, NewInvalidInputError("core value name is required")
	}

	coreValue = engagementTypes.CoreValue{
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := engagementDBService.CreateCoreValue(tenantID, &coreValue); err != nil {
		return coreValue, err
	}
	return coreValue, nil
}

func GetCoreValues(tenantID string, activeOnly bool) ([]engagementTypes.CoreValue, error) {
	return engagementDBService.GetCoreValues(tenantID, activeOnly)
}

func DeactivateCoreValue(tenantID string, coreValueID string) error {
	err := engagementDBService.DeactivateCoreValue(tenantID, coreValueID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewNotFoundError("core value not found")
		}
		return err
	}
	return nil
}
