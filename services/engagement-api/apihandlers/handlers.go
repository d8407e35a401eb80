package apihandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	directoryDB "github.com/engage-framework/engage-backend/pkg/db/directory"
	engagementDB "github.com/engage-framework/engage-backend/pkg/db/engagement"
	"github.com/gin-gonic/gin"
)

func HealthCheckHandle(c *gin.Context) {
	serviceInfos := make(map[string]interface{})
	infos, err := os.ReadFile("serviceInfos.json")
	if err != nil {
		slog.Debug("Error reading serviceInfos.json", slog.String("error", err.Error()))
	} else {
		err = json.Unmarshal(infos, &serviceInfos)
		if err != nil {
			slog.Debug("Error unmarshalling serviceInfos.json", slog.String("error", err.Error()))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"serviceInfos": serviceInfos,
	})
}

type HttpEndpoints struct {
	engagementDBConn *engagementDB.EngagementDBService
	directoryDBConn  *directoryDB.DirectoryDBService
	tokenSignKey     string
	tokenExpiresIn   time.Duration
	allowedTenantIDs []string
}

func NewHTTPHandler(
	tokenSignKey string,
	tokenExpiresIn time.Duration,
	engagementDBConn *engagementDB.EngagementDBService,
	directoryDBConn *directoryDB.DirectoryDBService,
	allowedTenantIDs []string,
) *HttpEndpoints {
	return &HttpEndpoints{
		tokenSignKey:     tokenSignKey,
		tokenExpiresIn:   tokenExpiresIn,
		engagementDBConn: engagementDBConn,
		directoryDBConn:  directoryDBConn,
		allowedTenantIDs: allowedTenantIDs,
	}
}
