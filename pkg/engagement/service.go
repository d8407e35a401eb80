package engagement

import (
	directorydb "github.com/engage-framework/engage-backend/pkg/db/directory"
	engagementdb "github.com/engage-framework/engage-backend/pkg/db/engagement"
)

var (
	engagementDBService *engagementdb.EngagementDBService
	directoryDBService  *directorydb.DirectoryDBService
)

func Init(
	engagementDB *engagementdb.EngagementDBService,
	directoryDB *directorydb.DirectoryDBService,
) {
	engagementDBService = engagementDB
	directoryDBService = directoryDB
}
