package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/engage-framework/engage-backend/pkg/apihelpers"
	"github.com/engage-framework/engage-backend/pkg/db"
	"github.com/engage-framework/engage-backend/pkg/engagement"
	"github.com/engage-framework/engage-backend/pkg/utils"
	"gopkg.in/yaml.v2"

	"github.com/gin-gonic/gin"

	directoryDB "github.com/engage-framework/engage-backend/pkg/db/directory"
	engagementDB "github.com/engage-framework/engage-backend/pkg/db/engagement"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	ENV_GIN_DEBUG_MODE             = "GIN_DEBUG_MODE"
	ENV_ENGAGEMENT_API_LISTEN_PORT = "ENGAGEMENT_API_LISTEN_PORT"
	ENV_CORS_ALLOW_ORIGINS         = "CORS_ALLOW_ORIGINS"

	ENV_USER_JWT_SIGN_KEY   = "USER_JWT_SIGN_KEY"
	ENV_USER_JWT_EXPIRES_IN = "USER_JWT_EXPIRES_IN"

	ENV_REQUIRE_MUTUAL_TLS     = "REQUIRE_MUTUAL_TLS"
	ENV_MUTUAL_TLS_SERVER_CERT = "MUTUAL_TLS_SERVER_CERT"
	ENV_MUTUAL_TLS_SERVER_KEY  = "MUTUAL_TLS_SERVER_KEY"
	ENV_MUTUAL_TLS_CA_CERT     = "MUTUAL_TLS_CA_CERT"

	ENV_TENANT_IDS = "TENANT_IDS"

	ENV_ENGAGEMENT_DB_CONNECTION_STR    = "ENGAGEMENT_DB_CONNECTION_STR"
	ENV_ENGAGEMENT_DB_USERNAME          = "ENGAGEMENT_DB_USERNAME"
	ENV_ENGAGEMENT_DB_PASSWORD          = "ENGAGEMENT_DB_PASSWORD"
	ENV_ENGAGEMENT_DB_CONNECTION_PREFIX = "ENGAGEMENT_DB_CONNECTION_PREFIX"
	ENV_ENGAGEMENT_DB_NAME_PREFIX       = "ENGAGEMENT_DB_NAME_PREFIX"
	ENV_ENGAGEMENT_DB_TIMEOUT           = "ENGAGEMENT_DB_TIMEOUT"
	ENV_ENGAGEMENT_DB_IDLE_CONN_TIMEOUT = "ENGAGEMENT_DB_IDLE_CONN_TIMEOUT"
	ENV_ENGAGEMENT_DB_MAX_POOL_SIZE     = "ENGAGEMENT_DB_MAX_POOL_SIZE"

	ENV_DIRECTORY_DB_CONNECTION_STR    = "DIRECTORY_DB_CONNECTION_STR"
	ENV_DIRECTORY_DB_USERNAME          = "DIRECTORY_DB_USERNAME"
	ENV_DIRECTORY_DB_PASSWORD          = "DIRECTORY_DB_PASSWORD"
	ENV_DIRECTORY_DB_CONNECTION_PREFIX = "DIRECTORY_DB_CONNECTION_PREFIX"
	ENV_DIRECTORY_DB_NAME_PREFIX       = "DIRECTORY_DB_NAME_PREFIX"
	ENV_DIRECTORY_DB_TIMEOUT           = "DIRECTORY_DB_TIMEOUT"
	ENV_DIRECTORY_DB_IDLE_CONN_TIMEOUT = "DIRECTORY_DB_IDLE_CONN_TIMEOUT"
	ENV_DIRECTORY_DB_MAX_POOL_SIZE     = "DIRECTORY_DB_MAX_POOL_SIZE"

	ENV_LOG_TO_FILE     = "LOG_TO_FILE"
	ENV_LOG_FILENAME    = "LOG_FILENAME"
	ENV_LOG_MAX_SIZE    = "LOG_MAX_SIZE"
	ENV_LOG_MAX_AGE     = "LOG_MAX_AGE"
	ENV_LOG_MAX_BACKUPS = "LOG_MAX_BACKUPS"
	ENV_LOG_LEVEL       = "LOG_LEVEL"
	ENV_LOG_INCLUDE_SRC = "LOG_INCLUDE_SRC"
)

var (
	engagementDBService *engagementDB.EngagementDBService
	directoryDBService  *directoryDB.DirectoryDBService
)

type Config struct {
	// Gin configs
	GinDebugMode bool     `json:"gin_debug_mode" yaml:"gin_debug_mode"`
	AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
	Port         string   `json:"port" yaml:"port"`

	// JWT configs
	UserJWTSignKey   string        `json:"user_jwt_sign_key" yaml:"user_jwt_sign_key"`
	UserJWTExpiresIn time.Duration `json:"user_jwt_expires_in" yaml:"user_jwt_expires_in"`

	AllowedTenantIDs []string `json:"allowed_tenant_ids" yaml:"allowed_tenant_ids"`

	// Mutual TLS configs
	UseMTLS          bool                        `json:"use_mtls" yaml:"use_mtls"`
	CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`

	EngagementDBConfig db.DBConfig `json:"engagement_db_config" yaml:"engagement_db_config"`
	DirectoryDBConfig  db.DBConfig `json:"directory_db_config" yaml:"directory_db_config"`
}

func init() {
	utils.ReadConfigFromEnvAndInitLogger(
		ENV_LOG_LEVEL,
		ENV_LOG_INCLUDE_SRC,
		ENV_LOG_TO_FILE,
		ENV_LOG_FILENAME,
		ENV_LOG_MAX_SIZE,
		ENV_LOG_MAX_AGE,
		ENV_LOG_MAX_BACKUPS,
	)

	conf = initConfig()
	if !conf.GinDebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	initDBs()

	initEngagementService()
}

func initDBs() {
	var err error
	engagementDBService, err = engagementDB.NewEngagementDBService(conf.EngagementDBConfig)
	if err != nil {
		slog.Error("Error connecting to Engagement DB", slog.String("error", err.Error()))
		panic(err)
	}

	directoryDBService, err = directoryDB.NewDirectoryDBService(conf.DirectoryDBConfig)
	if err != nil {
		slog.Error("Error connecting to Directory DB", slog.String("error", err.Error()))
		panic(err)
	}
}

func initEngagementService() {
	engagement.Init(
		engagementDBService,
		directoryDBService,
	)
}

func initConfig() Config {
	conf := Config{}

	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		fmt.Println("Error reading config file: " + err.Error())
		conf = Config{}
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		fmt.Println("Error reading config file: " + err.Error())
		conf = Config{}
	}

	conf.GinDebugMode = os.Getenv(ENV_GIN_DEBUG_MODE) == "true"
	conf.Port = os.Getenv(ENV_ENGAGEMENT_API_LISTEN_PORT)
	conf.AllowOrigins = strings.Split(os.Getenv(ENV_CORS_ALLOW_ORIGINS), ",")

	// JWT configs
	conf.UserJWTSignKey = os.Getenv(ENV_USER_JWT_SIGN_KEY)
	expInVal := os.Getenv(ENV_USER_JWT_EXPIRES_IN)
	conf.UserJWTExpiresIn, err = utils.ParseDurationString(expInVal)
	if err != nil {
		slog.Error("error during initConfig", slog.String("error", err.Error()), ENV_USER_JWT_EXPIRES_IN, expInVal)
		panic(err)
	}

	// Mutual TLS configs
	conf.UseMTLS = os.Getenv(ENV_REQUIRE_MUTUAL_TLS) == "true"
	conf.CertificatePaths = apihelpers.CertificatePaths{
		ServerCertPath: os.Getenv(ENV_MUTUAL_TLS_SERVER_CERT),
		ServerKeyPath:  os.Getenv(ENV_MUTUAL_TLS_SERVER_KEY),
		CACertPath:     os.Getenv(ENV_MUTUAL_TLS_CA_CERT),
	}

	// Engagement db configs
	conf.EngagementDBConfig = readEngagementDBConfig()

	// Directory db configs
	conf.DirectoryDBConfig = readDirectoryDBConfig()

	// Allowed tenant IDs
	conf.AllowedTenantIDs = readTenantIDs()
	return conf
}

func readTenantIDs() []string {
	return strings.Split(os.Getenv(ENV_TENANT_IDS), ",")
}

func readEngagementDBConfig() db.DBConfig {
	return db.ReadDBConfigFromEnv(
		"engagement DB",
		ENV_ENGAGEMENT_DB_CONNECTION_STR,
		ENV_ENGAGEMENT_DB_USERNAME,
		ENV_ENGAGEMENT_DB_PASSWORD,
		ENV_ENGAGEMENT_DB_CONNECTION_PREFIX,
		ENV_ENGAGEMENT_DB_TIMEOUT,
		ENV_ENGAGEMENT_DB_IDLE_CONN_TIMEOUT,
		ENV_ENGAGEMENT_DB_MAX_POOL_SIZE,
		ENV_ENGAGEMENT_DB_NAME_PREFIX,
		readTenantIDs(),
	)
}

func readDirectoryDBConfig() db.DBConfig {
	return db.ReadDBConfigFromEnv(
		"directory DB",
		ENV_DIRECTORY_DB_CONNECTION_STR,
		ENV_DIRECTORY_DB_USERNAME,
		ENV_DIRECTORY_DB_PASSWORD,
		ENV_DIRECTORY_DB_CONNECTION_PREFIX,
		ENV_DIRECTORY_DB_TIMEOUT,
		ENV_DIRECTORY_DB_IDLE_CONN_TIMEOUT,
		ENV_DIRECTORY_DB_MAX_POOL_SIZE,
		ENV_DIRECTORY_DB_NAME_PREFIX,
		readTenantIDs(),
	)
}
