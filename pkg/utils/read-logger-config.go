package utils

import (
	"log/slog"
	"os"
	"strconv"
)

// ReadConfigFromEnvAndInitLogger configures the global slog logger from
// environment variables. Missing numeric values fall back to zero, which
// disables the respective rotation limit.
func ReadConfigFromEnvAndInitLogger(
	envLogLevel string,
	envLogIncludeSrc string,
	envLogToFile string,
	envLogFilename string,
	envLogMaxSize string,
	envLogMaxAge string,
	envLogMaxBackups string,
) {
	logToFile := os.Getenv(envLogToFile) == "true"

	maxSize := intFromEnv(envLogMaxSize)
	maxAge := intFromEnv(envLogMaxAge)
	maxBackups := intFromEnv(envLogMaxBackups)

	InitLogger(
		os.Getenv(envLogLevel),
		os.Getenv(envLogIncludeSrc) == "true",
		logToFile,
		os.Getenv(envLogFilename),
		maxSize,
		maxAge,
		maxBackups,
		true,
		"never",
	)
}

func intFromEnv(envName string) int {
	value := os.Getenv(envName)
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("could not parse env variable as number", slog.String("envVar", envName), slog.String("value", value))
		return 0
	}
	return parsed
}
