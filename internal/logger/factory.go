package logger

import (
	"github.com/rs/zerolog"
)

// One getter per log.levels key in config.yaml.

// GetServerLogger returns a logger for the HTTP server.
func GetServerLogger() zerolog.Logger {
	return GetLogger("server")
}

// GetContentLogger returns a logger for catalog loading.
func GetContentLogger() zerolog.Logger {
	return GetLogger("content")
}

// GetAssetLogger returns a logger for decorative asset fetching.
func GetAssetLogger() zerolog.Logger {
	return GetLogger("asset")
}

// GetAnalyticsLogger returns a logger for visitor tracking.
func GetAnalyticsLogger() zerolog.Logger {
	return GetLogger("analytics")
}

// GetAdminLogger returns a logger for admin routes.
func GetAdminLogger() zerolog.Logger {
	return GetLogger("admin")
}
