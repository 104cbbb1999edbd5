// internal/config/config.go
package config

// Environment variables recognized by satctl. All are optional; they tune
// log output only and have no effect on simulator behaviour.
const (
	// LogLevelEnvVar selects the minimum log level (debug, info, warn, error).
	LogLevelEnvVar = "SATCTL_LOG_LEVEL"
	// LogFormatEnvVar selects the log encoding (text or json).
	LogFormatEnvVar = "SATCTL_LOG_FORMAT"
	// LogTimezoneEnvVar names an IANA timezone for log timestamp display.
	LogTimezoneEnvVar = "SATCTL_LOG_TZ"
)
