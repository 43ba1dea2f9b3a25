// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"fmt"
	"time"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
type AppConfig struct {
	// MongoDB
	DBHost           string
	DBPort           int
	DBDatabase       string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Redis session cache
	RedisHost string
	RedisPort int
	RedisDB   int

	// Session lifetime applied to every token issued on /connect.
	SessionTTL time.Duration

	// Blob storage root for uploaded file bytes.
	FolderPath string
}

// MongoURI builds the connection URI from the host/port settings.
func (c AppConfig) MongoURI() string {
	return fmt.Sprintf("mongodb://%s:%d", c.DBHost, c.DBPort)
}

// RedisAddr builds the host:port address for the Redis client.
func (c AppConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}
