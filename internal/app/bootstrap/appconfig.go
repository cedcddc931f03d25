// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// Values come from environment variables (BONKERS_*), configuration
// files, or command-line flags, loaded in LoadConfig. Framework-level
// settings (ports, TLS, log level) live in WAFFLE's CoreConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connections in the driver pool
	MongoMinPoolSize uint64 // Min connections kept warm

	// Session configuration
	JWTSecret     string        // HMAC key for session tokens (must be strong in production)
	SessionCookie string        // Cookie name carrying the session token
	SessionTTL    time.Duration // Session token lifetime

	// Login rate limiting
	LoginIPLimit    int           // Attempts allowed per IP per window
	LoginIPWindow   time.Duration // Window for the per-IP limit
	LoginUserLimit  int           // Attempts allowed per email per window
	LoginUserWindow time.Duration // Window for the per-email limit

	// Base URL the API is served under (used for absolute links)
	BaseURL string
}
