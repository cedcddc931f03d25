// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// minJWTSecretLen guards against weak HMAC keys; HS256 wants a key at
// least as long as the hash output.
const minJWTSecretLen = 32

// appConfigKeys defines the configuration keys for Bonkers. They are
// loaded through WAFFLE's config system with support for config files,
// BONKERS_* environment variables, and command-line flags.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "bonkers", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "jwt_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session token signing key (must be strong in production)"},
	{Name: "session_cookie", Default: "jwt-bonkers", Desc: "Session cookie name"},
	{Name: "session_ttl", Default: "168h", Desc: "Session token lifetime (e.g., 168h, 24h)"},

	{Name: "login_ip_limit", Default: 10, Desc: "Login attempts allowed per IP per window"},
	{Name: "login_ip_window", Default: "1m", Desc: "Per-IP login rate-limit window"},
	{Name: "login_user_limit", Default: 5, Desc: "Login attempts allowed per email per window"},
	{Name: "login_user_window", Default: "5m", Desc: "Per-email login rate-limit window"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL the API is served under"},
}

// LoadConfig loads WAFFLE core config and app-specific config. It runs
// first in the lifecycle so every later hook sees the same values.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "BONKERS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		JWTSecret:     appValues.String("jwt_secret"),
		SessionCookie: appValues.String("session_cookie"),
		SessionTTL:    appValues.Duration("session_ttl", 168*time.Hour),

		LoginIPLimit:    appValues.Int("login_ip_limit"),
		LoginIPWindow:   appValues.Duration("login_ip_window", time.Minute),
		LoginUserLimit:  appValues.Int("login_user_limit"),
		LoginUserWindow: appValues.Duration("login_user_window", 5*time.Minute),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig enforces app config invariants before any backend is
// touched.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if len(appCfg.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("jwt_secret must be at least %d characters", minJWTSecretLen)
	}
	if appCfg.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}
	return nil
}
