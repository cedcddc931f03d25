// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time initialization after DB connect and schema
// setup, before the HTTP handler is built. Bonkers has no caches or
// shared resources to warm, so it only records the effective database.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	logger.Info("bonkers starting",
		zap.String("database", appCfg.MongoDatabase),
		zap.Duration("session_ttl", appCfg.SessionTTL))
	return nil
}
