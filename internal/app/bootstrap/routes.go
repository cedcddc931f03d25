// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	authfeature "github.com/bonkersapp/bonkers/internal/app/features/auth"
	expensesfeature "github.com/bonkersapp/bonkers/internal/app/features/expenses"
	groupsfeature "github.com/bonkersapp/bonkers/internal/app/features/groups"
	healthfeature "github.com/bonkersapp/bonkers/internal/app/features/health"
	usersfeature "github.com/bonkersapp/bonkers/internal/app/features/users"
	"github.com/bonkersapp/bonkers/internal/app/policy/grouppolicy"
	groupstore "github.com/bonkersapp/bonkers/internal/app/store/groups"
	userstore "github.com/bonkersapp/bonkers/internal/app/store/users"
	"github.com/bonkersapp/bonkers/internal/app/system/auth"
	"github.com/bonkersapp/bonkers/internal/app/system/metrics"
	"github.com/bonkersapp/bonkers/internal/app/system/ratelimit"
	"github.com/bonkersapp/bonkers/internal/app/system/requestid"
)

// BuildHandler constructs the root HTTP handler for the app.
//
// WAFFLE calls this after configuration, DB connection, schema setup,
// and Startup have completed. It builds the session manager, the login
// rate limiter, and the membership guard, then mounts every feature
// router under /api.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.JWTSecret, appCfg.SessionCookie, appCfg.SessionTTL, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}
	sessionMgr.SetUserFetcher(sessionFetcher(deps.MongoDatabase))

	limiter := ratelimit.NewLoginLimiterWithConfig(
		appCfg.LoginIPLimit, appCfg.LoginIPWindow,
		appCfg.LoginUserLimit, appCfg.LoginUserWindow,
	)
	guard := grouppolicy.NewGuard(groupstore.New(deps.MongoDatabase), logger)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(metrics.Instrument)

	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Get("/health", healthHandler.Serve)
	r.Handle("/metrics", metrics.Handler())

	authHandler := authfeature.NewHandler(userstore.New(deps.MongoDatabase), sessionMgr, limiter, logger)
	r.Mount("/api/auth", authfeature.Routes(authHandler))

	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/users", usersfeature.Routes(usersHandler, sessionMgr, guard))

	groupsHandler := groupsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/groups", groupsfeature.Routes(groupsHandler, sessionMgr, guard))

	expensesHandler := expensesfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/expenses", expensesfeature.Routes(expensesHandler, sessionMgr, guard))

	return r, nil
}

// sessionFetcher adapts the user store to auth.UserFetcher. A missing
// user is (nil, nil): the caller treats it as a dead session, not a
// server fault.
func sessionFetcher(db *mongo.Database) auth.UserFetcher {
	users := userstore.New(db)
	return func(ctx context.Context, id primitive.ObjectID) (*auth.SessionUser, error) {
		u, err := users.GetByID(ctx, id)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, nil
			}
			return nil, err
		}
		return &auth.SessionUser{ID: u.ID, Name: u.FullName, Email: u.Email}, nil
	}
}
