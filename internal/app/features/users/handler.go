// Package users implements the profile endpoints: own profile with
// expanded groups, profile updates, user search, and leaving a group.
package users

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	groupstore "github.com/bonkersapp/bonkers/internal/app/store/groups"
	userstore "github.com/bonkersapp/bonkers/internal/app/store/users"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

// Handler is the shared dependency container for the users feature.
// DB is needed alongside the stores because leaving a group is a dual
// write that runs through txn.Run.
type Handler struct {
	DB     *mongo.Database
	Users  *userstore.Store
	Groups *groupstore.Store
	Log    *zap.Logger

	errw webjson.ErrorWriter
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Users:  userstore.New(db),
		Groups: groupstore.New(db),
		Log:    logger,
		errw:   webjson.ErrorWriter{Log: logger},
	}
}
