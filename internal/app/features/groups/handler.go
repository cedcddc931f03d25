// Package groups implements group lifecycle: create, list, view,
// update, delete, and membership management.
package groups

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	expensestore "github.com/bonkersapp/bonkers/internal/app/store/expenses"
	groupstore "github.com/bonkersapp/bonkers/internal/app/store/groups"
	userstore "github.com/bonkersapp/bonkers/internal/app/store/users"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

type Handler struct {
	DB       *mongo.Database
	Users    *userstore.Store
	Groups   *groupstore.Store
	Expenses *expensestore.Store
	Log      *zap.Logger

	errw webjson.ErrorWriter
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Users:    userstore.New(db),
		Groups:   groupstore.New(db),
		Expenses: expensestore.New(db),
		Log:      logger,
		errw:     webjson.ErrorWriter{Log: logger},
	}
}
