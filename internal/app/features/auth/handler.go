// Package auth implements registration, login, logout, and the
// session check endpoint.
package auth

import (
	"go.uber.org/zap"

	userstore "github.com/bonkersapp/bonkers/internal/app/store/users"
	sysauth "github.com/bonkersapp/bonkers/internal/app/system/auth"
	"github.com/bonkersapp/bonkers/internal/app/system/ratelimit"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

// Handler is the shared dependency container for the auth feature.
type Handler struct {
	Users    *userstore.Store
	Sessions *sysauth.SessionManager
	Limiter  *ratelimit.LoginLimiter
	Log      *zap.Logger

	errw webjson.ErrorWriter
}

// NewHandler constructs the auth Handler. Called from bootstrap once
// the database and session manager are initialized.
func NewHandler(users *userstore.Store, sessions *sysauth.SessionManager, limiter *ratelimit.LoginLimiter, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    users,
		Sessions: sessions,
		Limiter:  limiter,
		Log:      logger,
		errw:     webjson.ErrorWriter{Log: logger},
	}
}

// publicUser is the account document sent to clients. The password
// hash never appears here.
type publicUser struct {
	ID         string `json:"_id"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	ProfilePic string `json:"profilePic"`
}
