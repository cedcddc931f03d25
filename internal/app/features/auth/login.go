package auth

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/normalize"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and sets the session cookie.
// The same "Invalid credentials" answer covers unknown email and wrong
// password so the endpoint does not confirm which emails exist.
//
// POST /api/auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := webjson.Decode(r, &req); err != nil {
		h.errw.WriteError(w, r, err)
		return
	}
	req.Email = normalize.Email(req.Email)

	if allowed, reason := h.Limiter.Check(r, req.Email); !allowed {
		webjson.Write(w, http.StatusTooManyRequests, map[string]string{"error": reason})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.errw.WriteError(w, r, apperr.Validationf("Invalid credentials"))
			return
		}
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "load user", err))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		h.errw.WriteError(w, r, apperr.Validationf("Invalid credentials"))
		return
	}

	if err := h.Sessions.IssueCookie(w, user.ID); err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "issue session", err))
		return
	}
	h.Limiter.ResetEmail(req.Email)

	webjson.Write(w, http.StatusOK, publicUser{
		ID:         user.ID.Hex(),
		FullName:   user.FullName,
		Email:      user.Email,
		ProfilePic: user.ProfilePic,
	})
}
