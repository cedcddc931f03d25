package auth

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/inputval"
	"github.com/bonkersapp/bonkers/internal/app/system/normalize"
	"github.com/bonkersapp/bonkers/internal/app/system/sanitize"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
	"github.com/bonkersapp/bonkers/internal/domain/models"
	userstore "github.com/bonkersapp/bonkers/internal/app/store/users"
)

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates an account and signs the new user in.
//
// POST /api/auth/register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := webjson.Decode(r, &req); err != nil {
		h.errw.WriteError(w, r, err)
		return
	}

	req.FullName = sanitize.Text(normalize.Name(req.FullName))
	req.Email = normalize.Email(req.Email)

	if req.FullName == "" || req.Email == "" || req.Password == "" {
		h.errw.WriteError(w, r, apperr.Validationf("All fields are required"))
		return
	}
	if len(req.Password) < 6 {
		h.errw.WriteError(w, r, apperr.Validationf("Password must be at least 6 characters"))
		return
	}
	if !inputval.IsValidEmail(req.Email) {
		h.errw.WriteError(w, r, apperr.Validationf("Invalid email format"))
		return
	}
	if !inputval.MaxLen(req.FullName, 70) || !inputval.MaxLen(req.Email, 70) {
		h.errw.WriteError(w, r, apperr.Validationf("Fields must be at most 70 characters"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "hash password", err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Fast-path check; the unique email index closes the race.
	if _, err := h.Users.GetByEmail(ctx, req.Email); err == nil {
		h.errw.WriteError(w, r, apperr.Validationf("Email already exists"))
		return
	} else if err != mongo.ErrNoDocuments {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "check email", err))
		return
	}

	user, err := h.Users.Create(ctx, models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if err == userstore.ErrDuplicateEmail {
			h.errw.WriteError(w, r, apperr.Validationf("Email already exists"))
			return
		}
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "create user", err))
		return
	}

	if err := h.Sessions.IssueCookie(w, user.ID); err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "issue session", err))
		return
	}

	webjson.Write(w, http.StatusCreated, publicUser{
		ID:         user.ID.Hex(),
		FullName:   user.FullName,
		Email:      user.Email,
		ProfilePic: user.ProfilePic,
	})
}
