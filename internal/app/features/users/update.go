package users

import (
	"context"
	"net/http"

	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/authz"
	"github.com/bonkersapp/bonkers/internal/app/system/inputval"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

type updateProfileRequest struct {
	ProfilePic string `json:"profilePic"`
}

// HandleUpdateProfile sets the caller's profile picture URL. The image
// itself lives on an external media host; only the URL is stored.
//
// PUT /api/users/update-user
func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := authz.UserCtx(r)
	if !ok {
		h.errw.WriteError(w, r, apperr.New(apperr.Unauthenticated, "Unauthorized - No Token Provided"))
		return
	}

	var req updateProfileRequest
	if err := webjson.Decode(r, &req); err != nil {
		h.errw.WriteError(w, r, err)
		return
	}
	if req.ProfilePic == "" {
		h.errw.WriteError(w, r, apperr.Validationf("Profile pic is required"))
		return
	}
	if !inputval.IsValidHTTPURL(req.ProfilePic) {
		h.errw.WriteError(w, r, apperr.Validationf("Profile pic must be a valid URL"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Users.UpdateProfilePic(ctx, userID, req.ProfilePic); err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "update profile pic", err))
		return
	}

	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "load user", err))
		return
	}
	webjson.Write(w, http.StatusOK, user)
}
