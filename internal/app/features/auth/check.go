package auth

import (
	"context"
	"net/http"

	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/authz"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

// ServeCheck returns the authenticated user's account document.
//
// GET /api/auth/check
func (h *Handler) ServeCheck(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := authz.UserCtx(r)
	if !ok {
		h.errw.WriteError(w, r, apperr.New(apperr.Unauthenticated, "Unauthorized - No Token Provided"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "load user", err))
		return
	}

	webjson.Write(w, http.StatusOK, user)
}
