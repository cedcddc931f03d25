package users

import (
	"context"
	"net/http"

	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/authz"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

type groupSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"memberCount"`
}

type meResponse struct {
	ID         string         `json:"_id"`
	FullName   string         `json:"fullName"`
	Email      string         `json:"email"`
	ProfilePic string         `json:"profilePic"`
	Groups     []groupSummary `json:"groups"`
}

// ServeMe returns the caller's profile with each group reference
// expanded to {id, name, memberCount}. A group ID that no longer
// resolves (interrupted dual write) is skipped, not an error.
//
// GET /api/users/me
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := authz.UserCtx(r)
	if !ok {
		h.errw.WriteError(w, r, apperr.New(apperr.Unauthenticated, "Unauthorized - No Token Provided"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "load user", err))
		return
	}

	groups, err := h.Groups.ListByIDs(ctx, user.Groups)
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "load groups", err))
		return
	}

	summaries := make([]groupSummary, 0, len(groups))
	for _, g := range groups {
		summaries = append(summaries, groupSummary{
			ID:          g.ID.Hex(),
			Name:        g.Name,
			MemberCount: len(g.Members),
		})
	}

	webjson.Write(w, http.StatusOK, meResponse{
		ID:         user.ID.Hex(),
		FullName:   user.FullName,
		Email:      user.Email,
		ProfilePic: user.ProfilePic,
		Groups:     summaries,
	})
}
