package users

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

type searchRequest struct {
	Email string `json:"email"`
}

type searchResponse struct {
	ID         string `json:"_id"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	ProfilePic string `json:"profilePic"`
	NoOfGroups int    `json:"no_of_groups"`
}

// HandleSearch looks up another user by exact email, returning only
// public fields plus their group count.
//
// POST /api/users/search
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := webjson.Decode(r, &req); err != nil {
		h.errw.WriteError(w, r, err)
		return
	}
	if req.Email == "" {
		h.errw.WriteError(w, r, apperr.Validationf("Email is required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	found, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			h.errw.WriteError(w, r, apperr.New(apperr.NotFound, "User not found"))
			return
		}
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "search user", err))
		return
	}

	webjson.Write(w, http.StatusOK, searchResponse{
		ID:         found.ID.Hex(),
		Email:      found.Email,
		FullName:   found.FullName,
		ProfilePic: found.ProfilePic,
		NoOfGroups: len(found.Groups),
	})
}
