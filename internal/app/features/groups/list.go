package groups

import (
	"context"
	"net/http"
	"time"

	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/authz"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

type groupListItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Private     bool      `json:"private"`
	Creator     string    `json:"creator"`
	MemberCount int       `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ServeList returns every group the caller belongs to, with member
// counts. Group IDs on the user that no longer resolve are skipped.
//
// GET /api/groups
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
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

	items := make([]groupListItem, 0, len(groups))
	for _, g := range groups {
		items = append(items, groupListItem{
			ID:          g.ID.Hex(),
			Name:        g.Name,
			Description: g.Description,
			Private:     g.Private,
			Creator:     g.Creator.Hex(),
			MemberCount: len(g.Members),
			CreatedAt:   g.CreatedAt,
		})
	}
	webjson.Write(w, http.StatusOK, items)
}
