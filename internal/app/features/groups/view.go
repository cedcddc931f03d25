package groups

import (
	"context"
	"net/http"

	"github.com/bonkersapp/bonkers/internal/app/policy/grouppolicy"
	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
	"github.com/bonkersapp/bonkers/internal/domain/models"
)

type memberSummary struct {
	ID         string `json:"_id"`
	FullName   string `json:"fullName"`
	ProfilePic string `json:"profilePic"`
}

type groupDetail struct {
	models.Group
	MemberDetails []memberSummary `json:"memberDetails"`
}

// ServeGroup returns one group with its member list expanded to
// display fields. Membership is already enforced by the route guard.
//
// GET /api/groups/{groupID}
func (h *Handler) ServeGroup(w http.ResponseWriter, r *http.Request) {
	group, ok := grouppolicy.GroupFrom(r)
	if !ok {
		h.errw.WriteError(w, r, apperr.New(apperr.NotFound, "Group not found"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	members, err := h.Users.ListByIDs(ctx, group.Members)
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "load members", err))
		return
	}

	detail := groupDetail{Group: *group, MemberDetails: make([]memberSummary, 0, len(members))}
	for _, m := range members {
		detail.MemberDetails = append(detail.MemberDetails, memberSummary{
			ID:         m.ID.Hex(),
			FullName:   m.FullName,
			ProfilePic: m.ProfilePic,
		})
	}
	webjson.Write(w, http.StatusOK, detail)
}
