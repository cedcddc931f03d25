package groups

import (
	"context"
	"net/http"

	"github.com/bonkersapp/bonkers/internal/app/policy/grouppolicy"
	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/authz"
	"github.com/bonkersapp/bonkers/internal/app/system/inputval"
	"github.com/bonkersapp/bonkers/internal/app/system/normalize"
	"github.com/bonkersapp/bonkers/internal/app/system/sanitize"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

type updateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Private     *bool  `json:"private"`
}

// HandleUpdate replaces a group's name, description, and visibility.
// Creator only. A request that changes nothing is rejected so the
// client can tell a no-op edit from a real one.
//
// PUT /api/groups/{groupID}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := authz.UserCtx(r)
	if !ok {
		h.errw.WriteError(w, r, apperr.New(apperr.Unauthenticated, "Unauthorized - No Token Provided"))
		return
	}
	group, ok := grouppolicy.GroupFrom(r)
	if !ok {
		h.errw.WriteError(w, r, apperr.New(apperr.NotFound, "Group not found"))
		return
	}
	if !grouppolicy.IsCreator(group, userID) {
		h.errw.WriteError(w, r, apperr.New(apperr.Forbidden, "Access Denied: Only the group creator can perform this action"))
		return
	}

	var req updateGroupRequest
	if err := webjson.Decode(r, &req); err != nil {
		h.errw.WriteError(w, r, err)
		return
	}

	name := sanitize.Text(normalize.Name(req.Name))
	if name == "" {
		h.errw.WriteError(w, r, apperr.Validationf("Group name is required"))
		return
	}
	if !inputval.MaxLen(name, 70) {
		h.errw.WriteError(w, r, apperr.Validationf("Group name must be at most 70 characters"))
		return
	}
	description := sanitize.Text(normalize.Text(req.Description))
	if !inputval.MaxLen(description, 300) {
		h.errw.WriteError(w, r, apperr.Validationf("Description must be at most 300 characters"))
		return
	}
	private := group.Private
	if req.Private != nil {
		private = *req.Private
	}

	if name == group.Name && description == group.Description && private == group.Private {
		h.errw.WriteError(w, r, apperr.Validationf("No changes detected"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Groups.UpdateInfo(ctx, group.ID, name, description, private); err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "update group", err))
		return
	}
	updated, err := h.Groups.GetByID(ctx, group.ID)
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "load group", err))
		return
	}
	webjson.Write(w, http.StatusOK, updated)
}
