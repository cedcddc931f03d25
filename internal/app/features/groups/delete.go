package groups

import (
	"context"
	"net/http"

	"github.com/bonkersapp/bonkers/internal/app/policy/grouppolicy"
	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/authz"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/txn"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

// HandleDelete removes a group entirely: the reference is pulled from
// every member's groups array, the group's expenses are deleted, then
// the group document itself. Creator only.
//
// DELETE /api/groups/{groupID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Mirrors and expenses first, group record last, so an
	// interrupted run can be retried against the still-present group.
	err := txn.Run(ctx, h.DB, h.Log, func(ctx context.Context) error {
		if err := h.Users.RemoveGroupFromAll(ctx, group.ID); err != nil {
			return err
		}
		if _, err := h.Expenses.DeleteByGroup(ctx, group.ID); err != nil {
			return err
		}
		return h.Groups.Delete(ctx, group.ID)
	})
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "delete group", err))
		return
	}

	webjson.WriteMessage(w, http.StatusOK, "Group deleted successfully")
}
