package users

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

// HandleLeaveGroup removes the caller from a group they belong to.
// The creator cannot leave; they must delete the group instead. The
// group's member list and the user's group mirror are updated in one
// transactional unit.
//
// DELETE /api/users/leave-group/{groupID}
func (h *Handler) HandleLeaveGroup(w http.ResponseWriter, r *http.Request) {
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

	if grouppolicy.IsCreator(group, userID) {
		h.errw.WriteError(w, r, apperr.Validationf("You cannot leave a group you created"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	err := txn.Run(ctx, h.DB, h.Log, func(ctx context.Context) error {
		if err := h.Groups.RemoveMember(ctx, group.ID, userID); err != nil {
			return err
		}
		return h.Users.RemoveGroup(ctx, userID, group.ID)
	})
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "leave group", err))
		return
	}

	webjson.WriteMessage(w, http.StatusOK, "Left the group successfully")
}
