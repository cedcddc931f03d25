package groups

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bonkersapp/bonkers/internal/app/policy/grouppolicy"
	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/authz"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/txn"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
	"github.com/bonkersapp/bonkers/internal/domain/models"
)

// memberRequest resolves the shared preconditions of the membership
// endpoints: creator privilege and a well-formed member ID.
func (h *Handler) memberRequest(w http.ResponseWriter, r *http.Request) (*models.Group, primitive.ObjectID, bool) {
	userID, _, ok := authz.UserCtx(r)
	if !ok {
		h.errw.WriteError(w, r, apperr.New(apperr.Unauthenticated, "Unauthorized - No Token Provided"))
		return nil, primitive.NilObjectID, false
	}
	group, ok := grouppolicy.GroupFrom(r)
	if !ok {
		h.errw.WriteError(w, r, apperr.New(apperr.NotFound, "Group not found"))
		return nil, primitive.NilObjectID, false
	}
	if !grouppolicy.IsCreator(group, userID) {
		h.errw.WriteError(w, r, apperr.New(apperr.Forbidden, "Access Denied: Only the group creator can perform this action"))
		return nil, primitive.NilObjectID, false
	}
	memberID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "memberID"))
	if err != nil {
		h.errw.WriteError(w, r, apperr.New(apperr.NotFound, "User not found"))
		return nil, primitive.NilObjectID, false
	}
	return group, memberID, true
}

// HandleAddMember adds an existing user to the group. The group's
// member list and the user's group mirror are updated together.
//
// POST /api/groups/{groupID}/members/{memberID}
func (h *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	group, memberID, ok := h.memberRequest(w, r)
	if !ok {
		return
	}
	if group.HasMember(memberID) {
		h.errw.WriteError(w, r, apperr.Validationf("User is already a member of this group"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if _, err := h.Users.GetByID(ctx, memberID); err != nil {
		if err == mongo.ErrNoDocuments {
			h.errw.WriteError(w, r, apperr.New(apperr.NotFound, "User not found"))
			return
		}
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "load user", err))
		return
	}

	err := txn.Run(ctx, h.DB, h.Log, func(ctx context.Context) error {
		if err := h.Groups.AddMember(ctx, group.ID, memberID); err != nil {
			return err
		}
		return h.Users.AddGroup(ctx, memberID, group.ID)
	})
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "add member", err))
		return
	}

	updated, err := h.Groups.GetByID(ctx, group.ID)
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "load group", err))
		return
	}
	webjson.Write(w, http.StatusOK, updated)
}

// HandleRemoveMember removes a member from the group. The creator can
// never be removed.
//
// DELETE /api/groups/{groupID}/members/{memberID}
func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	group, memberID, ok := h.memberRequest(w, r)
	if !ok {
		return
	}
	if memberID == group.Creator {
		h.errw.WriteError(w, r, apperr.Validationf("You cannot remove the group creator"))
		return
	}
	if !group.HasMember(memberID) {
		h.errw.WriteError(w, r, apperr.Validationf("User is not a member of this group"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	err := txn.Run(ctx, h.DB, h.Log, func(ctx context.Context) error {
		if err := h.Groups.RemoveMember(ctx, group.ID, memberID); err != nil {
			return err
		}
		return h.Users.RemoveGroup(ctx, memberID, group.ID)
	})
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "remove member", err))
		return
	}

	updated, err := h.Groups.GetByID(ctx, group.ID)
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "load group", err))
		return
	}
	webjson.Write(w, http.StatusOK, updated)
}
