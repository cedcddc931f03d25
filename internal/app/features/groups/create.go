package groups

import (
	"context"
	"net/http"

	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/authz"
	"github.com/bonkersapp/bonkers/internal/app/system/inputval"
	"github.com/bonkersapp/bonkers/internal/app/system/normalize"
	"github.com/bonkersapp/bonkers/internal/app/system/sanitize"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/txn"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
	"github.com/bonkersapp/bonkers/internal/domain/models"
)

type createGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// Pointer so an absent field can default to private.
	Private *bool `json:"private"`
}

// HandleCreate makes a new group with the caller as creator and sole
// member. The group ID is mirrored onto the creator's groups array in
// the same transactional unit.
//
// POST /api/groups
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := authz.UserCtx(r)
	if !ok {
		h.errw.WriteError(w, r, apperr.New(apperr.Unauthenticated, "Unauthorized - No Token Provided"))
		return
	}

	var req createGroupRequest
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
	private := true
	if req.Private != nil {
		private = *req.Private
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var created models.Group
	err := txn.Run(ctx, h.DB, h.Log, func(ctx context.Context) error {
		var err error
		created, err = h.Groups.Create(ctx, models.Group{
			Name:        name,
			Description: description,
			Private:     private,
			Creator:     userID,
		})
		if err != nil {
			return err
		}
		return h.Users.AddGroup(ctx, userID, created.ID)
	})
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "create group", err))
		return
	}

	webjson.Write(w, http.StatusCreated, created)
}
