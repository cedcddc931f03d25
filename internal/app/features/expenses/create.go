package expenses

import (
	"context"
	"net/http"

	"github.com/bonkersapp/bonkers/internal/app/policy/grouppolicy"
	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

// HandleCreate records a new expense in the group. The payload has
// already cleared the membership guard; the validator enforces the
// payer and split invariants.
//
// POST /api/expenses/{groupID}
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	group, ok := grouppolicy.GroupFrom(r)
	if !ok {
		h.errw.WriteError(w, r, apperr.New(apperr.NotFound, "Group not found"))
		return
	}

	var req expenseRequest
	if err := webjson.Decode(r, &req); err != nil {
		h.errw.WriteError(w, r, err)
		return
	}

	expense, err := buildExpense(req, group)
	if err != nil {
		h.writeValidationError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Expenses.Create(ctx, expense)
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "create expense", err))
		return
	}
	webjson.Write(w, http.StatusCreated, created)
}
