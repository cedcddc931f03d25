package expenses

import (
	"context"
	"net/http"

	"github.com/bonkersapp/bonkers/internal/app/policy/grouppolicy"
	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

// HandleUpdate replaces an existing expense. The payload runs through
// the same validator as create. The owning group comes from the URL
// and cannot change; the payload has no group field.
//
// PUT /api/expenses/{groupID}/{expenseID}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	existing, err := h.expenseFromURL(ctx, r)
	if err != nil {
		h.errw.WriteError(w, r, err)
		return
	}

	expense, err := buildExpense(req, group)
	if err != nil {
		h.writeValidationError(w, r, err)
		return
	}
	expense.ID = existing.ID
	if req.Date == nil {
		expense.Date = existing.Date
	}

	if err := h.Expenses.Update(ctx, group.ID, expense); err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "update expense", err))
		return
	}
	updated, err := h.Expenses.GetByID(ctx, group.ID, expense.ID)
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "load expense", err))
		return
	}
	webjson.Write(w, http.StatusOK, updated)
}
