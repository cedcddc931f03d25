package expenses

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bonkersapp/bonkers/internal/app/policy/grouppolicy"
	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

// DELETE /api/expenses/{groupID}/{expenseID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	group, ok := grouppolicy.GroupFrom(r)
	if !ok {
		h.errw.WriteError(w, r, apperr.New(apperr.NotFound, "Group not found"))
		return
	}
	expenseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "expenseID"))
	if err != nil {
		h.errw.WriteError(w, r, apperr.New(apperr.NotFound, "Expense not found"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Expenses.Delete(ctx, group.ID, expenseID)
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "delete expense", err))
		return
	}
	if deleted == 0 {
		h.errw.WriteError(w, r, apperr.New(apperr.NotFound, "Expense not found"))
		return
	}
	webjson.WriteMessage(w, http.StatusOK, "Expense deleted successfully")
}
