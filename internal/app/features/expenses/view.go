package expenses

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bonkersapp/bonkers/internal/app/policy/grouppolicy"
	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
	"github.com/bonkersapp/bonkers/internal/domain/models"
)

// expenseFromURL resolves {expenseID} within the guard-loaded group.
// An ID belonging to another group reads as not found.
func (h *Handler) expenseFromURL(ctx context.Context, r *http.Request) (*models.Expense, error) {
	group, ok := grouppolicy.GroupFrom(r)
	if !ok {
		return nil, apperr.New(apperr.NotFound, "Group not found")
	}
	expenseID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "expenseID"))
	if err != nil {
		return nil, apperr.New(apperr.NotFound, "Expense not found")
	}
	e, err := h.Expenses.GetByID(ctx, group.ID, expenseID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.New(apperr.NotFound, "Expense not found")
		}
		return nil, apperr.Wrap(apperr.Internal, "load expense", err)
	}
	return e, nil
}

// GET /api/expenses/{groupID}/{expenseID}
func (h *Handler) ServeExpense(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	e, err := h.expenseFromURL(ctx, r)
	if err != nil {
		h.errw.WriteError(w, r, err)
		return
	}
	webjson.Write(w, http.StatusOK, e)
}
