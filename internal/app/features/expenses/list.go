package expenses

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bonkersapp/bonkers/internal/app/policy/grouppolicy"
	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
	"github.com/bonkersapp/bonkers/internal/domain/models"
	"github.com/bonkersapp/bonkers/internal/domain/money"
)

type splitDetail struct {
	User  string      `json:"user"`
	Name  string      `json:"name"`
	Share money.Cents `json:"share"`
}

type expenseListItem struct {
	ID          string        `json:"id"`
	GroupName   string        `json:"groupName"`
	Name        string        `json:"expenseName"`
	Category    string        `json:"expenseCategory"`
	Description string        `json:"description"`
	Amount      money.Cents   `json:"amount"`
	PaidBy      string        `json:"paidBy"`
	PaidByName  string        `json:"paidByName"`
	Date        time.Time     `json:"date"`
	Split       []splitDetail `json:"split"`
}

// ServeList returns the group's expenses newest first, with payer and
// split participant names joined in at read time. A participant that
// no longer resolves keeps their ID with an empty name.
//
// GET /api/expenses/{groupID}
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	group, ok := grouppolicy.GroupFrom(r)
	if !ok {
		h.errw.WriteError(w, r, apperr.New(apperr.NotFound, "Group not found"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Expenses.ListByGroup(ctx, group.ID)
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "list expenses", err))
		return
	}

	// One user fetch for every name referenced by any expense.
	seen := map[primitive.ObjectID]struct{}{}
	var ids []primitive.ObjectID
	for _, e := range list {
		for _, id := range append([]primitive.ObjectID{e.PaidBy}, splitUsers(e.Split)...) {
			if _, dup := seen[id]; !dup {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	users, err := h.Users.ListByIDs(ctx, ids)
	if err != nil {
		h.errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "load users", err))
		return
	}
	names := make(map[primitive.ObjectID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName
	}

	items := make([]expenseListItem, 0, len(list))
	for _, e := range list {
		item := expenseListItem{
			ID:          e.ID.Hex(),
			GroupName:   group.Name,
			Name:        e.Name,
			Category:    e.Category,
			Description: e.Description,
			Amount:      e.Amount,
			PaidBy:      e.PaidBy.Hex(),
			PaidByName:  names[e.PaidBy],
			Date:        e.Date,
			Split:       make([]splitDetail, 0, len(e.Split)),
		}
		for _, s := range e.Split {
			item.Split = append(item.Split, splitDetail{
				User:  s.UserID.Hex(),
				Name:  names[s.UserID],
				Share: s.Share,
			})
		}
		items = append(items, item)
	}
	webjson.Write(w, http.StatusOK, items)
}

func splitUsers(split []models.SplitEntry) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(split))
	for _, s := range split {
		ids = append(ids, s.UserID)
	}
	return ids
}
