// Package expenses implements group-scoped expense CRUD with the
// split-sum validator.
package expenses

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	expensestore "github.com/bonkersapp/bonkers/internal/app/store/expenses"
	groupstore "github.com/bonkersapp/bonkers/internal/app/store/groups"
	userstore "github.com/bonkersapp/bonkers/internal/app/store/users"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
	"github.com/bonkersapp/bonkers/internal/domain/money"
)

type Handler struct {
	DB       *mongo.Database
	Users    *userstore.Store
	Groups   *groupstore.Store
	Expenses *expensestore.Store
	Log      *zap.Logger

	errw webjson.ErrorWriter
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Users:    userstore.New(db),
		Groups:   groupstore.New(db),
		Expenses: expensestore.New(db),
		Log:      logger,
		errw:     webjson.ErrorWriter{Log: logger},
	}
}

type splitMismatchResponse struct {
	Error      string      `json:"error"`
	TotalSplit money.Cents `json:"totalSplit"`
	Amount     money.Cents `json:"amount"`
}

// writeValidationError routes a buildExpense failure to the right
// response shape. A split mismatch carries both totals; everything
// else is a plain error body.
func (h *Handler) writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	var mismatch *SplitMismatchError
	if errors.As(err, &mismatch) {
		webjson.Write(w, http.StatusBadRequest, splitMismatchResponse{
			Error:      "Split amounts do not add up to the total expense amount",
			TotalSplit: mismatch.TotalSplit,
			Amount:     mismatch.Amount,
		})
		return
	}
	h.errw.WriteError(w, r, err)
}
