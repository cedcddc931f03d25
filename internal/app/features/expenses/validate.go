package expenses

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/normalize"
	"github.com/bonkersapp/bonkers/internal/app/system/sanitize"
	"github.com/bonkersapp/bonkers/internal/domain/models"
	"github.com/bonkersapp/bonkers/internal/domain/money"
)

// expenseRequest is the wire shape of create and update. Amount and
// shares are raw JSON so the validator can tell a type error apart
// from a missing field and report them in a fixed order.
type expenseRequest struct {
	Name        string          `json:"expenseName"`
	Category    string          `json:"expenseCategory"`
	Description string          `json:"description"`
	Amount      json.RawMessage `json:"amount"`
	PaidBy      string          `json:"paidBy"`
	Date        *time.Time      `json:"date"`
	Split       []splitInput    `json:"split"`
}

type splitInput struct {
	User  string          `json:"user"`
	Share json.RawMessage `json:"share"`
}

// SplitMismatchError reports a split whose shares do not add up to the
// stated amount. Both sides of the comparison ride along so the
// response can show them.
type SplitMismatchError struct {
	TotalSplit money.Cents
	Amount     money.Cents
}

func (e *SplitMismatchError) Error() string {
	return fmt.Sprintf("split total %s does not equal amount %s", e.TotalSplit, e.Amount)
}

func rawPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// buildExpense validates req against the owning group and produces the
// expense to persist. Checks run in a fixed order and stop at the
// first failure: missing fields, payer membership, share types, amount
// type, split-sum equality, then the category enum.
func buildExpense(req expenseRequest, group *models.Group) (models.Expense, error) {
	name := sanitize.Text(normalize.Name(req.Name))
	if name == "" || !rawPresent(req.Amount) || req.PaidBy == "" || len(req.Split) == 0 {
		return models.Expense{}, apperr.Validationf("All fields are required")
	}

	payer, err := primitive.ObjectIDFromHex(req.PaidBy)
	if err != nil || !group.HasMember(payer) {
		return models.Expense{}, apperr.Validationf("Payer must be a member of the group")
	}

	split := make([]models.SplitEntry, 0, len(req.Split))
	for _, in := range req.Split {
		share, err := money.ParseRaw(in.Share)
		if err != nil {
			return models.Expense{}, apperr.Validationf("Split shares must be numbers with at most 2 decimal places")
		}
		user, err := primitive.ObjectIDFromHex(in.User)
		if err != nil {
			return models.Expense{}, apperr.Validationf("Invalid user in split")
		}
		split = append(split, models.SplitEntry{UserID: user, Share: share})
	}

	amount, err := money.ParseRaw(req.Amount)
	if err != nil {
		return models.Expense{}, apperr.Validationf("Amount must be a number with at most 2 decimal places")
	}

	var total money.Cents
	for _, s := range split {
		total += s.Share
	}
	if total != amount {
		return models.Expense{}, &SplitMismatchError{TotalSplit: total, Amount: amount}
	}

	category := normalize.Text(req.Category)
	if category == "" {
		category = models.DefaultCategory
	}
	if !models.IsValidCategory(category) {
		return models.Expense{}, apperr.Validationf("Invalid expense category")
	}

	e := models.Expense{
		GroupID:     group.ID,
		Name:        name,
		Category:    category,
		Description: sanitize.Text(normalize.Text(req.Description)),
		Amount:      amount,
		PaidBy:      payer,
		Split:       split,
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	return e, nil
}
