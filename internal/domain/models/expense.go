// internal/domain/models/expense.go
package models

import (
	"time"

	"github.com/bonkersapp/bonkers/internal/domain/money"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense is a single shared cost recorded inside a group.
//
// Amounts are stored as integer cents (money.Cents) so that the
// split-sum check (sum of shares == amount) is exact. GroupID is
// immutable after creation; an expense cannot move between groups.
type Expense struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GroupID     primitive.ObjectID `bson:"group" json:"group"`
	Name        string             `bson:"name" json:"expenseName"`
	Category    string             `bson:"category" json:"expenseCategory"`
	Description string             `bson:"description" json:"description"`
	Amount      money.Cents        `bson:"amount_cents" json:"amount"`
	PaidBy      primitive.ObjectID `bson:"paid_by" json:"paidBy"`
	Date        time.Time          `bson:"date" json:"date"`
	Split       []SplitEntry       `bson:"split" json:"split"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// SplitEntry is one member's share of an expense.
type SplitEntry struct {
	UserID primitive.ObjectID `bson:"user" json:"user"`
	Share  money.Cents        `bson:"share_cents" json:"share"`
}

// SplitTotal sums the shares of the split.
func (e Expense) SplitTotal() money.Cents {
	var total money.Cents
	for _, s := range e.Split {
		total += s.Share
	}
	return total
}
