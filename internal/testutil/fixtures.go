package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bonkersapp/bonkers/internal/domain/models"
	"github.com/bonkersapp/bonkers/internal/domain/money"
)

// Fixtures creates test documents directly in the database, bypassing
// the stores so store bugs cannot mask each other.
type Fixtures struct {
	t  *testing.T
	db *mongo.Database
}

func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{t: t, db: db}
}

// CreateUser inserts a user with a fixed bcrypt hash placeholder.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()

	now := time.Now()
	u := models.User{
		ID:           primitive.NewObjectID(),
		FullName:     fullName,
		FullNameCI:   text.Fold(fullName),
		Email:        email,
		PasswordHash: "$2a$10$fixturefixturefixturefixturefixturefixturefixturefix",
		Groups:       []primitive.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("fixture CreateUser: %v", err)
	}
	return u
}

// CreateGroup inserts a group whose creator is the first member, and
// mirrors the membership onto every member's user document.
func (f *Fixtures) CreateGroup(ctx context.Context, name string, creator primitive.ObjectID, members ...primitive.ObjectID) models.Group {
	f.t.Helper()

	all := []primitive.ObjectID{creator}
	for _, m := range members {
		if m != creator {
			all = append(all, m)
		}
	}

	now := time.Now()
	g := models.Group{
		ID:          primitive.NewObjectID(),
		Name:        name,
		NameCI:      text.Fold(name),
		Private:     true,
		Creator:     creator,
		Members:     all,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("groups").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("fixture CreateGroup: %v", err)
	}
	if _, err := f.db.Collection("users").UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": all}},
		bson.M{"$addToSet": bson.M{"groups": g.ID}},
	); err != nil {
		f.t.Fatalf("fixture CreateGroup mirror: %v", err)
	}
	return g
}

// CreateExpense inserts an expense paid by payer, split evenly across
// the given participants.
func (f *Fixtures) CreateExpense(ctx context.Context, groupID, payer primitive.ObjectID, name string, amount money.Cents, participants ...primitive.ObjectID) models.Expense {
	f.t.Helper()

	if len(participants) == 0 {
		participants = []primitive.ObjectID{payer}
	}
	share := amount / money.Cents(len(participants))
	split := make([]models.SplitEntry, 0, len(participants))
	for i, p := range participants {
		s := share
		if i == len(participants)-1 {
			// last participant absorbs the rounding remainder
			s = amount - share*money.Cents(len(participants)-1)
		}
		split = append(split, models.SplitEntry{UserID: p, Share: s})
	}

	now := time.Now()
	e := models.Expense{
		ID:        primitive.NewObjectID(),
		GroupID:   groupID,
		Name:      name,
		Category:  models.DefaultCategory,
		Amount:    amount,
		PaidBy:    payer,
		Date:      now,
		Split:     split,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("expenses").InsertOne(ctx, e); err != nil {
		f.t.Fatalf("fixture CreateExpense: %v", err)
	}
	return e
}
