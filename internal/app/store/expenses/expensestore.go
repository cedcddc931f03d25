package expensestore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bonkersapp/bonkers/internal/app/system/normalize"
	"github.com/bonkersapp/bonkers/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("expenses")}
}

// Create inserts a new expense. The caller has already validated the
// payload against the group's membership.
func (s *Store) Create(ctx context.Context, e models.Expense) (models.Expense, error) {
	e.ID = primitive.NewObjectID()
	e.Name = normalize.Name(e.Name)
	e.Description = normalize.Text(e.Description)

	now := time.Now()
	if e.Date.IsZero() {
		e.Date = now
	}
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Expense{}, err
	}
	return e, nil
}

// GetByID loads an expense scoped to a group, so an ID from another
// group reads as not found.
func (s *Store) GetByID(ctx context.Context, groupID, expenseID primitive.ObjectID) (*models.Expense, error) {
	var e models.Expense
	if err := s.c.FindOne(ctx, bson.M{"_id": expenseID, "group": groupID}).Decode(&e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByGroup returns the group's expenses, newest date first.
func (s *Store) ListByGroup(ctx context.Context, groupID primitive.ObjectID) ([]models.Expense, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"group": groupID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var expenses []models.Expense
	if err := cur.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// Update replaces the expense's mutable fields. The group reference
// never changes.
func (s *Store) Update(ctx context.Context, groupID primitive.ObjectID, e models.Expense) error {
	set := bson.M{
		"name":         normalize.Name(e.Name),
		"category":     e.Category,
		"description":  normalize.Text(e.Description),
		"amount_cents": e.Amount,
		"paid_by":      e.PaidBy,
		"date":         e.Date,
		"split":        e.Split,
		"updated_at":   time.Now(),
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": e.ID, "group": groupID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes an expense scoped to its group. Returns the number of
// documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, groupID, expenseID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": expenseID, "group": groupID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByGroup removes every expense for a group, used by the group
// delete cascade.
func (s *Store) DeleteByGroup(ctx context.Context, groupID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"group": groupID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
