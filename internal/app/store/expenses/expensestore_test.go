package expensestore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	expensestore "github.com/bonkersapp/bonkers/internal/app/store/expenses"
	"github.com/bonkersapp/bonkers/internal/domain/models"
	"github.com/bonkersapp/bonkers/internal/domain/money"
	"github.com/bonkersapp/bonkers/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := expensestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	groupID := primitive.NewObjectID()
	payer := primitive.NewObjectID()

	created, err := store.Create(ctx, models.Expense{
		GroupID:  groupID,
		Name:     "  Dinner  ",
		Category: models.CategoryFoodDining,
		Amount:   10000,
		PaidBy:   payer,
		Split: []models.SplitEntry{
			{UserID: payer, Share: 10000},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Name != "Dinner" {
		t.Errorf("Name = %q", created.Name)
	}
	if created.Date.IsZero() {
		t.Error("expected Date to default to now")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if created.SplitTotal() != created.Amount {
		t.Errorf("split total %d != amount %d", created.SplitTotal(), created.Amount)
	}
}

func TestStore_GetByID_GroupScoped(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := expensestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "A", "a@example.com")
	group := fixtures.CreateGroup(ctx, "G", user.ID)
	exp := fixtures.CreateExpense(ctx, group.ID, user.ID, "Dinner", 5000)

	got, err := store.GetByID(ctx, group.ID, exp.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Dinner" {
		t.Errorf("Name = %q", got.Name)
	}

	// same expense through a different group reads as not found
	if _, err := store.GetByID(ctx, primitive.NewObjectID(), exp.ID); err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments for wrong group, got %v", err)
	}
}

func TestStore_ListByGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := expensestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "A", "a@example.com")
	group := fixtures.CreateGroup(ctx, "G", user.ID)
	other := fixtures.CreateGroup(ctx, "Other", user.ID)

	fixtures.CreateExpense(ctx, group.ID, user.ID, "One", 1000)
	fixtures.CreateExpense(ctx, group.ID, user.ID, "Two", 2000)
	fixtures.CreateExpense(ctx, other.ID, user.ID, "Elsewhere", 3000)

	expenses, err := store.ListByGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("ListByGroup failed: %v", err)
	}
	if len(expenses) != 2 {
		t.Errorf("got %d expenses, want 2", len(expenses))
	}
	for _, e := range expenses {
		if e.GroupID != group.ID {
			t.Errorf("expense %s belongs to %s", e.ID.Hex(), e.GroupID.Hex())
		}
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := expensestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "A", "a@example.com")
	group := fixtures.CreateGroup(ctx, "G", user.ID)
	exp := fixtures.CreateExpense(ctx, group.ID, user.ID, "Dinner", 5000)

	exp.Name = "Fancy Dinner"
	exp.Amount = money.Cents(7500)
	exp.Split = []models.SplitEntry{{UserID: user.ID, Share: 7500}}

	if err := store.Update(ctx, group.ID, exp); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, group.ID, exp.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Fancy Dinner" || got.Amount != 7500 {
		t.Errorf("got %q/%d after update", got.Name, got.Amount)
	}
}

func TestStore_Update_WrongGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := expensestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "A", "a@example.com")
	group := fixtures.CreateGroup(ctx, "G", user.ID)
	exp := fixtures.CreateExpense(ctx, group.ID, user.ID, "Dinner", 5000)

	if err := store.Update(ctx, primitive.NewObjectID(), exp); err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := expensestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "A", "a@example.com")
	group := fixtures.CreateGroup(ctx, "G", user.ID)
	exp := fixtures.CreateExpense(ctx, group.ID, user.ID, "Dinner", 5000)

	n, err := store.Delete(ctx, group.ID, exp.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d, want 1", n)
	}

	n, err = store.Delete(ctx, group.ID, exp.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if n != 0 {
		t.Errorf("deleted %d, want 0", n)
	}
}

func TestStore_DeleteByGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := expensestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := fixtures.CreateUser(ctx, "A", "a@example.com")
	group := fixtures.CreateGroup(ctx, "G", user.ID)
	other := fixtures.CreateGroup(ctx, "Other", user.ID)

	fixtures.CreateExpense(ctx, group.ID, user.ID, "One", 1000)
	fixtures.CreateExpense(ctx, group.ID, user.ID, "Two", 2000)
	kept := fixtures.CreateExpense(ctx, other.ID, user.ID, "Elsewhere", 3000)

	n, err := store.DeleteByGroup(ctx, group.ID)
	if err != nil {
		t.Fatalf("DeleteByGroup failed: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d, want 2", n)
	}

	if _, err := store.GetByID(ctx, other.ID, kept.ID); err != nil {
		t.Errorf("expense in other group should survive: %v", err)
	}
}
