package groupstore_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	groupstore "github.com/bonkersapp/bonkers/internal/app/store/groups"
	"github.com/bonkersapp/bonkers/internal/domain/models"
	"github.com/bonkersapp/bonkers/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID()
	created, err := store.Create(ctx, models.Group{
		Name:        "  Ski Trip  ",
		Description: "January trip",
		Private:     true,
		Creator:     creator,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Name != "Ski Trip" {
		t.Errorf("Name = %q", created.Name)
	}
	if created.NameCI == "" {
		t.Error("expected NameCI to be set")
	}
	if len(created.Members) != 1 || created.Members[0] != creator {
		t.Errorf("Members = %v, want creator only", created.Members)
	}
	if !created.HasMember(creator) {
		t.Error("creator must be a member")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestStore_UpdateInfo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Group{Name: "Old Name", Creator: primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.UpdateInfo(ctx, created.ID, "New Name", "new description", false); err != nil {
		t.Fatalf("UpdateInfo failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "New Name" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Description != "new description" {
		t.Errorf("Description = %q", got.Description)
	}
	if got.Private {
		t.Error("Private should be false after update")
	}
	if got.Creator != created.Creator {
		t.Error("Creator must not change")
	}
	if !got.UpdatedAt.After(created.UpdatedAt) {
		t.Error("UpdatedAt should advance")
	}
}

func TestStore_Members(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	creator := primitive.NewObjectID()
	member := primitive.NewObjectID()

	created, err := store.Create(ctx, models.Group{Name: "G", Creator: creator})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.AddMember(ctx, created.ID, member); err != nil {
		t.Fatalf("AddMember failed: %v", err)
	}
	// idempotent
	if err := store.AddMember(ctx, created.ID, member); err != nil {
		t.Fatalf("second AddMember failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Members) != 2 {
		t.Errorf("Members = %v, want 2 entries", got.Members)
	}

	if err := store.RemoveMember(ctx, created.ID, member); err != nil {
		t.Fatalf("RemoveMember failed: %v", err)
	}
	got, err = store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.HasMember(member) {
		t.Error("member should be removed")
	}
	if !got.HasMember(creator) {
		t.Error("creator must remain a member")
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Group{Name: "Doomed", Creator: primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetByID(ctx, created.ID); err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments after delete, got %v", err)
	}
}

func TestStore_ListByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	g1, err := store.Create(ctx, models.Group{Name: "One", Creator: primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	g2, err := store.Create(ctx, models.Group{Name: "Two", Creator: primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	groups, err := store.ListByIDs(ctx, []primitive.ObjectID{g1.ID, g2.ID, primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("ListByIDs failed: %v", err)
	}
	if len(groups) != 2 {
		t.Errorf("got %d groups, want 2 (dangling IDs skipped)", len(groups))
	}
}
