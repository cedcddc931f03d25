// internal/domain/models/group.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is a shared-expense group.
//
// Invariant: Creator is always present in Members. The creator is added
// at creation time and no mutation path may remove them; the only way
// out for a creator is deleting the group.
type Group struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	NameCI      string               `bson:"name_ci" json:"-"` // lowercase, diacritics-stripped
	Description string               `bson:"description" json:"description"`
	Private     bool                 `bson:"private" json:"private"`
	Creator     primitive.ObjectID   `bson:"creator" json:"creator"`
	Members     []primitive.ObjectID `bson:"members" json:"members"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// HasMember reports whether id appears in the group's member set.
func (g Group) HasMember(id primitive.ObjectID) bool {
	for _, m := range g.Members {
		if m == id {
			return true
		}
	}
	return false
}
