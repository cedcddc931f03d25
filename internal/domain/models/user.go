// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account.
//
// NOTE:
//   - Groups mirrors the member side of the group↔user relationship.
//     The authoritative member list lives on the Group document; this
//     array exists so "my groups" reads don't scan the groups collection.
//   - PasswordHash is never serialized to JSON.
type User struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	FullName   string               `bson:"full_name" json:"fullName"`
	FullNameCI string               `bson:"full_name_ci" json:"-"` // lowercase, diacritics-stripped
	Email      string               `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	ProfilePic string               `bson:"profile_pic" json:"profilePic"`
	Groups     []primitive.ObjectID `bson:"groups" json:"groups"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// InGroup reports whether the user's mirrored group set contains id.
func (u User) InGroup(id primitive.ObjectID) bool {
	for _, g := range u.Groups {
		if g == id {
			return true
		}
	}
	return false
}
