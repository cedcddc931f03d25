// Package authz provides request-scoped identity helpers.
package authz

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bonkersapp/bonkers/internal/app/system/auth"
)

// UserCtx returns the current user's ObjectID, display name, and a
// found flag. ok=true means an authenticated user with a valid ID is
// attached to the request.
func UserCtx(r *http.Request) (userID primitive.ObjectID, name string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return primitive.NilObjectID, "", false
	}
	return user.ID, user.Name, true
}
