// Package grouppolicy answers who may do what to a group.
//
// The predicates are pure functions over a loaded group document. The
// Guard wraps them into chi middleware for the routes that operate
// inside a group.
package grouppolicy

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	groupstore "github.com/bonkersapp/bonkers/internal/app/store/groups"
	"github.com/bonkersapp/bonkers/internal/app/system/apperr"
	"github.com/bonkersapp/bonkers/internal/app/system/authz"
	"github.com/bonkersapp/bonkers/internal/app/system/timeouts"
	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
	"github.com/bonkersapp/bonkers/internal/domain/models"
)

// IsMember reports whether userID is in the group's member list.
func IsMember(g *models.Group, userID primitive.ObjectID) bool {
	return g != nil && g.HasMember(userID)
}

// IsCreator reports whether userID created the group.
func IsCreator(g *models.Group, userID primitive.ObjectID) bool {
	return g != nil && g.Creator == userID
}

// Guard loads the group named in the route and enforces membership.
type Guard struct {
	Groups *groupstore.Store
	Log    *zap.Logger
}

func NewGuard(groups *groupstore.Store, logger *zap.Logger) *Guard {
	return &Guard{Groups: groups, Log: logger}
}

// RequireMember resolves the {groupID} URL parameter, rejects
// non-members, and injects the loaded group into the request context
// so handlers do not fetch it again.
//
// Malformed or unknown group IDs are 404; an authenticated non-member
// is 403 with the canonical access message.
func (gd *Guard) RequireMember(next http.Handler) http.Handler {
	errw := webjson.ErrorWriter{Log: gd.Log}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _, ok := authz.UserCtx(r)
		if !ok {
			errw.WriteError(w, r, apperr.New(apperr.Unauthenticated, "Unauthorized - No Token Provided"))
			return
		}

		groupID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "groupID"))
		if err != nil {
			errw.WriteError(w, r, apperr.New(apperr.NotFound, "Group not found"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		group, err := gd.Groups.GetByID(ctx, groupID)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				errw.WriteError(w, r, apperr.New(apperr.NotFound, "Group not found"))
				return
			}
			errw.WriteError(w, r, apperr.Wrap(apperr.Internal, "load group", err))
			return
		}

		if !IsMember(group, userID) {
			errw.WriteError(w, r, apperr.New(apperr.Forbidden, "Access Denied: You are not a member of this group"))
			return
		}

		next.ServeHTTP(w, withGroup(r, group))
	})
}

type ctxKey struct{}

// GroupFrom returns the group loaded by RequireMember.
func GroupFrom(r *http.Request) (*models.Group, bool) {
	g, ok := r.Context().Value(ctxKey{}).(*models.Group)
	return g, ok
}

func withGroup(r *http.Request, g *models.Group) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, g))
}

// WithGroup injects a group into the request context.
// Test helper that simulates what RequireMember does.
func WithGroup(r *http.Request, g *models.Group) *http.Request {
	return withGroup(r, g)
}
