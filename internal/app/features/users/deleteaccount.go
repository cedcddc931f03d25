package users

import (
	"net/http"

	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

// HandleDeleteAccount is a placeholder. Account deletion needs a
// policy for groups the user created before it can be implemented.
//
// DELETE /api/users/me
func (h *Handler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	webjson.WriteMessage(w, http.StatusNotImplemented, "Under Construction")
}
