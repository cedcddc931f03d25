package auth

import (
	"net/http"

	"github.com/bonkersapp/bonkers/internal/app/system/webjson"
)

// HandleLogout clears the session cookie. Idempotent; logging out
// without a session is still a success.
//
// POST /api/auth/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.ClearCookie(w)
	webjson.WriteMessage(w, http.StatusOK, "Logged out successfully")
}
