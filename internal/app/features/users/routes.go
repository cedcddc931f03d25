package users

import (
	"github.com/go-chi/chi/v5"

	"github.com/bonkersapp/bonkers/internal/app/policy/grouppolicy"
	"github.com/bonkersapp/bonkers/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager, guard *grouppolicy.Guard) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/me", h.ServeMe)
		pr.Delete("/me", h.HandleDeleteAccount)
		pr.Put("/update-user", h.HandleUpdateProfile)
		pr.Post("/search", h.HandleSearch)

		pr.Group(func(gr chi.Router) {
			gr.Use(guard.RequireMember)
			gr.Delete("/leave-group/{groupID}", h.HandleLeaveGroup)
		})
	})

	return r
}
