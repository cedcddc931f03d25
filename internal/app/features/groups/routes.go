package groups

import (
	"github.com/go-chi/chi/v5"

	"github.com/bonkersapp/bonkers/internal/app/policy/grouppolicy"
	"github.com/bonkersapp/bonkers/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager, guard *grouppolicy.Guard) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Post("/", h.HandleCreate)
		pr.Get("/", h.ServeList)

		pr.Group(func(gr chi.Router) {
			gr.Use(guard.RequireMember)

			gr.Get("/{groupID}", h.ServeGroup)
			gr.Put("/{groupID}", h.HandleUpdate)
			gr.Delete("/{groupID}", h.HandleDelete)
			gr.Post("/{groupID}/members/{memberID}", h.HandleAddMember)
			gr.Delete("/{groupID}/members/{memberID}", h.HandleRemoveMember)
		})
	})

	return r
}
