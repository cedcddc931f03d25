package expenses

import (
	"github.com/go-chi/chi/v5"

	"github.com/bonkersapp/bonkers/internal/app/policy/grouppolicy"
	"github.com/bonkersapp/bonkers/internal/app/system/auth"
)

func Routes(h *Handler, sm *auth.SessionManager, guard *grouppolicy.Guard) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(sm.RequireSignedIn)
		gr.Use(guard.RequireMember)

		gr.Post("/{groupID}", h.HandleCreate)
		gr.Get("/{groupID}", h.ServeList)
		gr.Get("/{groupID}/{expenseID}", h.ServeExpense)
		gr.Put("/{groupID}/{expenseID}", h.HandleUpdate)
		gr.Delete("/{groupID}/{expenseID}", h.HandleDelete)
	})

	return r
}
