package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/session", h.session)
		r.Get("/api/questions/defaults", h.defaultQuestions)
	})

	// routes behind bearer-token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/user/logout", h.logout)
		r.Post("/api/session/token", h.sessionToken)

		r.Post("/api/groups", h.createGroup)
		r.Get("/api/groups", h.myGroups)
		r.Post("/api/groups/members", h.addMember)
		r.Post("/api/groups/leave", h.leaveGroup)

		r.Get("/api/records/today", h.todayStatus)
		r.Post("/api/records", h.submitRecord)
		r.Get("/api/records/monitor", h.monitorRecords)

		r.Post("/api/questions", h.createQuestion)
		r.Get("/api/questions", h.myQuestions)

		r.Post("/api/memories", h.addMemory)
		r.Get("/api/memories", h.listMemories)

		r.Put("/api/decorations", h.saveDecoration)
		r.Get("/api/decorations", h.getDecoration)
	})

	return router
}
