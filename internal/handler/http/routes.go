package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withSession)

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Get("/", h.index)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.Get("/error404", h.errorPage)
		r.Get("/version", h.getServerVersion)
	})

	// session-gated workflow
	router.Group(func(r chi.Router) {
		r.Get("/dashboard/{username}", h.dashboard)
		r.Get("/dashboard/{username}/{cardName}", h.dashboard)
		r.Post("/dashboard/{username}", h.search)
		r.Post("/dashboard/{username}/{cardName}", h.search)

		r.Get("/addDeck", h.addDeckPage)
		r.Post("/addDeck", h.addDeck)

		getOrPost(r, "/rand", h.random)
		getOrPost(r, "/addingcard/{username}", h.addCard)
		getOrPost(r, "/removingcard/{cardName}", h.removeCard)
		getOrPost(r, "/setDeck/{deckName}", h.setDeck)
		getOrPost(r, "/previewOnly/{cardName}", h.previewOnly)
		getOrPost(r, "/expenseChart", h.expenseChart)
		getOrPost(r, "/manaCurveChart", h.manaCurveChart)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func getOrPost(r chi.Router, pattern string, fn http.HandlerFunc) {
	r.Get(pattern, fn)
	r.Post(pattern, fn)
}
