package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/notmobil/backend/api/rest"
	"github.com/notmobil/backend/service"
)

type NotesAPI struct {
	restHandler *rest.Handler
}

func NewNotesAPI(svc *service.Service) *NotesAPI {
	return &NotesAPI{
		restHandler: rest.NewHandler(svc),
	}
}

// Router builds the full route tree. Login, refresh and health are open;
// everything else sits behind the bearer-token middleware.
func (a *NotesAPI) Router() chi.Router {
	r := chi.NewRouter()

	// The mobile client calls from a different origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.NotFound(a.restHandler.HandleNotFound)
	r.MethodNotAllowed(a.restHandler.HandleNotFound)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", a.restHandler.HandleHealth)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", a.restHandler.HandleLogin)
			r.Post("/refresh", a.restHandler.HandleRefresh)
		})

		r.Group(func(r chi.Router) {
			r.Use(a.restHandler.RequireAuth)

			r.Route("/notes", func(r chi.Router) {
				r.Get("/", a.restHandler.HandleListNotes)
				r.Post("/", a.restHandler.HandleCreateNote)
				r.Get("/{id}", a.restHandler.HandleGetNote)
				r.Put("/{id}", a.restHandler.HandleUpdateNote)
				r.Delete("/{id}", a.restHandler.HandleDeleteNote)
			})

			r.Route("/ai", func(r chi.Router) {
				r.Post("/summarize", a.restHandler.HandleSummarize)
				r.Post("/generate-tags", a.restHandler.HandleGenerateTags)
				r.Post("/classify", a.restHandler.HandleClassify)
			})
		})
	})

	return r
}
