package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kino-avatar/kino/internal/handler/classroom"
	"github.com/kino-avatar/kino/internal/handler/messages"
	"github.com/kino-avatar/kino/internal/handler/persona"
	"github.com/kino-avatar/kino/internal/handler/stream"
	middlewarePkg "github.com/kino-avatar/kino/internal/middleware"
	personaModel "github.com/kino-avatar/kino/internal/model/persona"
	classroomService "github.com/kino-avatar/kino/internal/service/classroom"
	"github.com/kino-avatar/kino/pkg/utils"
)

// Services groups what the router wires to HTTP. Generator and Classroom are
// nil when no AI credentials are configured.
type Services struct {
	Personas  personaModel.Store
	Generator messages.Generator
	Classroom *classroomService.Service
	Hub       *classroomService.Hub
	Keepalive time.Duration
}

// NewRouter wires HTTP routes to core services.
func NewRouter(svc Services) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		persona.New(svc.Personas).RegisterRoutes(api)
		messages.New(svc.Generator).RegisterRoutes(api)
		stream.New(svc.Hub, svc.Keepalive).RegisterRoutes(api)

		if svc.Classroom != nil {
			classroom.New(svc.Classroom).RegisterRoutes(api)
		} else {
			unavailable := func(w http.ResponseWriter, _ *http.Request) {
				utils.RespondError(w, http.StatusServiceUnavailable, "ai service unavailable")
			}
			api.Post("/questions", unavailable)
			api.Get("/questions", unavailable)
			api.Get("/answers/{answerID}", unavailable)
		}
	})

	return r
}
