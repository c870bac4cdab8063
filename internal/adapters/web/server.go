package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
	"eventsite/internal/ports/input"
	"eventsite/internal/ports/output"
)

// Localizer translates messages and picks the locale of a request.
type Localizer interface {
	output.T
	Match(acceptLanguage string) string
}

// Server exposes the public event pages and the back-office JSON API.
type Server struct {
	router        *mux.Router
	events        input.EventUseCase
	registrations input.RegistrationUseCase
	viewers       output.ViewerRepository
	translator    Localizer
	viewerHeader  string
	log           zerolog.Logger
}

func NewServer(
	events input.EventUseCase,
	registrations input.RegistrationUseCase,
	viewers output.ViewerRepository,
	translator Localizer,
	viewerHeader string,
	log zerolog.Logger,
) *Server {
	s := &Server{
		router:        mux.NewRouter(),
		events:        events,
		registrations: registrations,
		viewers:       viewers,
		translator:    translator,
		viewerHeader:  viewerHeader,
		log:           log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.logRequests, s.withViewer)

	site := s.router.PathPrefix("/event").Subrouter()
	site.HandleFunc("", s.handleEventList).Methods(http.MethodGet)
	site.HandleFunc("/{slug}", s.handleEventPage).Methods(http.MethodGet)
	site.HandleFunc("/{slug}/register", s.handleRegisterForm).Methods(http.MethodGet)
	site.HandleFunc("/{slug}/register", s.handleRegister).Methods(http.MethodPost)
	site.HandleFunc("/{slug}/page/{page}", s.handleEventSubPage).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api/events").Subrouter()
	api.Use(s.requireUser)
	api.HandleFunc("", s.handleCreateEvent).Methods(http.MethodPost)
	api.HandleFunc("/{id:[0-9]+}", s.handleGetEvent).Methods(http.MethodGet)
	api.HandleFunc("/{id:[0-9]+}", s.handleUpdateEvent).Methods(http.MethodPatch)
	api.HandleFunc("/{id:[0-9]+}", s.handleDeleteEvent).Methods(http.MethodDelete)
	api.HandleFunc("/{id:[0-9]+}/publish", s.handleTogglePublished).Methods(http.MethodPost)
	api.HandleFunc("/{id:[0-9]+}/onchange-type", s.handleOnchangeType).Methods(http.MethodPost)
	api.HandleFunc("/{id:[0-9]+}/badge-editor", s.handleBadgeEditor).Methods(http.MethodGet)
	api.HandleFunc("/{id:[0-9]+}/menu", s.handleMenu).Methods(http.MethodGet)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type viewerKey struct{}

func viewerFrom(ctx context.Context) entities.Viewer {
	if v, ok := ctx.Value(viewerKey{}).(entities.Viewer); ok {
		return v
	}
	return entities.PublicViewer("")
}

// withViewer resolves the visitor from the header set by the upstream auth
// proxy. Missing or unknown users browse as the public visitor.
func (s *Server) withViewer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := s.translator.Match(r.Header.Get("Accept-Language"))
		viewer := entities.PublicViewer(locale)
		if raw := r.Header.Get(s.viewerHeader); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err == nil && id > 0 {
				v, err := s.viewers.FindByUserID(r.Context(), uint(id))
				switch {
				case err == nil:
					viewer = *v
					if viewer.Locale == "" {
						viewer.Locale = locale
					}
				case errors.Is(err, domain.ErrViewerNotFound):
					s.log.Warn().Uint64("user_id", id).Msg("unknown viewer, serving public page")
				default:
					s.log.Error().Err(err).Uint64("user_id", id).Msg("❌ viewer lookup failed")
				}
			}
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), viewerKey{}, viewer)))
	})
}

// requireUser keeps the back-office API to logged-in users.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if viewerFrom(r.Context()).IsPublic() {
			s.respondError(w, r, domain.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func pathID(r *http.Request) uint {
	id, _ := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	return uint(id)
}
