package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"eventsite/internal/application"
	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
	"eventsite/pkg/maps"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = map[string]*template.Template{}

func init() {
	for _, name := range []string{"events", "event", "register", "intro", "location", "error"} {
		pages[name] = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}
}

// pageTemplates maps menu page templates to the file rendering them.
var pageTemplates = map[string]string{
	domain.TemplateIntro:    "intro",
	domain.TemplateLocation: "location",
}

type pageData struct {
	Locale      string
	Title       string
	Message     string
	Event       *entities.Event
	Events      []entities.Event
	Menu        *entities.Menu
	RegisterURL string
	MapImg      string
	MapLink     string
	Name        string
	Email       string
	Failed      bool
	Done        bool
	T           func(key string) string
}

func (s *Server) newPageData(locale string) pageData {
	return pageData{
		Locale: locale,
		T: func(key string) string {
			return s.translator.T(locale, key, nil)
		},
	}
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data pageData) {
	var buf bytes.Buffer
	if err := pages[name].ExecuteTemplate(&buf, name+".html", data); err != nil {
		s.log.Error().Err(err).Str("template", name).Msg("❌ render failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("❌ page failed")
	}
	locale := viewerFrom(r.Context()).Locale
	_, msg := s.errorMessage(locale, err)
	data := s.newPageData(locale)
	data.Title = http.StatusText(status)
	data.Message = msg
	s.render(w, status, "error", data)
}

// visibleEvent loads the event behind the slug of the request. Unpublished
// events only exist for logged-in users.
func (s *Server) visibleEvent(r *http.Request) (*entities.Event, error) {
	viewer := viewerFrom(r.Context())
	event, err := s.events.GetEventBySlug(r.Context(), viewer, mux.Vars(r)["slug"])
	if err != nil {
		return nil, err
	}
	if !event.WebsitePublished && viewer.IsPublic() {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

// eventPageData fills the fields shared by every page of an event.
func (s *Server) eventPageData(r *http.Request, event *entities.Event) (pageData, error) {
	ctx := r.Context()
	data := s.newPageData(viewerFrom(ctx).Locale)
	data.Event = event
	data.RegisterURL = application.RegisterURL(event)

	menu, err := s.events.GetMenuTree(ctx, event)
	switch {
	case err == nil:
		data.Menu = menu
	case !errors.Is(err, domain.ErrMenuNotFound):
		return data, err
	}

	if data.MapImg, err = s.events.GoogleMapImg(ctx, event, maps.DefaultZoom, maps.DefaultWidth, maps.DefaultHeight); err != nil {
		return data, err
	}
	if data.MapLink, err = s.events.GoogleMapLink(ctx, event, maps.DefaultZoom); err != nil {
		return data, err
	}
	return data, nil
}

func (s *Server) handleEventList(w http.ResponseWriter, r *http.Request) {
	viewer := viewerFrom(r.Context())
	events, err := s.events.ListPublishedEvents(r.Context(), viewer)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	data := s.newPageData(viewer.Locale)
	data.Title = data.T("event.list_title")
	data.Events = events
	s.render(w, http.StatusOK, "events", data)
}

func (s *Server) handleEventPage(w http.ResponseWriter, r *http.Request) {
	event, err := s.visibleEvent(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if r.URL.Path != event.WebsiteURL {
		http.Redirect(w, r, event.WebsiteURL, http.StatusMovedPermanently)
		return
	}
	data, err := s.eventPageData(r, event)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render(w, http.StatusOK, "event", data)
}

func (s *Server) handleEventSubPage(w http.ResponseWriter, r *http.Request) {
	event, err := s.visibleEvent(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	page, err := s.events.GetPage(r.Context(), event, "/"+mux.Vars(r)["page"])
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	name, ok := pageTemplates[page.Template]
	if !ok {
		s.renderError(w, r, domain.ErrPageNotFound)
		return
	}
	data, err := s.eventPageData(r, event)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	data.Title = page.Name
	s.render(w, http.StatusOK, name, data)
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	event, err := s.visibleEvent(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	data, err := s.eventPageData(r, event)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	viewer := viewerFrom(r.Context())
	data.Name, data.Email = viewer.Name, viewer.Email
	if event.IsParticipating {
		data.Message = data.T("error.registration_exists")
		data.Done = true
	}
	s.render(w, http.StatusOK, "register", data)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	event, err := s.visibleEvent(r)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, domain.ErrInvalidRegistration)
		return
	}
	data, err := s.eventPageData(r, event)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	data.Name = strings.TrimSpace(r.PostFormValue("name"))
	data.Email = strings.TrimSpace(r.PostFormValue("email"))

	msg, err := s.registrations.Register(r.Context(), viewerFrom(r.Context()), event.ID, data.Name, data.Email)
	data.Message = msg
	status := http.StatusOK
	switch {
	case err == nil:
		data.Done = true
		event.IsParticipating = true
	case statusFor(err) < http.StatusInternalServerError:
		data.Failed = true
		status = statusFor(err)
	default:
		s.renderError(w, r, err)
		return
	}
	s.render(w, status, "register", data)
}
