package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
)

type eventResponse struct {
	ID                     uint      `json:"id"`
	Name                   string    `json:"name"`
	EventTypeID            *uint     `json:"event_type_id"`
	AddressID              *uint     `json:"address_id"`
	DateBegin              time.Time `json:"date_begin"`
	DateEnd                time.Time `json:"date_end"`
	DateTZ                 string    `json:"date_tz"`
	SeatsMax               int       `json:"seats_max"`
	WebsitePublished       bool      `json:"website_published"`
	WebsiteURL             string    `json:"website_url"`
	WebsiteMetaTitle       string    `json:"website_meta_title"`
	WebsiteMetaDescription string    `json:"website_meta_description"`
	WebsiteMetaKeywords    string    `json:"website_meta_keywords"`
	WebsiteMenu            bool      `json:"website_menu"`
	MenuID                 *uint     `json:"menu_id"`
	IsParticipating        bool      `json:"is_participating"`
}

func toEventResponse(e *entities.Event) eventResponse {
	return eventResponse{
		ID:                     e.ID,
		Name:                   e.Name,
		EventTypeID:            e.EventTypeID,
		AddressID:              e.AddressID,
		DateBegin:              e.DateBegin,
		DateEnd:                e.DateEnd,
		DateTZ:                 e.DateTZ,
		SeatsMax:               e.SeatsMax,
		WebsitePublished:       e.WebsitePublished,
		WebsiteURL:             e.WebsiteURL,
		WebsiteMetaTitle:       e.WebsiteMetaTitle,
		WebsiteMetaDescription: e.WebsiteMetaDescription,
		WebsiteMetaKeywords:    e.WebsiteMetaKeywords,
		WebsiteMenu:            e.WebsiteMenu,
		MenuID:                 e.MenuID,
		IsParticipating:        e.IsParticipating,
	}
}

// eventRequest is the body of create and onchange calls.
type eventRequest struct {
	Name                   string    `json:"name"`
	EventTypeID            *uint     `json:"event_type_id"`
	AddressID              *uint     `json:"address_id"`
	DateBegin              time.Time `json:"date_begin"`
	DateEnd                time.Time `json:"date_end"`
	DateTZ                 string    `json:"date_tz"`
	SeatsMax               int       `json:"seats_max"`
	WebsitePublished       bool      `json:"website_published"`
	WebsiteMetaTitle       string    `json:"website_meta_title"`
	WebsiteMetaDescription string    `json:"website_meta_description"`
	WebsiteMetaKeywords    string    `json:"website_meta_keywords"`
	WebsiteMenu            bool      `json:"website_menu"`
}

func (req eventRequest) toEvent() *entities.Event {
	return &entities.Event{
		Name:        req.Name,
		EventTypeID: req.EventTypeID,
		AddressID:   req.AddressID,
		DateBegin:   req.DateBegin,
		DateEnd:     req.DateEnd,
		DateTZ:      req.DateTZ,
		SeatsMax:    req.SeatsMax,
		WebsiteMenu: req.WebsiteMenu,
		Publication: entities.Publication{WebsitePublished: req.WebsitePublished},
		SEOMetadata: entities.SEOMetadata{
			WebsiteMetaTitle:       req.WebsiteMetaTitle,
			WebsiteMetaDescription: req.WebsiteMetaDescription,
			WebsiteMetaKeywords:    req.WebsiteMetaKeywords,
		},
	}
}

// optionalID tells an absent JSON field apart from an explicit null.
type optionalID struct {
	set   bool
	value *uint
}

func (o *optionalID) UnmarshalJSON(b []byte) error {
	o.set = true
	if string(b) == "null" {
		o.value = nil
		return nil
	}
	var v uint
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.value = &v
	return nil
}

// updateRequest is a partial write: omitted fields are left untouched.
type updateRequest struct {
	Name                   *string    `json:"name"`
	EventTypeID            optionalID `json:"event_type_id"`
	AddressID              optionalID `json:"address_id"`
	DateBegin              *time.Time `json:"date_begin"`
	DateEnd                *time.Time `json:"date_end"`
	DateTZ                 *string    `json:"date_tz"`
	SeatsMax               *int       `json:"seats_max"`
	WebsitePublished       *bool      `json:"website_published"`
	WebsiteMenu            *bool      `json:"website_menu"`
	WebsiteMetaTitle       *string    `json:"website_meta_title"`
	WebsiteMetaDescription *string    `json:"website_meta_description"`
	WebsiteMetaKeywords    *string    `json:"website_meta_keywords"`
}

func (req updateRequest) hasSEO() bool {
	return req.WebsiteMetaTitle != nil || req.WebsiteMetaDescription != nil || req.WebsiteMetaKeywords != nil
}

// values converts the request, merging partial SEO fields over current.
func (req updateRequest) values(current entities.SEOMetadata) entities.EventValues {
	vals := entities.EventValues{
		Name:             req.Name,
		DateBegin:        req.DateBegin,
		DateEnd:          req.DateEnd,
		DateTZ:           req.DateTZ,
		SeatsMax:         req.SeatsMax,
		WebsitePublished: req.WebsitePublished,
		WebsiteMenu:      req.WebsiteMenu,
	}
	if req.EventTypeID.set {
		vals.EventTypeID = &req.EventTypeID.value
	}
	if req.AddressID.set {
		vals.AddressID = &req.AddressID.value
	}
	if req.hasSEO() {
		seo := current
		if req.WebsiteMetaTitle != nil {
			seo.WebsiteMetaTitle = *req.WebsiteMetaTitle
		}
		if req.WebsiteMetaDescription != nil {
			seo.WebsiteMetaDescription = *req.WebsiteMetaDescription
		}
		if req.WebsiteMetaKeywords != nil {
			seo.WebsiteMetaKeywords = *req.WebsiteMetaKeywords
		}
		vals.SEO = &seo
	}
	return vals
}

type menuResponse struct {
	ID       uint           `json:"id"`
	Name     string         `json:"name"`
	URL      string         `json:"url"`
	Sequence int            `json:"sequence"`
	Children []menuResponse `json:"children,omitempty"`
}

func toMenuResponse(m *entities.Menu) menuResponse {
	out := menuResponse{ID: m.ID, Name: m.Name, URL: m.URL, Sequence: m.Sequence}
	for i := range m.Children {
		out.Children = append(out.Children, toMenuResponse(&m.Children[i]))
	}
	return out
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondBadRequest(w, "invalid request payload")
		return
	}
	if req.Name == "" {
		s.respondBadRequest(w, "name is required")
		return
	}
	event := req.toEvent()
	if err := s.events.CreateEvent(r.Context(), event); err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, toEventResponse(event))
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := s.events.GetEvent(r.Context(), viewerFrom(r.Context()), pathID(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toEventResponse(event))
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondBadRequest(w, "invalid request payload")
		return
	}
	ctx := r.Context()
	viewer := viewerFrom(ctx)

	var current entities.SEOMetadata
	if req.hasSEO() {
		event, err := s.events.GetEvent(ctx, viewer, pathID(r))
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		current = event.SEOMetadata
	}

	event, err := s.events.UpdateEvent(ctx, viewer.Locale, pathID(r), req.values(current))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toEventResponse(event))
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.events.DeleteEvent(r.Context(), pathID(r)); err != nil {
		s.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTogglePublished(w http.ResponseWriter, r *http.Request) {
	event, err := s.events.TogglePublished(r.Context(), viewerFrom(r.Context()).Locale, pathID(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toEventResponse(event))
}

// handleOnchangeType returns the form values after the event type changed,
// without saving anything.
func (s *Server) handleOnchangeType(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondBadRequest(w, "invalid request payload")
		return
	}
	event := req.toEvent()
	event.ID = pathID(r)
	if err := s.events.OnchangeType(r.Context(), event); err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toEventResponse(event))
}

func (s *Server) handleBadgeEditor(w http.ResponseWriter, r *http.Request) {
	event, err := s.events.GetEvent(r.Context(), viewerFrom(r.Context()), pathID(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	action, err := s.events.BadgeEditorAction(event)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, action)
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	event, err := s.events.GetEvent(ctx, viewerFrom(ctx), pathID(r))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	menu, err := s.events.GetMenuTree(ctx, event)
	if errors.Is(err, domain.ErrMenuNotFound) {
		respondJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, toMenuResponse(menu))
}
