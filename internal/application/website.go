package application

import (
	"context"
	"fmt"

	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
	"eventsite/pkg/slug"
)

const badgeReport = "event.event_event_report_template_badge"

// ComputeWebsiteURL sets the public URL of the event. Unsaved events keep
// the placeholder "#".
func ComputeWebsiteURL(event *entities.Event) {
	event.WebsiteURL = "#"
	if event.IsSaved() {
		event.WebsiteURL = "/event/" + slug.Slug(event.Name, event.ID)
	}
}

// RegisterURL is the registration page of the event.
func RegisterURL(event *entities.Event) string {
	return "/event/" + slug.Slug(event.Name, event.ID) + "/register"
}

// ComputeIsParticipating flags the events the viewer is registered to,
// either as partner or by email. Nothing is computed for the public viewer.
func (s *EventService) ComputeIsParticipating(ctx context.Context, viewer entities.Viewer, events ...*entities.Event) error {
	if viewer.IsPublic() {
		return nil
	}
	for _, e := range events {
		if !e.IsSaved() {
			continue
		}
		count, err := s.repos.Registrations.CountForAttendee(ctx, e.ID, viewer.PartnerID, viewer.Email)
		if err != nil {
			return fmt.Errorf("count registrations of event %d: %w", e.ID, err)
		}
		e.IsParticipating = count > 0
	}
	return nil
}

// GoogleMapImg returns the static map image of the event's address, or ""
// when the event has none.
func (s *EventService) GoogleMapImg(ctx context.Context, event *entities.Event, zoom, width, height int) (string, error) {
	addr, err := s.eventAddress(ctx, event)
	if err != nil || addr == nil {
		return "", err
	}
	return addr.GoogleMapImg(zoom, width, height, s.mapsAPIKey), nil
}

// GoogleMapLink returns a Google Maps link to the event's address, or ""
// when the event has none.
func (s *EventService) GoogleMapLink(ctx context.Context, event *entities.Event, zoom int) (string, error) {
	addr, err := s.eventAddress(ctx, event)
	if err != nil || addr == nil {
		return "", err
	}
	return addr.GoogleMapLink(zoom), nil
}

// eventAddress reads the address through the unscoped repository: visitors
// allowed to see the event may not be allowed to read the partner record.
func (s *EventService) eventAddress(ctx context.Context, event *entities.Event) (*entities.Address, error) {
	if event == nil {
		return nil, domain.ErrEventRequired
	}
	if event.AddressID == nil {
		return nil, nil
	}
	return s.repos.Addresses.FindByID(ctx, *event.AddressID)
}

// BadgeEditorAction opens the badge report of the event in edit mode.
func (s *EventService) BadgeEditorAction(event *entities.Event) (entities.URLAction, error) {
	if event == nil {
		return entities.URLAction{}, domain.ErrEventRequired
	}
	if !event.IsSaved() {
		return entities.URLAction{}, domain.ErrEventNotSaved
	}
	return entities.URLAction{
		Type:   entities.ActionTypeURL,
		Target: "new",
		URL:    fmt.Sprintf("/report/html/%s/%d?enable_editor", badgeReport, event.ID),
	}, nil
}
