package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
	"eventsite/internal/ports/input"
	"eventsite/internal/ports/output"
	"eventsite/pkg/slug"
)

// Repositories groups the output ports the event services read and write.
type Repositories struct {
	Events        output.EventRepository
	EventTypes    output.EventTypeRepository
	Menus         output.MenuRepository
	Pages         output.PageRepository
	Registrations output.RegistrationRepository
	Addresses     output.AddressRepository
}

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	repos       Repositories
	tx          output.Transactor
	translator  output.T
	notifier    output.Notifier
	menus       *MenuSynchronizer
	baseSubtype SubtypeSelector
	mapsAPIKey  string
	log         zerolog.Logger
}

// Option customizes an EventService.
type Option func(*EventService)

// WithMenuEntries replaces the entries created under an event's dedicated
// menu.
func WithMenuEntries(f MenuEntriesFunc) Option {
	return func(s *EventService) { s.menus.entries = f }
}

// WithBaseSubtype sets the selector consulted when a tracked write does not
// touch the published state.
func WithBaseSubtype(f SubtypeSelector) Option {
	return func(s *EventService) { s.baseSubtype = f }
}

func WithNotifier(n output.Notifier) Option {
	return func(s *EventService) { s.notifier = n }
}

func WithMapsAPIKey(key string) Option {
	return func(s *EventService) { s.mapsAPIKey = key }
}

func NewEventService(
	repos Repositories,
	tx output.Transactor,
	translator output.T,
	log zerolog.Logger,
	opts ...Option,
) *EventService {
	s := &EventService{
		repos:       repos,
		tx:          tx,
		translator:  translator,
		notifier:    NewLogNotifier(log),
		baseSubtype: NoSubtype,
		log:         log,
	}
	s.menus = NewMenuSynchronizer(repos.Events, repos.Menus, repos.Pages, translator, log)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *EventService) CreateEvent(ctx context.Context, event *entities.Event) error {
	if event == nil {
		return domain.ErrEventRequired
	}
	if err := s.repos.Events.Create(ctx, event); err != nil {
		return err
	}
	ComputeWebsiteURL(event)
	s.log.Info().Uint("event_id", event.ID).Str("name", event.Name).Msg("✅ event created")
	return nil
}

// GetEvent loads an event and computes its presentation fields for viewer.
func (s *EventService) GetEvent(ctx context.Context, viewer entities.Viewer, id uint) (*entities.Event, error) {
	event, err := s.repos.Events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.present(ctx, viewer, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetEventBySlug resolves "/event/<slug>" identifiers. The name part of the
// slug is not checked; callers compare WebsiteURL to redirect stale links.
func (s *EventService) GetEventBySlug(ctx context.Context, viewer entities.Viewer, eventSlug string) (*entities.Event, error) {
	_, id, err := slug.Unslug(eventSlug)
	if err != nil {
		return nil, domain.ErrInvalidSlug
	}
	return s.GetEvent(ctx, viewer, id)
}

func (s *EventService) ListPublishedEvents(ctx context.Context, viewer entities.Viewer) ([]entities.Event, error) {
	events, err := s.repos.Events.FindPublished(ctx)
	if err != nil {
		return nil, err
	}
	ptrs := make([]*entities.Event, len(events))
	for i := range events {
		ptrs[i] = &events[i]
	}
	if err := s.present(ctx, viewer, ptrs...); err != nil {
		return nil, err
	}
	return events, nil
}

// UpdateEvent applies vals to the event in one transaction. A write carrying
// WebsiteMenu resynchronizes the dedicated menu; a change of the published
// state is tracked and notified once committed.
func (s *EventService) UpdateEvent(ctx context.Context, locale string, id uint, vals entities.EventValues) (*entities.Event, error) {
	var (
		event *entities.Event
		init  map[string]any
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		e, err := s.repos.Events.FindByID(ctx, id)
		if err != nil {
			return err
		}
		init = vals.Apply(e)
		if err := s.repos.Events.Update(ctx, e); err != nil {
			return err
		}
		if vals.WebsiteMenu != nil {
			if err := s.menus.Sync(ctx, locale, e); err != nil {
				return fmt.Errorf("sync website menu: %w", err)
			}
		}
		event = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	ComputeWebsiteURL(event)
	if len(init) > 0 {
		s.track(ctx, locale, event, init)
	}
	return event, nil
}

// TogglePublished flips the published state of the event.
func (s *EventService) TogglePublished(ctx context.Context, locale string, id uint) (*entities.Event, error) {
	event, err := s.repos.Events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	published := !event.WebsitePublished
	return s.UpdateEvent(ctx, locale, id, entities.EventValues{WebsitePublished: &published})
}

// OnchangeType copies the defaults of the event's type onto the event
// without persisting anything.
func (s *EventService) OnchangeType(ctx context.Context, event *entities.Event) error {
	if event == nil {
		return domain.ErrEventRequired
	}
	if event.EventTypeID == nil {
		return nil
	}
	eventType, err := s.repos.EventTypes.FindByID(ctx, *event.EventTypeID)
	if err != nil {
		return err
	}
	applyTypeDefaults(event, eventType)
	event.WebsiteMenu = eventType.WebsiteMenu
	return nil
}

// applyTypeDefaults copies the scheduling defaults every event type carries.
func applyTypeDefaults(event *entities.Event, eventType *entities.EventType) {
	event.SeatsMax = eventType.SeatsMax
	if eventType.DefaultTimezone != "" {
		event.DateTZ = eventType.DefaultTimezone
	}
}

// DeleteEvent removes the event together with its dedicated menu tree.
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		event, err := s.repos.Events.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if event.MenuID != nil {
			err := s.repos.Menus.Delete(ctx, *event.MenuID)
			if err != nil && !errors.Is(err, domain.ErrMenuNotFound) {
				return fmt.Errorf("delete menu %d: %w", *event.MenuID, err)
			}
		}
		return s.repos.Events.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.log.Info().Uint("event_id", id).Msg("🗑️ event deleted")
	return nil
}

// GetMenuTree returns the event's root menu with its children ordered by
// sequence.
func (s *EventService) GetMenuTree(ctx context.Context, event *entities.Event) (*entities.Menu, error) {
	if event == nil {
		return nil, domain.ErrEventRequired
	}
	if event.MenuID == nil {
		return nil, domain.ErrMenuNotFound
	}
	root, err := s.repos.Menus.FindByID(ctx, *event.MenuID)
	if err != nil {
		return nil, err
	}
	children, err := s.repos.Menus.FindChildren(ctx, root.ID)
	if err != nil {
		return nil, err
	}
	root.Children = children
	return root, nil
}

// GetPage returns the page of event published under url. Pages of other
// events are not found.
func (s *EventService) GetPage(ctx context.Context, event *entities.Event, url string) (*entities.Page, error) {
	if event == nil {
		return nil, domain.ErrEventRequired
	}
	page, err := s.repos.Pages.FindByURL(ctx, url)
	if err != nil {
		return nil, err
	}
	if page.EventID == nil || *page.EventID != event.ID {
		return nil, domain.ErrPageNotFound
	}
	return page, nil
}

func (s *EventService) present(ctx context.Context, viewer entities.Viewer, events ...*entities.Event) error {
	for _, e := range events {
		ComputeWebsiteURL(e)
	}
	return s.ComputeIsParticipating(ctx, viewer, events...)
}

func (s *EventService) track(ctx context.Context, locale string, event *entities.Event, init map[string]any) {
	subtype := s.TrackSubtype(event, init)
	if subtype == "" {
		return
	}
	n := entities.Notification{
		Subtype:   subtype,
		EventID:   event.ID,
		EventName: event.Name,
		EventURL:  event.WebsiteURL,
		Published: event.WebsitePublished,
		DateBegin: event.DateBegin,
		DateTZ:    event.DateTZ,
		Locale:    locale,
	}
	if err := s.notifier.Notify(ctx, n); err != nil {
		s.log.Error().Err(err).Uint("event_id", event.ID).Str("subtype", subtype).Msg("❌ notification failed")
	}
}
