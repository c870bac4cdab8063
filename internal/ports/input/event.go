package input

import (
	"context"

	"eventsite/internal/domain/entities"
)

type EventUseCase interface {
	CreateEvent(ctx context.Context, event *entities.Event) error
	GetEvent(ctx context.Context, viewer entities.Viewer, id uint) (*entities.Event, error)
	GetEventBySlug(ctx context.Context, viewer entities.Viewer, slug string) (*entities.Event, error)
	ListPublishedEvents(ctx context.Context, viewer entities.Viewer) ([]entities.Event, error)
	UpdateEvent(ctx context.Context, locale string, id uint, vals entities.EventValues) (*entities.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
	TogglePublished(ctx context.Context, locale string, id uint) (*entities.Event, error)
	OnchangeType(ctx context.Context, event *entities.Event) error
	GetMenuTree(ctx context.Context, event *entities.Event) (*entities.Menu, error)
	GetPage(ctx context.Context, event *entities.Event, url string) (*entities.Page, error)
	GoogleMapImg(ctx context.Context, event *entities.Event, zoom, width, height int) (string, error)
	GoogleMapLink(ctx context.Context, event *entities.Event, zoom int) (string, error)
	BadgeEditorAction(event *entities.Event) (entities.URLAction, error)
}

type RegistrationUseCase interface {
	Register(ctx context.Context, viewer entities.Viewer, eventID uint, name, email string) (string, error)
}
