package output

import (
	"context"

	"eventsite/internal/domain/entities"
)

type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id uint) (*entities.Event, error)
	FindPublished(ctx context.Context) ([]entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	SetMenuID(ctx context.Context, eventID uint, menuID *uint) error
	Delete(ctx context.Context, id uint) error
}

type EventTypeRepository interface {
	FindByID(ctx context.Context, id uint) (*entities.EventType, error)
}
