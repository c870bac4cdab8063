package database

import (
	"context"

	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
	"eventsite/internal/ports/output"
)

var _ output.EventTypeRepository = (*EventTypeRepository)(nil)

type EventTypeRepository struct {
	db DBTX
}

func NewEventTypeRepository(db DBTX) *EventTypeRepository {
	return &EventTypeRepository{db: db}
}

func (r *EventTypeRepository) FindByID(ctx context.Context, id uint) (*entities.EventType, error) {
	var (
		t        entities.EventType
		rowID    int64
		seatsMax int32
	)
	err := conn(ctx, r.db).QueryRow(ctx, `
		SELECT id, name, default_timezone, seats_max, website_menu FROM event_types WHERE id = $1`,
		int64(id),
	).Scan(&rowID, &t.Name, &t.DefaultTimezone, &seatsMax, &t.WebsiteMenu)
	if err != nil {
		return nil, notFound(err, domain.ErrEventTypeNotFound)
	}
	t.ID = uint(rowID)
	t.SeatsMax = int(seatsMax)
	return &t, nil
}
