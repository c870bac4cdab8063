package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
	"eventsite/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

const eventColumns = `id, name, event_type_id, address_id, date_begin, date_end, date_tz, seats_max,
	website_published, website_meta_title, website_meta_description, website_meta_keywords,
	website_menu, menu_id, created_at, updated_at`

type EventRepository struct {
	db DBTX
}

func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{db: db}
}

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var (
		e                    entities.Event
		id                   int64
		eventTypeID, address pgtype.Int8
		menuID               pgtype.Int8
		dateBegin, dateEnd   pgtype.Timestamptz
		createdAt, updatedAt pgtype.Timestamptz
		seatsMax             int32
	)
	err := row.Scan(&id, &e.Name, &eventTypeID, &address, &dateBegin, &dateEnd, &e.DateTZ, &seatsMax,
		&e.WebsitePublished, &e.WebsiteMetaTitle, &e.WebsiteMetaDescription, &e.WebsiteMetaKeywords,
		&e.WebsiteMenu, &menuID, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	e.ID = uint(id)
	e.EventTypeID = int8ToID(eventTypeID)
	e.AddressID = int8ToID(address)
	e.MenuID = int8ToID(menuID)
	e.DateBegin = pgtypeTimestamptzToTime(dateBegin)
	e.DateEnd = pgtypeTimestamptzToTime(dateEnd)
	e.SeatsMax = int(seatsMax)
	e.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	e.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	if event.DateTZ == "" {
		event.DateTZ = "UTC"
	}
	row := conn(ctx, r.db).QueryRow(ctx, `
		INSERT INTO events (name, event_type_id, address_id, date_begin, date_end, date_tz, seats_max,
			website_published, website_meta_title, website_meta_description, website_meta_keywords, website_menu)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at`,
		event.Name, idToInt8(event.EventTypeID), idToInt8(event.AddressID),
		timeToPgtype(event.DateBegin), timeToPgtype(event.DateEnd), event.DateTZ, int32(event.SeatsMax),
		event.WebsitePublished, event.WebsiteMetaTitle, event.WebsiteMetaDescription, event.WebsiteMetaKeywords,
		event.WebsiteMenu,
	)
	var (
		id                   int64
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &createdAt, &updatedAt); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.ID = uint(id)
	event.MenuID = nil
	event.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	event.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*entities.Event, error) {
	row := conn(ctx, r.db).QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, int64(id))
	e, err := scanEvent(row)
	if err != nil {
		return nil, notFound(err, domain.ErrEventNotFound)
	}
	return e, nil
}

func (r *EventRepository) FindPublished(ctx context.Context) ([]entities.Event, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT `+eventColumns+` FROM events
		WHERE website_published ORDER BY date_begin NULLS LAST, id`)
	if err != nil {
		return nil, fmt.Errorf("find published events: %w", err)
	}
	defer rows.Close()
	var out []entities.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

// Update writes every stored field except the menu reference, which only
// SetMenuID changes.
func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `
		UPDATE events SET name = $2, event_type_id = $3, address_id = $4, date_begin = $5, date_end = $6,
			date_tz = $7, seats_max = $8, website_published = $9, website_meta_title = $10,
			website_meta_description = $11, website_meta_keywords = $12, website_menu = $13, updated_at = now()
		WHERE id = $1`,
		int64(event.ID), event.Name, idToInt8(event.EventTypeID), idToInt8(event.AddressID),
		timeToPgtype(event.DateBegin), timeToPgtype(event.DateEnd), event.DateTZ, int32(event.SeatsMax),
		event.WebsitePublished, event.WebsiteMetaTitle, event.WebsiteMetaDescription, event.WebsiteMetaKeywords,
		event.WebsiteMenu,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) SetMenuID(ctx context.Context, eventID uint, menuID *uint) error {
	_, err := conn(ctx, r.db).Exec(ctx, `UPDATE events SET menu_id = $2, updated_at = now() WHERE id = $1`,
		int64(eventID), idToInt8(menuID))
	if err != nil {
		return fmt.Errorf("set event menu: %w", err)
	}
	return nil
}

// Delete removes the event. Its registrations and pages go with it through
// ON DELETE CASCADE; the menu tree is the caller's to remove.
func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	tag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM events WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
