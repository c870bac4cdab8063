package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"eventsite/internal/domain/entities"
	"eventsite/internal/ports/output"
)

var _ output.RegistrationRepository = (*RegistrationRepository)(nil)

type RegistrationRepository struct {
	db DBTX
}

func NewRegistrationRepository(db DBTX) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration *entities.Registration) error {
	var (
		id        int64
		createdAt pgtype.Timestamptz
	)
	err := conn(ctx, r.db).QueryRow(ctx, `
		INSERT INTO event_registrations (event_id, partner_id, name, email)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		int64(registration.EventID), idToInt8(registration.PartnerID), registration.Name, registration.Email,
	).Scan(&id, &createdAt)
	if err != nil {
		return fmt.Errorf("create registration: %w", err)
	}
	registration.ID = uint(id)
	registration.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return nil
}

// FindByEventIDAndEmail returns nil without error when nobody registered
// with that email.
func (r *RegistrationRepository) FindByEventIDAndEmail(ctx context.Context, eventID uint, email string) (*entities.Registration, error) {
	var (
		reg       entities.Registration
		id, evID  int64
		partnerID pgtype.Int8
		createdAt pgtype.Timestamptz
	)
	err := conn(ctx, r.db).QueryRow(ctx, `
		SELECT id, event_id, partner_id, name, email, created_at FROM event_registrations
		WHERE event_id = $1 AND lower(email) = lower($2)`,
		int64(eventID), email,
	).Scan(&id, &evID, &partnerID, &reg.Name, &reg.Email, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get registration by email: %w", err)
	}
	reg.ID = uint(id)
	reg.EventID = uint(evID)
	reg.PartnerID = int8ToID(partnerID)
	reg.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return &reg, nil
}

func (r *RegistrationRepository) CountByEventID(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := conn(ctx, r.db).QueryRow(ctx, `SELECT count(*) FROM event_registrations WHERE event_id = $1`, int64(eventID)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return count, nil
}

func (r *RegistrationRepository) CountForAttendee(ctx context.Context, eventID, partnerID uint, email string) (int64, error) {
	var count int64
	err := conn(ctx, r.db).QueryRow(ctx, `
		SELECT count(*) FROM event_registrations
		WHERE event_id = $1
		  AND (($2::bigint <> 0 AND partner_id = $2::bigint)
		    OR ($3::text <> '' AND lower(email) = lower($3::text)))`,
		int64(eventID), int64(partnerID), email,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count attendee registrations: %w", err)
	}
	return count, nil
}
