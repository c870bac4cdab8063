package output

import (
	"context"

	"eventsite/internal/domain/entities"
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration *entities.Registration) error
	FindByEventIDAndEmail(ctx context.Context, eventID uint, email string) (*entities.Registration, error)
	CountByEventID(ctx context.Context, eventID uint) (int64, error)
	// CountForAttendee counts registrations of the event matching the partner
	// or the email. A zero partnerID or an empty email is ignored.
	CountForAttendee(ctx context.Context, eventID, partnerID uint, email string) (int64, error)
}
