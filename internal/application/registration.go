package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
	"eventsite/internal/ports/input"
	"eventsite/internal/ports/output"
)

var _ input.RegistrationUseCase = (*RegistrationService)(nil)

type RegistrationService struct {
	registrationRepo output.RegistrationRepository
	eventRepo        output.EventRepository
	tx               output.Transactor
	translator       output.T
	log              zerolog.Logger
}

func NewRegistrationService(
	registrationRepo output.RegistrationRepository,
	eventRepo output.EventRepository,
	tx output.Transactor,
	translator output.T,
	log zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		tx:               tx,
		translator:       translator,
		log:              log,
	}
}

// Register records an attendee for the event and returns the reply shown to
// the visitor. A logged-in viewer's name, email and partner fill in what the
// form left empty.
func (s *RegistrationService) Register(ctx context.Context, viewer entities.Viewer, eventID uint, name, email string) (string, error) {
	locale := viewer.Locale
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if !viewer.IsPublic() {
		if name == "" {
			name = viewer.Name
		}
		if email == "" {
			email = strings.ToLower(viewer.Email)
		}
	}
	if name == "" || email == "" {
		return s.translator.T(locale, "error.invalid_registration", nil), domain.ErrInvalidRegistration
	}

	var event *entities.Event
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		e, err := s.eventRepo.FindByID(ctx, eventID)
		if err != nil {
			return err
		}
		event = e
		existing, err := s.registrationRepo.FindByEventIDAndEmail(ctx, eventID, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrRegistrationExists
		}
		if !viewer.IsPublic() && viewer.PartnerID != 0 {
			count, err := s.registrationRepo.CountForAttendee(ctx, eventID, viewer.PartnerID, "")
			if err != nil {
				return fmt.Errorf("count partner registrations: %w", err)
			}
			if count > 0 {
				return domain.ErrRegistrationExists
			}
		}
		if e.SeatsMax > 0 {
			count, err := s.registrationRepo.CountByEventID(ctx, eventID)
			if err != nil {
				return fmt.Errorf("count registrations: %w", err)
			}
			if int(count) >= e.SeatsMax {
				return domain.ErrEventFull
			}
		}
		registration := &entities.Registration{
			EventID: eventID,
			Name:    name,
			Email:   email,
		}
		if !viewer.IsPublic() && viewer.PartnerID != 0 {
			partnerID := viewer.PartnerID
			registration.PartnerID = &partnerID
		}
		if err := s.registrationRepo.Create(ctx, registration); err != nil {
			return fmt.Errorf("create registration: %w", err)
		}
		return nil
	})
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			return s.translator.T(locale, "error."+de.Code(), nil), err
		}
		return "", err
	}

	s.log.Info().Uint("event_id", eventID).Msg("✅ registration recorded")
	return s.translator.T(locale, "registration.confirmed", map[string]any{"Event": event.Name}), nil
}
