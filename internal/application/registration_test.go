package application_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsite/internal/application"
	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
)

func newRegistrationFixture(t *testing.T, seats int) (*application.RegistrationService, *fakeRegistrations, uint) {
	t.Helper()
	events := newFakeEvents()
	e := &entities.Event{Name: "Party", SeatsMax: seats}
	require.NoError(t, events.Create(context.Background(), e))
	regs := &fakeRegistrations{}
	svc := application.NewRegistrationService(regs, events, &fakeTx{}, fakeTranslator{}, zerolog.Nop())
	return svc, regs, e.ID
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("PublicVisitor", func(t *testing.T) {
		svc, regs, id := newRegistrationFixture(t, 0)
		reply, err := svc.Register(ctx, entities.PublicViewer("en"), id, " Ada ", "ADA@example.com")
		require.NoError(t, err)
		assert.Equal(t, "registered", reply)
		require.Len(t, regs.rows, 1)
		assert.Equal(t, "ada@example.com", regs.rows[0].Email)
		assert.Nil(t, regs.rows[0].PartnerID)
	})

	t.Run("LoggedInViewerFillsForm", func(t *testing.T) {
		svc, regs, id := newRegistrationFixture(t, 0)
		viewer := entities.Viewer{UserID: 2, PartnerID: 7, Name: "Bob", Email: "bob@example.com", Locale: "en"}
		_, err := svc.Register(ctx, viewer, id, "", "")
		require.NoError(t, err)
		require.Len(t, regs.rows, 1)
		assert.Equal(t, "Bob", regs.rows[0].Name)
		assert.Equal(t, uint(7), *regs.rows[0].PartnerID)
	})

	t.Run("Duplicate", func(t *testing.T) {
		svc, _, id := newRegistrationFixture(t, 0)
		_, err := svc.Register(ctx, entities.PublicViewer("en"), id, "Ada", "ada@example.com")
		require.NoError(t, err)
		reply, err := svc.Register(ctx, entities.PublicViewer("en"), id, "Ada", "ada@example.com")
		assert.ErrorIs(t, err, domain.ErrRegistrationExists)
		assert.Equal(t, "error.registration_exists", reply)
	})

	t.Run("DuplicatePartnerOtherEmail", func(t *testing.T) {
		svc, regs, id := newRegistrationFixture(t, 0)
		viewer := entities.Viewer{UserID: 2, PartnerID: 7, Name: "Bob", Email: "bob@example.com", Locale: "en"}
		_, err := svc.Register(ctx, viewer, id, "", "")
		require.NoError(t, err)

		reply, err := svc.Register(ctx, viewer, id, "Bob", "bob@work.example.com")
		assert.ErrorIs(t, err, domain.ErrRegistrationExists)
		assert.Equal(t, "error.registration_exists", reply)
		assert.Len(t, regs.rows, 1)
	})

	t.Run("PublicVisitorSkipsPartnerCheck", func(t *testing.T) {
		svc, regs, id := newRegistrationFixture(t, 0)
		_, err := svc.Register(ctx, entities.PublicViewer("en"), id, "Ada", "ada@example.com")
		require.NoError(t, err)
		assert.Zero(t, regs.countCalls)
	})

	t.Run("Full", func(t *testing.T) {
		svc, regs, id := newRegistrationFixture(t, 1)
		_, err := svc.Register(ctx, entities.PublicViewer("en"), id, "Ada", "ada@example.com")
		require.NoError(t, err)
		_, err = svc.Register(ctx, entities.PublicViewer("en"), id, "Bob", "bob@example.com")
		assert.ErrorIs(t, err, domain.ErrEventFull)
		assert.Len(t, regs.rows, 1)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc, _, id := newRegistrationFixture(t, 0)
		_, err := svc.Register(ctx, entities.PublicViewer("en"), id, "Ada", " ")
		assert.ErrorIs(t, err, domain.ErrInvalidRegistration)
	})

	t.Run("UnknownEvent", func(t *testing.T) {
		svc, _, _ := newRegistrationFixture(t, 0)
		_, err := svc.Register(ctx, entities.PublicViewer("en"), 99, "Ada", "ada@example.com")
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})
}
