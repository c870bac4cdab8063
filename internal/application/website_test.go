package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsite/internal/application"
	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
)

func TestTrackSubtype(t *testing.T) {
	f := newFixture()

	published := &entities.Event{ID: 1, Publication: entities.Publication{WebsitePublished: true}}
	unpublished := &entities.Event{ID: 1}
	changed := map[string]any{domain.FieldWebsitePublished: false}

	assert.Equal(t, domain.SubtypeEventPublished, f.svc.TrackSubtype(published, changed))
	assert.Equal(t, domain.SubtypeEventUnpublished, f.svc.TrackSubtype(unpublished, changed))
	assert.Empty(t, f.svc.TrackSubtype(published, map[string]any{domain.FieldName: "old"}))
	assert.Empty(t, f.svc.TrackSubtype(nil, changed))
}

func TestTrackSubtypeDefersToBase(t *testing.T) {
	f := newFixture(application.WithBaseSubtype(func(_ *entities.Event, init map[string]any) string {
		if _, ok := init[domain.FieldName]; ok {
			return "event.mt_event_renamed"
		}
		return ""
	}))
	e := &entities.Event{ID: 1, Publication: entities.Publication{WebsitePublished: true}}

	assert.Equal(t, "event.mt_event_renamed", f.svc.TrackSubtype(e, map[string]any{domain.FieldName: "old"}))
	assert.Equal(t, domain.SubtypeEventPublished, f.svc.TrackSubtype(e, map[string]any{
		domain.FieldName:             "old",
		domain.FieldWebsitePublished: false,
	}))
}

func TestPublishingNotifies(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	e := f.createEvent(t, entities.Event{Name: "Party"})

	got, err := f.svc.TogglePublished(ctx, "fr", e.ID)
	require.NoError(t, err)
	assert.True(t, got.WebsitePublished)

	_, err = f.svc.UpdateEvent(ctx, "en", e.ID, entities.EventValues{Name: ptr("Party!")})
	require.NoError(t, err)

	got, err = f.svc.TogglePublished(ctx, "en", e.ID)
	require.NoError(t, err)
	assert.False(t, got.WebsitePublished)

	require.Len(t, f.notifier.sent, 2)
	assert.Equal(t, entities.Notification{
		Subtype:   domain.SubtypeEventPublished,
		EventID:   e.ID,
		EventName: "Party",
		EventURL:  "/event/party-1",
		Published: true,
		Locale:    "fr",
	}, f.notifier.sent[0])
	assert.Equal(t, domain.SubtypeEventUnpublished, f.notifier.sent[1].Subtype)
	assert.Equal(t, "/event/party-1", f.notifier.sent[1].EventURL)
}

func TestPublishingSurvivesNotifierFailure(t *testing.T) {
	f := newFixture()
	f.notifier.err = errors.New("discord down")
	e := f.createEvent(t, entities.Event{Name: "Party"})

	got, err := f.svc.UpdateEvent(context.Background(), "en", e.ID, entities.EventValues{WebsitePublished: ptr(true)})
	require.NoError(t, err)
	assert.True(t, got.WebsitePublished)
	assert.Len(t, f.notifier.sent, 1)
}

func TestSamePublishedValueIsNotTracked(t *testing.T) {
	f := newFixture()
	e := f.createEvent(t, entities.Event{Name: "Party"})

	_, err := f.svc.UpdateEvent(context.Background(), "en", e.ID, entities.EventValues{WebsitePublished: ptr(false)})
	require.NoError(t, err)
	assert.Empty(t, f.notifier.sent)
}

func TestBadgeEditorAction(t *testing.T) {
	f := newFixture()

	action, err := f.svc.BadgeEditorAction(&entities.Event{ID: 5, Name: "Party"})
	require.NoError(t, err)
	assert.Equal(t, entities.URLAction{
		Type:   "ir.actions.act_url",
		Target: "new",
		URL:    "/report/html/event.event_event_report_template_badge/5?enable_editor",
	}, action)

	_, err = f.svc.BadgeEditorAction(&entities.Event{Name: "Draft"})
	assert.ErrorIs(t, err, domain.ErrEventNotSaved)

	_, err = f.svc.BadgeEditorAction(nil)
	assert.ErrorIs(t, err, domain.ErrEventRequired)
}

func TestGoogleMapHelpers(t *testing.T) {
	ctx := context.Background()
	f := newFixture(application.WithMapsAPIKey("k3y"))
	f.addresses[3] = entities.Address{ID: 3, Street: "1 Main St", City: "Lyon", Zip: "69001", Country: "France"}

	t.Run("NoAddress", func(t *testing.T) {
		e := &entities.Event{ID: 1}
		img, err := f.svc.GoogleMapImg(ctx, e, 8, 298, 298)
		require.NoError(t, err)
		assert.Empty(t, img)

		link, err := f.svc.GoogleMapLink(ctx, e, 8)
		require.NoError(t, err)
		assert.Empty(t, link)
	})

	t.Run("WithAddress", func(t *testing.T) {
		e := &entities.Event{ID: 1, AddressID: ptr(uint(3))}
		img, err := f.svc.GoogleMapImg(ctx, e, 12, 400, 300)
		require.NoError(t, err)
		assert.Contains(t, img, "//maps.googleapis.com/maps/api/staticmap?")
		assert.Contains(t, img, "size=400x300")
		assert.Contains(t, img, "zoom=12")
		assert.Contains(t, img, "key=k3y")

		link, err := f.svc.GoogleMapLink(ctx, e, 8)
		require.NoError(t, err)
		assert.Contains(t, link, "https://maps.google.com/maps?")
		assert.Contains(t, link, "z=8")
	})

	t.Run("MissingAddressRecord", func(t *testing.T) {
		_, err := f.svc.GoogleMapLink(ctx, &entities.Event{ID: 1, AddressID: ptr(uint(4))}, 8)
		assert.ErrorIs(t, err, domain.ErrAddressNotFound)
	})

	t.Run("Nil", func(t *testing.T) {
		_, err := f.svc.GoogleMapImg(ctx, nil, 8, 298, 298)
		assert.ErrorIs(t, err, domain.ErrEventRequired)
	})
}

func TestGetPage(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	party := f.createEvent(t, entities.Event{Name: "Party"})
	party = f.setWebsiteMenu(t, party.ID, true)
	other := f.createEvent(t, entities.Event{Name: "Other"})
	other = f.setWebsiteMenu(t, other.ID, true)

	t.Run("OwnPage", func(t *testing.T) {
		page, err := f.svc.GetPage(ctx, party, "/introduction-party")
		require.NoError(t, err)
		assert.Equal(t, domain.TemplateIntro, page.Template)
		assert.Equal(t, "Introduction Party", page.Name)
		require.NotNil(t, page.EventID)
		assert.Equal(t, party.ID, *page.EventID)
	})

	t.Run("OtherEventPage", func(t *testing.T) {
		_, err := f.svc.GetPage(ctx, other, "/introduction-party")
		assert.ErrorIs(t, err, domain.ErrPageNotFound)
	})

	t.Run("UnknownPage", func(t *testing.T) {
		_, err := f.svc.GetPage(ctx, party, "/nope")
		assert.ErrorIs(t, err, domain.ErrPageNotFound)
	})

	t.Run("NilEvent", func(t *testing.T) {
		_, err := f.svc.GetPage(ctx, nil, "/introduction-party")
		assert.ErrorIs(t, err, domain.ErrEventRequired)
	})
}
