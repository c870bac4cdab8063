package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eventsite/internal/domain"
	"eventsite/internal/domain/entities"
)

func ptr[T any](v T) *T { return &v }

func TestEventValuesApply(t *testing.T) {
	t.Run("OnlyChangedFieldsAreTracked", func(t *testing.T) {
		e := &entities.Event{ID: 1, Name: "Party", WebsiteMenu: true}
		init := entities.EventValues{
			Name:             ptr("Party"),
			WebsiteMenu:      ptr(true),
			WebsitePublished: ptr(true),
		}.Apply(e)

		assert.True(t, e.WebsitePublished)
		assert.Equal(t, map[string]any{domain.FieldWebsitePublished: false}, init)
	})

	t.Run("EventTypeChange", func(t *testing.T) {
		e := &entities.Event{ID: 1, EventTypeID: ptr(uint(2))}
		typeID := ptr(uint(3))
		init := entities.EventValues{EventTypeID: &typeID}.Apply(e)

		assert.Equal(t, uint(3), *e.EventTypeID)
		assert.Contains(t, init, domain.FieldEventType)
	})

	t.Run("ClearAddress", func(t *testing.T) {
		e := &entities.Event{ID: 1, AddressID: ptr(uint(4))}
		var none *uint
		init := entities.EventValues{AddressID: &none}.Apply(e)

		assert.Nil(t, e.AddressID)
		assert.Contains(t, init, domain.FieldAddress)
	})

	t.Run("SEO", func(t *testing.T) {
		e := &entities.Event{ID: 1}
		entities.EventValues{SEO: &entities.SEOMetadata{WebsiteMetaTitle: "Title"}}.Apply(e)
		assert.True(t, e.HasMetadata())
	})
}

func TestViewerIsPublic(t *testing.T) {
	assert.True(t, entities.PublicViewer("en").IsPublic())
	assert.False(t, entities.Viewer{UserID: 4}.IsPublic())
}

func TestAddressMapHelpers(t *testing.T) {
	a := &entities.Address{Street: "1 Main St", City: "Lyon", Zip: "69001", Country: "France"}
	assert.Equal(t, "1 Main St, Lyon 69001, France", a.Line())
	assert.Contains(t, a.GoogleMapImg(8, 298, 298, ""), "size=298x298")
	assert.Contains(t, a.GoogleMapLink(8), "z=8")
}
