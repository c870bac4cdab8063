package entities

import (
	"time"

	"eventsite/internal/domain"
)

// Publication carries the website publishing state shared by every
// publishable record.
type Publication struct {
	WebsitePublished bool
	WebsiteURL       string // computed, never stored
}

// SEOMetadata carries the search-engine fields of a public page.
type SEOMetadata struct {
	WebsiteMetaTitle       string
	WebsiteMetaDescription string
	WebsiteMetaKeywords    string
}

// HasMetadata reports whether any SEO field has been filled in.
func (m SEOMetadata) HasMetadata() bool {
	return m.WebsiteMetaTitle != "" || m.WebsiteMetaDescription != "" || m.WebsiteMetaKeywords != ""
}

type Event struct {
	ID          uint
	Name        string
	EventTypeID *uint
	AddressID   *uint
	DateBegin   time.Time
	DateEnd     time.Time
	DateTZ      string
	SeatsMax    int // 0 = unlimited
	WebsiteMenu bool
	MenuID      *uint // root of the dedicated menu, owned while WebsiteMenu is on
	Publication
	SEOMetadata
	IsParticipating bool // computed per viewer, never stored
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsSaved reports whether the event has a persisted identity.
func (e *Event) IsSaved() bool {
	return e != nil && e.ID != 0
}

// EventValues is a partial write on an event: only non-nil fields are
// applied.
type EventValues struct {
	Name             *string
	EventTypeID      **uint
	AddressID        **uint
	DateBegin        *time.Time
	DateEnd          *time.Time
	DateTZ           *string
	SeatsMax         *int
	WebsiteMenu      *bool
	WebsitePublished *bool
	SEO              *SEOMetadata
}

// Apply writes the set values onto e and returns the initial value of every
// field that actually changed, keyed by tracked field name.
func (v EventValues) Apply(e *Event) map[string]any {
	init := map[string]any{}
	if v.Name != nil && *v.Name != e.Name {
		init[domain.FieldName] = e.Name
		e.Name = *v.Name
	}
	if v.EventTypeID != nil && !sameID(*v.EventTypeID, e.EventTypeID) {
		init[domain.FieldEventType] = e.EventTypeID
		e.EventTypeID = *v.EventTypeID
	}
	if v.AddressID != nil && !sameID(*v.AddressID, e.AddressID) {
		init[domain.FieldAddress] = e.AddressID
		e.AddressID = *v.AddressID
	}
	if v.DateBegin != nil {
		e.DateBegin = *v.DateBegin
	}
	if v.DateEnd != nil {
		e.DateEnd = *v.DateEnd
	}
	if v.DateTZ != nil {
		e.DateTZ = *v.DateTZ
	}
	if v.SeatsMax != nil {
		e.SeatsMax = *v.SeatsMax
	}
	if v.WebsiteMenu != nil && *v.WebsiteMenu != e.WebsiteMenu {
		init[domain.FieldWebsiteMenu] = e.WebsiteMenu
		e.WebsiteMenu = *v.WebsiteMenu
	}
	if v.WebsitePublished != nil && *v.WebsitePublished != e.WebsitePublished {
		init[domain.FieldWebsitePublished] = e.WebsitePublished
		e.WebsitePublished = *v.WebsitePublished
	}
	if v.SEO != nil {
		e.SEOMetadata = *v.SEO
	}
	return init
}

func sameID(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
