package domain

// Notification subtypes selected when a tracked event write changes the
// published state.
const (
	SubtypeEventPublished   = "website_event.mt_event_published"
	SubtypeEventUnpublished = "website_event.mt_event_unpublished"
)

// Tracked field names, as they appear in the initial values handed to the
// subtype selector.
const (
	FieldWebsitePublished = "website_published"
	FieldWebsiteMenu      = "website_menu"
	FieldName             = "name"
	FieldEventType        = "event_type_id"
	FieldAddress          = "address_id"
)

// Menu templates rendered for the dedicated event menu entries.
const (
	TemplateIntro    = "website_event.template_intro"
	TemplateLocation = "website_event.template_location"
)
