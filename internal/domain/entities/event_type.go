package entities

// EventType holds the defaults copied onto events of this type.
type EventType struct {
	ID              uint
	Name            string
	DefaultTimezone string
	SeatsMax        int
	WebsiteMenu     bool // display a dedicated menu on the website
}
