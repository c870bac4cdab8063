package entities

import "time"

// Registration represents an attendee's registration to an event.
type Registration struct {
	ID        uint
	EventID   uint
	PartnerID *uint
	Name      string
	Email     string
	CreatedAt time.Time
}
