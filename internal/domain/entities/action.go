package entities

import "time"

const ActionTypeURL = "ir.actions.act_url"

// URLAction instructs the caller to open URL, in a new window when Target
// is "new".
type URLAction struct {
	Type   string `json:"type"`
	Target string `json:"target"`
	URL    string `json:"url"`
}

// Notification is emitted after a tracked write selected a subtype.
type Notification struct {
	Subtype   string
	EventID   uint
	EventName string
	EventURL  string
	Published bool
	DateBegin time.Time
	DateTZ    string
	Locale    string
}
