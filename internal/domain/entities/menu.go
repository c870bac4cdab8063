package entities

// Menu is a website navigation entry. Root menus have no parent.
type Menu struct {
	ID       uint
	Name     string
	URL      string
	ParentID *uint
	Sequence int
	Children []Menu
}

// MenuEntry describes one child entry of an event menu. Entries with an
// empty URL are materialized as a website page rendered from Template.
type MenuEntry struct {
	Name     string
	URL      string
	Template string
}

// Page is a website page created from a template. Pages created for an
// event menu belong to that event.
type Page struct {
	ID       uint
	EventID  *uint
	Name     string
	URL      string
	Template string
}
