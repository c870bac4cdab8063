package entities

// Viewer is the identity on whose behalf a request is served. The zero
// value is the anonymous public visitor.
type Viewer struct {
	UserID    uint
	PartnerID uint
	Name      string
	Email     string
	Locale    string
}

// PublicViewer returns the anonymous visitor for the given locale.
func PublicViewer(locale string) Viewer {
	return Viewer{Locale: locale}
}

// IsPublic reports whether v is the anonymous visitor.
func (v Viewer) IsPublic() bool {
	return v.UserID == 0
}
