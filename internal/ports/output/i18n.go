package output

// T looks up localized labels: menu entry names, page titles and the
// messages shown after a registration or a publication change.
type T interface {
	// T returns the text of key in locale, falling back to the key itself
	// when no translation exists. data fills template placeholders and may
	// be nil.
	T(locale, key string, data map[string]any) string
}
