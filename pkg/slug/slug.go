// Package slug builds the human-readable identifiers used in public event
// URLs ("/event/summer-party-12").
package slug

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength bounds the name part of a slug.
const MaxLength = 80

// ErrInvalid is returned by Unslug when the input carries no trailing id.
var ErrInvalid = errors.New("slug: no record id")

var (
	nonAlnum  = regexp.MustCompile(`[^a-z0-9]+`)
	unslugExp = regexp.MustCompile(`^(?:(.*)-)?(\d+)$`)
)

// Slugify converts a free-form name into a lowercase ASCII, hyphen-separated
// string. Accents are folded ("Fête" -> "fete"); anything that cannot be
// represented is dropped.
func Slugify(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	s := nonAlnum.ReplaceAllString(strings.ToLower(folded), "-")
	s = strings.Trim(s, "-")
	if len(s) > MaxLength {
		s = strings.TrimRight(s[:MaxLength], "-")
	}
	return s
}

// Slug returns "<slugified name>-<id>", or just the id when the name has
// nothing left after slugification.
func Slug(name string, id uint) string {
	idStr := strconv.FormatUint(uint64(id), 10)
	s := Slugify(name)
	if s == "" {
		return idStr
	}
	return s + "-" + idStr
}

// Unslug splits a slug produced by Slug back into its name part and id.
func Unslug(s string) (string, uint, error) {
	m := unslugExp.FindStringSubmatch(strings.Trim(s, "/"))
	if m == nil {
		return "", 0, ErrInvalid
	}
	id, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil || id == 0 {
		return "", 0, ErrInvalid
	}
	return m[1], uint(id), nil
}
