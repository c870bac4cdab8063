// Package maps builds Google Maps URLs for postal addresses.
package maps

import (
	"net/url"
	"strconv"
)

const (
	staticMapBase = "//maps.googleapis.com/maps/api/staticmap"
	linkBase      = "https://maps.google.com/maps"
)

// Defaults used by the event page when no explicit size or zoom is given.
const (
	DefaultZoom   = 8
	DefaultWidth  = 298
	DefaultHeight = 298
)

// StaticImageURL returns the static map image URL centred on the given
// address line. The API key is only added when non-empty.
func StaticImageURL(center string, zoom, width, height int, apiKey string) string {
	params := url.Values{}
	params.Set("center", center)
	params.Set("size", strconv.Itoa(width)+"x"+strconv.Itoa(height))
	params.Set("zoom", strconv.Itoa(zoom))
	params.Set("sensor", "false")
	if apiKey != "" {
		params.Set("key", apiKey)
	}
	return staticMapBase + "?" + params.Encode()
}

// LinkURL returns a link opening the address in Google Maps.
func LinkURL(query string, zoom int) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("z", strconv.Itoa(zoom))
	return linkBase + "?" + params.Encode()
}
