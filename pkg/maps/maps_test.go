package maps_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsite/pkg/maps"
)

func TestStaticImageURL(t *testing.T) {
	raw := maps.StaticImageURL("1 Main St, Lyon 69001, France", 8, 298, 200, "")
	require.True(t, strings.HasPrefix(raw, "//maps.googleapis.com/maps/api/staticmap?"))

	u, err := url.Parse("https:" + raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "1 Main St, Lyon 69001, France", q.Get("center"))
	assert.Equal(t, "298x200", q.Get("size"))
	assert.Equal(t, "8", q.Get("zoom"))
	assert.Equal(t, "false", q.Get("sensor"))
	assert.False(t, q.Has("key"))
}

func TestStaticImageURLWithKey(t *testing.T) {
	raw := maps.StaticImageURL("x", 3, 10, 10, "secret")
	u, err := url.Parse("https:" + raw)
	require.NoError(t, err)
	assert.Equal(t, "secret", u.Query().Get("key"))
}

func TestLinkURL(t *testing.T) {
	raw := maps.LinkURL("1 Main St, Lyon", 10)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "maps.google.com", u.Host)
	assert.Equal(t, "1 Main St, Lyon", u.Query().Get("q"))
	assert.Equal(t, "10", u.Query().Get("z"))
}
