package tz_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"eventsite/pkg/tz"
)

func TestLoad(t *testing.T) {
	assert.Equal(t, time.UTC, tz.Load(""))
	assert.Equal(t, time.UTC, tz.Load("Mars/Olympus_Mons"))
	assert.Equal(t, "Europe/Paris", tz.Load("Europe/Paris").String())
	assert.Same(t, tz.Load("Europe/Paris"), tz.Load("Europe/Paris"))
}
