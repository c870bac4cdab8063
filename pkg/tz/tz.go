package tz

import (
	"sync"
	"time"
)

var (
	mu    sync.Mutex
	cache = map[string]*time.Location{}
)

// Load returns the named IANA location, or UTC when the name is empty or
// unknown. Locations are cached.
func Load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	mu.Lock()
	defer mu.Unlock()
	if loc, ok := cache[name]; ok {
		return loc
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		loc = time.UTC
	}
	cache[name] = loc
	return loc
}
