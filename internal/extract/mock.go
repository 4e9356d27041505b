// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"math/rand/v2"
	"strconv"
	"sync"
	"unicode/utf16"
)

// Geocoder resolves a place name to coordinates. synthetic reports that
// the coordinates are placeholders rather than a real lookup.
type Geocoder interface {
	Geocode(name string) (lat, lng float64, synthetic bool)
}

// MockGeocoder returns uniformly random coordinates. No geocoding
// service is consulted and the values mean nothing.
type MockGeocoder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockGeocoder returns a MockGeocoder drawing from rng.
func NewMockGeocoder(rng *rand.Rand) *MockGeocoder {
	return &MockGeocoder{rng: rng}
}

// Geocode ignores name and returns lat in [-90, 90) and lng in
// [-180, 180).
func (g *MockGeocoder) Geocode(string) (lat, lng float64, synthetic bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	lat = g.rng.Float64()*180 - 90
	lng = g.rng.Float64()*360 - 180
	return lat, lng, true
}

// IDGenerator derives an identifier for a related topic title.
type IDGenerator interface {
	ID(title string) string
}

// MockIDGenerator hashes the title into a decimal string. The result is
// stable for a title but does not name any real article.
type MockIDGenerator struct{}

// ID computes hash = hash*31 + unit over the UTF-16 code units of title
// with 32-bit signed wraparound, and returns the absolute value.
func (MockIDGenerator) ID(title string) string {
	var h int32
	for _, u := range utf16.Encode([]rune(title)) {
		h = h<<5 - h + int32(u)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 10)
}
