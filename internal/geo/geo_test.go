package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineOneDegreeOfLongitudeAtEquator(t *testing.T) {
	// One degree along the equator is roughly 111 km.
	d := Haversine(0, 0, 0, 1)
	assert.InDelta(t, 111.19, d, 0.5)
}

func TestHaversineZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, Haversine(48.8566, 2.3522, 48.8566, 2.3522))
}

func TestHaversineSymmetric(t *testing.T) {
	a := Haversine(35.6762, 139.6503, 37.5665, 126.978)
	b := Haversine(37.5665, 126.978, 35.6762, 139.6503)
	assert.InDelta(t, a, b, 1e-9)
}

func TestHaversineKnownCityPair(t *testing.T) {
	// Paris to London is about 344 km.
	d := Haversine(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 344, d, 5)
}
