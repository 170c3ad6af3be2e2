package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	daressalaam := Location{Lat: -6.7924, Lon: 39.2083}
	zanzibar := Location{Lat: -6.1659, Lon: 39.2026}

	assert.Zero(t, daressalaam.DistanceKm(daressalaam))

	d := daressalaam.DistanceKm(zanzibar)
	// Ferry route distance, roughly 70 km as the crow flies.
	assert.InDelta(t, 69.7, d, 1.0)

	// Symmetric.
	assert.InDelta(t, d, zanzibar.DistanceKm(daressalaam), 1e-9)
}

func TestDistanceKm_OneDegreeAtEquator(t *testing.T) {
	a := Location{Lat: 0, Lon: 0}
	b := Location{Lat: 0, Lon: 1}
	assert.InDelta(t, 111.19, a.DistanceKm(b), 0.1)
}
