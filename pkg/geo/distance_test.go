package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	// Lukla (2860 m) to Namche Bazaar (3440 m), roughly 13 km as the crow flies
	d := DistanceMeters(27.6869, 86.7314, 27.8069, 86.7140)
	if d < 12000 || d > 15000 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestDistanceMetersSamePoint(t *testing.T) {
	assert.InDelta(t, 0, DistanceMeters(28.0, 86.9, 28.0, 86.9), 1e-9)
}

func TestDistanceMetersOneDegreeOfLatitude(t *testing.T) {
	assert.InDelta(t, 111195, DistanceMeters(0, 0, 1, 0), 10)
}
