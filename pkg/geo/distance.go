// Package geo holds great-circle helpers for track summaries.
package geo

import "github.com/golang/geo/s2"

const EarthRadiusMeters = 6371008.8

// DistanceMeters is the great-circle distance between two WGS84 points.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}
