package models

import "math"

const earthRadiusKm = 6371.0

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceKm returns the great-circle distance to other in kilometres.
func (l Location) DistanceKm(other Location) float64 {
	lat1 := degreesToRadians(l.Lat)
	lat2 := degreesToRadians(other.Lat)
	dlat := lat2 - lat1
	dlon := degreesToRadians(other.Lon - l.Lon)

	a := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
