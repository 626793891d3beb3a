// Package fare contains the pure travel-price computations: great-circle
// distance between two coordinates and the per-mode fare tables applied to it.
package fare

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// rate is a per-travel-mode fare definition: a flat base fare plus a
// per-kilometre charge.
type rate struct {
	BaseFare   float64
	PricePerKm float64
}

// Fares per travel mode. Flight is economy class, Train is 3rd AC.
var fareTable = map[string]rate{
	"Car":    {BaseFare: 50, PricePerKm: 7},
	"Flight": {BaseFare: 1000, PricePerKm: 5},
	"Train":  {BaseFare: 300, PricePerKm: 3},
}

// Distance returns the great-circle distance in kilometres between two
// points given in decimal degrees, using the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Price computes the fare for travelling between the two coordinates with
// the given mode. An unknown mode is an error, never a zero price.
func Price(travelMode string, srcLat, srcLon, dstLat, dstLon float64) (float64, error) {
	r, ok := fareTable[travelMode]
	if !ok {
		return 0, fmt.Errorf("unknown travel mode %q", travelMode)
	}
	distance := Distance(srcLat, srcLon, dstLat, dstLon)
	return r.BaseFare + r.PricePerKm*distance, nil
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
