// Package services contains stateless domain services for the cake
// marketplace. Services coordinate logic that does not belong to a single
// aggregate.
package services

import (
	"math"
	"strings"
)

// zipCoordinate pairs a ZIP code with its centroid.
type zipCoordinate struct {
	zip string
	lat float64
	lng float64
}

// Sample ZIP centroids for major metro areas. This is a deliberate stand-in
// for a real geocoding service: estimates feed display filtering only, never
// lifecycle rules.
var zipCoordinates = []zipCoordinate{
	{"10001", 40.7505, -73.9934}, // NYC
	{"10002", 40.7157, -73.9877},
	{"10003", 40.7316, -73.9890},
	{"90210", 34.0901, -118.4065}, // Beverly Hills
	{"90211", 34.0836, -118.4006},
	{"94102", 37.7849, -122.4094}, // San Francisco
	{"94103", 37.7749, -122.4194},
	{"60601", 41.8781, -87.6298}, // Chicago
	{"60602", 41.8796, -87.6355},
	{"33101", 25.7617, -80.1918}, // Miami
	{"33102", 25.7743, -80.1937},
	{"75201", 32.7767, -96.7970}, // Dallas
	{"75202", 32.7831, -96.8067},
	{"98101", 47.6062, -122.3321}, // Seattle
	{"98102", 47.6205, -122.3212},
	{"02101", 42.3601, -71.0589}, // Boston
	{"02102", 42.3584, -71.0598},
	{"30301", 33.7490, -84.3880}, // Atlanta
	{"30302", 33.7537, -84.3901},
}

// regionAnchor approximates a ZIP range by a regional anchor point, spread
// slightly by the offset within the range.
type regionAnchor struct {
	low, high int
	lat, lng  float64
}

var regionAnchors = []regionAnchor{
	{10000, 19999, 40.7, -74.0},  // Northeast
	{20000, 29999, 38.9, -77.0},  // Southeast
	{30000, 39999, 33.7, -84.4},  // South
	{40000, 49999, 39.1, -84.5},  // Midwest
	{50000, 59999, 44.0, -93.3},  // Central
	{60000, 69999, 41.9, -87.6},  // Great Lakes
	{70000, 79999, 32.8, -96.8},  // South Central
	{80000, 89999, 39.7, -104.9}, // Mountain
	{90000, 99999, 34.1, -118.4}, // Pacific
}

const earthRadiusMiles = 3959

// DistanceEstimator estimates the mileage between two US ZIP codes. Known
// ZIPs resolve through the centroid table; unknown ones fall back to a
// coarse regional approximation, and as a last resort to the numeric gap
// between the codes. Outputs are display-grade estimates for filtering
// posted orders by proximity.
//
// Example:
//
//	estimator := services.NewDistanceEstimator()
//	miles := estimator.EstimateMiles("10001", "10003")
type DistanceEstimator struct{}

// NewDistanceEstimator creates a new DistanceEstimator instance.
func NewDistanceEstimator() DistanceEstimator {
	return DistanceEstimator{}
}

// EstimateMiles returns the estimated distance in whole miles between the
// two ZIP codes. Identical ZIPs estimate to 0.
func (e DistanceEstimator) EstimateMiles(zipA, zipB string) int {
	latA, lngA, okA := coordinatesFor(zipA)
	latB, lngB, okB := coordinatesFor(zipB)

	if !okA || !okB {
		// Numeric-gap fallback for codes outside every known range.
		diff := zipNumber(zipA) - zipNumber(zipB)
		if diff < 0 {
			diff = -diff
		}
		return diff / 100
	}

	return int(math.Round(haversineMiles(latA, lngA, latB, lngB)))
}

func coordinatesFor(zip string) (lat, lng float64, ok bool) {
	clean := cleanZip(zip)
	for _, c := range zipCoordinates {
		if c.zip == clean {
			return c.lat, c.lng, true
		}
	}

	n := zipNumber(clean)
	for _, a := range regionAnchors {
		if n >= a.low && n <= a.high {
			offset := float64(n-a.low) * 0.0001
			return a.lat + offset, a.lng + offset, true
		}
	}

	return 0, 0, false
}

// cleanZip strips non-digits and truncates to the 5-digit base code.
func cleanZip(zip string) string {
	var b strings.Builder
	for _, r := range zip {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 5 {
				break
			}
		}
	}
	return b.String()
}

func zipNumber(zip string) int {
	n := 0
	for _, r := range cleanZip(zip) {
		n = n*10 + int(r-'0')
	}
	return n
}

// haversineMiles computes the great-circle distance between two points.
func haversineMiles(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}
