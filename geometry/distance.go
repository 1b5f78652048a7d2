package geometry

import "math"

// HaversineKM returns the great-circle distance in kilometers between two
// (lat, lon) coordinates.
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371.0
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	la1 := lat1 * math.Pi / 180
	la2 := lat2 * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// PathLengthKM sums the haversine distance along a normalized (lat, lon)
// pair sequence.
func PathLengthKM(path [][2]float64) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += HaversineKM(path[i-1][0], path[i-1][1], path[i][0], path[i][1])
	}
	return total
}
