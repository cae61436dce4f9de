package geo

import "math"

const (
	earthRadiusKm = 6371

	// Приближение для равнопрямоугольного смещения: километров в одном
	// градусе широты. Для долготы значение масштабируется на cos(широты).
	kmPerDegreeLat = 111
)

// DistanceKm возвращает расстояние по дуге большого круга (формула гаверсинуса)
// между двумя точками в километрах.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// IsWithinRadius сообщает, лежит ли точка в радиусе radiusKm от центра.
// Граница включительно.
func IsWithinRadius(lat, lon, centerLat, centerLon, radiusKm float64) bool {
	return DistanceKm(lat, lon, centerLat, centerLon) <= radiusKm
}

// BearingDegrees возвращает начальный азимут из точки from в точку to
// в диапазоне [0, 360).
func BearingDegrees(fromLat, fromLon, toLat, toLon float64) float64 {
	dLon := toRad(toLon - fromLon)
	lat1 := toRad(fromLat)
	lat2 := toRad(toLat)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	bearing := math.Atan2(y, x)
	return math.Mod(bearing*180/math.Pi+360, 360)
}

// CompassFromBearing переводит азимут в одно из восьми направлений компаса
func CompassFromBearing(bearing float64) string {
	directions := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	index := int(math.Round(bearing/45)) % 8
	return directions[index]
}

// OffsetPoint смещает точку на distanceKm вдоль единичного вектора
// (latUnit, lonUnit), используя равнопрямоугольное приближение.
func OffsetPoint(lat, lon, latUnit, lonUnit, distanceKm float64) (float64, float64) {
	lonKmPerDegree := kmPerDegreeLat * math.Cos(toRad(lat))
	offsetLat := lat + latUnit*distanceKm/kmPerDegreeLat
	offsetLon := lon + lonUnit*distanceKm/lonKmPerDegree
	return offsetLat, offsetLon
}

func toRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
