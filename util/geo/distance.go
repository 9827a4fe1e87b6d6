package geo

import "math"

const (
	earthEquatorialRadius = 6378137.0
	earthPolarRadius      = 6357852.3
	// 子午线周长（米）
	earthMeridionalCircumference = 40007860.0
	metersPerDegreeLatitude      = 110574.0
	earthE2                      = 0.00669447819799
	epsilon                      = 1e-12
)

// EarthRadius 赤道半径与极半径的均值，距离计算统一使用该值
const EarthRadius = (earthEquatorialRadius + earthPolarRadius) / 2

// Distance 返回两点之间的大圆距离（米），haversine 公式
func Distance(a, b Location) float64 {
	latDelta := toRadians(b.Latitude - a.Latitude)
	lngDelta := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(latDelta/2)*math.Sin(latDelta/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(lngDelta/2)*math.Sin(lngDelta/2)

	return EarthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func distanceToLatitudeDegrees(distance float64) float64 {
	return distance / metersPerDegreeLatitude
}

// distanceToLongitudeDegrees 给定纬度上 distance 米对应的经度跨度，最大 360
func distanceToLongitudeDegrees(distance, latitude float64) float64 {
	radians := toRadians(latitude)
	numerator := math.Cos(radians) * earthEquatorialRadius * math.Pi / 180
	denominator := 1 / math.Sqrt(1-earthE2*math.Sin(radians)*math.Sin(radians))
	deltaDegrees := numerator * denominator
	if deltaDegrees < epsilon {
		if distance > 0 {
			return 360
		}
		return distance
	}
	return math.Min(360, distance/deltaDegrees)
}

func wrapLongitude(longitude float64) float64 {
	if longitude >= -180 && longitude <= 180 {
		return longitude
	}
	adjusted := longitude + 180
	if adjusted > 0 {
		return math.Mod(adjusted, 360) - 180
	}
	return 180 - math.Mod(-adjusted, 360)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
