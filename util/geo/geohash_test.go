package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offset 从 center 沿方位角 bearing（度）移动 distance 米
func offset(center Location, distance, bearing float64) Location {
	angular := distance / EarthRadius
	brng := toRadians(bearing)
	lat1 := toRadians(center.Latitude)
	lng1 := toRadians(center.Longitude)

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(angular) + math.Cos(lat1)*math.Sin(angular)*math.Cos(brng))
	lng2 := lng1 + math.Atan2(
		math.Sin(brng)*math.Sin(angular)*math.Cos(lat1),
		math.Cos(angular)-math.Sin(lat1)*math.Sin(lat2),
	)
	return Location{Latitude: lat2 * 180 / math.Pi, Longitude: lng2 * 180 / math.Pi}
}

func coveredBy(bounds []Bound, hash string) bool {
	for _, b := range bounds {
		if b.Contains(hash) {
			return true
		}
	}
	return false
}

func TestEncode(t *testing.T) {
	// 标准 geohash 参考值
	assert.Equal(t, "u4pruydqqv", Encode(Location{Latitude: 57.64911, Longitude: 10.40744}))
	assert.Len(t, EncodeWithPrecision(Location{Latitude: 37.5665, Longitude: 126.9780}, 6), 6)
}

func TestEncode_PolesAndAntimeridian(t *testing.T) {
	for _, l := range []Location{
		{Latitude: 90, Longitude: 180},
		{Latitude: -90, Longitude: -180},
		{Latitude: 90, Longitude: -180},
	} {
		h := Encode(l)
		assert.Len(t, h, DefaultPrecision, "location %s", l)
	}
	assert.Equal(t, "zzzzzzzzzz", Encode(Location{Latitude: 90, Longitude: 180}))
	assert.Equal(t, "0000000000", Encode(Location{Latitude: -90, Longitude: -180}))
}

func TestBoundForHash(t *testing.T) {
	// 27 位 = 5 个完整字符 + 2 位，最后一个字符按 8 对齐
	b := boundForHash("wydm9q", 27)
	assert.Equal(t, Bound{StartHash: "wydm9h", EndHash: "wydm9s"}, b)

	// 整字符精度
	b = boundForHash("wydm9q", 30)
	assert.Equal(t, Bound{StartHash: "wydm9q", EndHash: "wydm9r"}, b)

	// 末字符溢出时用 "~" 作为上界
	b = boundForHash("wydm9z", 30)
	assert.Equal(t, Bound{StartHash: "wydm9z", EndHash: "wydm9~"}, b)

	b = boundForHash("wy", 15)
	assert.Equal(t, Bound{StartHash: "wy", EndHash: "wy~"}, b)
}

func TestBoundJoin(t *testing.T) {
	a := Bound{StartHash: "abc0", EndHash: "abc8"}
	b := Bound{StartHash: "abc8", EndHash: "abch"}
	c := Bound{StartHash: "abc2", EndHash: "abc4"}
	d := Bound{StartHash: "zz", EndHash: "zz~"}

	require.True(t, a.canJoinWith(b))
	assert.Equal(t, Bound{StartHash: "abc0", EndHash: "abch"}, a.joinWith(b))
	assert.Equal(t, Bound{StartHash: "abc0", EndHash: "abch"}, b.joinWith(a))

	require.True(t, a.canJoinWith(c))
	assert.Equal(t, a, a.joinWith(c))
	assert.Equal(t, a, c.joinWith(a))

	assert.False(t, a.canJoinWith(d))

	joined := joinBounds([]Bound{a, d, b, c})
	assert.ElementsMatch(t, []Bound{{StartHash: "abc0", EndHash: "abch"}, d}, joined)
}

func TestQueryBounds_Ordered(t *testing.T) {
	bounds := QueryBounds(Location{Latitude: 37.5665, Longitude: 126.9780}, 1000)
	require.NotEmpty(t, bounds)
	assert.LessOrEqual(t, len(bounds), 9)

	for i, b := range bounds {
		assert.Less(t, b.StartHash, b.EndHash)
		if i > 0 {
			assert.Less(t, bounds[i-1].StartHash, b.StartHash)
		}
	}
}

func TestQueryBounds_CoversCircle(t *testing.T) {
	centers := []Location{
		{Latitude: 37.5665, Longitude: 126.9780},
		{Latitude: 0, Longitude: 0},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 51.5074, Longitude: -0.1278},
		{Latitude: 64.1466, Longitude: -21.9426},
	}
	radii := []float64{10, 250, 1000, 5000, 40000}

	for _, center := range centers {
		for _, radius := range radii {
			bounds := QueryBounds(center, radius)
			require.NotEmpty(t, bounds)

			assert.True(t, coveredBy(bounds, Encode(center)), "center %s r=%v", center, radius)
			for bearing := 0.0; bearing < 360; bearing += 22.5 {
				for _, frac := range []float64{0.25, 0.5, 0.99} {
					p := offset(center, radius*frac, bearing)
					assert.True(t, coveredBy(bounds, Encode(p)),
						"point %s (bearing %v, %v of r=%v) around %s not covered", p, bearing, frac, radius, center)
				}
			}
		}
	}
}

func TestQueryBounds_HugeRadiusCoversEverything(t *testing.T) {
	bounds := QueryBounds(Location{Latitude: 10, Longitude: 10}, 3e7)
	assert.Equal(t, []Bound{FullRange}, bounds)
	for _, l := range []Location{{-80, -170}, {80, 170}, {0, 0}, {-45, 90}} {
		assert.True(t, coveredBy(bounds, Encode(l)), "location %s", l)
	}
}

func TestGeoHashIndex_Coverage(t *testing.T) {
	center := Location{Latitude: 35.6762, Longitude: 139.6503}
	assert.Equal(t, QueryBounds(center, 500), GeoHashIndex{}.Coverage(center, 500))
}
