package geo

import (
	"math"
	"sort"
	"strings"

	"github.com/mmcloughlin/geohash"
)

const (
	base32Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"
	bitsPerChar    = 5
	// mmcloughlin/geohash 以 uint64 编码，最多 12 个字符
	maxPrecision     = 12
	maxBitsPrecision = maxPrecision * bitsPerChar

	// DefaultPrecision 入库时 geo_hash 字段的长度
	DefaultPrecision = 10

	edgeMargin = 1e-9
)

// FullRange 覆盖全部 geohash 的区间
var FullRange = Bound{StartHash: "0", EndHash: "~"}

// Bound 一段连续的 geohash 区间，查询时 StartHash <= geo_hash <= EndHash
type Bound struct {
	StartHash string `json:"start_hash"`
	EndHash   string `json:"end_hash"`
}

func (b Bound) Contains(hash string) bool {
	return hash >= b.StartHash && hash <= b.EndHash
}

// precededBy other 位于 b 之前且与 b 相接或重叠
func (b Bound) precededBy(other Bound) bool {
	return other.EndHash >= b.StartHash &&
		other.StartHash < b.StartHash &&
		other.EndHash < b.EndHash
}

// within b 被 other 完全包含
func (b Bound) within(other Bound) bool {
	return other.StartHash <= b.StartHash && other.EndHash >= b.EndHash
}

func (b Bound) canJoinWith(other Bound) bool {
	return b.precededBy(other) || other.precededBy(b) || b.within(other) || other.within(b)
}

func (b Bound) joinWith(other Bound) Bound {
	switch {
	case other.precededBy(b):
		return Bound{StartHash: b.StartHash, EndHash: other.EndHash}
	case b.precededBy(other):
		return Bound{StartHash: other.StartHash, EndHash: b.EndHash}
	case b.within(other):
		return other
	default:
		return b
	}
}

// GeoHashIndex 基于 geohash 的覆盖计算，无状态
type GeoHashIndex struct{}

func (GeoHashIndex) Coverage(center Location, radius float64) []Bound {
	return QueryBounds(center, radius)
}

// Encode 以 DefaultPrecision 编码
func Encode(l Location) string {
	return EncodeWithPrecision(l, DefaultPrecision)
}

func EncodeWithPrecision(l Location, precision uint) string {
	// 上边界 90/180 会让整数编码溢出
	lat := math.Max(-90, math.Min(l.Latitude, 90-edgeMargin))
	lng := math.Max(-180, math.Min(l.Longitude, 180-edgeMargin))
	return geohash.EncodeWithPrecision(lat, lng, precision)
}

// QueryBounds 计算覆盖以 center 为圆心、radius 米为半径的圆的 geohash 区间集合。
// 取圆心及外接矩形八个方向共 9 个采样点，按能容纳半径的位精度截断后合并相邻或重叠的区间。
// 区间只会比圆大，调用方需要再按真实距离过滤。
func QueryBounds(center Location, radius float64) []Bound {
	queryBits := max(1, bitsForBoundingBox(center, radius))
	precision := uint(math.Ceil(float64(queryBits) / bitsPerChar))

	latDegrees := distanceToLatitudeDegrees(radius)
	latNorth := math.Min(90, center.Latitude+latDegrees)
	latSouth := math.Max(-90, center.Latitude-latDegrees)
	lngDelta := math.Max(
		distanceToLongitudeDegrees(radius, latNorth),
		distanceToLongitudeDegrees(radius, latSouth),
	)
	// 经度跨度达到半圈时单个经度位已无法覆盖，直接扫全表
	if lngDelta >= 180 {
		return []Bound{FullRange}
	}
	lngWest := wrapLongitude(center.Longitude - lngDelta)
	lngEast := wrapLongitude(center.Longitude + lngDelta)

	samples := []Location{
		{center.Latitude, center.Longitude},
		{center.Latitude, lngWest},
		{center.Latitude, lngEast},
		{latNorth, center.Longitude},
		{latNorth, lngWest},
		{latNorth, lngEast},
		{latSouth, center.Longitude},
		{latSouth, lngWest},
		{latSouth, lngEast},
	}

	bounds := make([]Bound, 0, len(samples))
	for _, s := range samples {
		b := boundForHash(EncodeWithPrecision(s, precision), queryBits)
		if !containsBound(bounds, b) {
			bounds = append(bounds, b)
		}
	}

	bounds = joinBounds(bounds)
	sort.Slice(bounds, func(i, j int) bool {
		return bounds[i].StartHash < bounds[j].StartHash
	})
	return bounds
}

// boundForHash 只保留 hash 的前 bits 位，返回该前缀对应的区间
func boundForHash(hash string, bits int) Bound {
	precision := int(math.Ceil(float64(bits) / bitsPerChar))
	if len(hash) < precision {
		return Bound{StartHash: hash, EndHash: hash + "~"}
	}

	hash = hash[:precision]
	base := hash[:len(hash)-1]
	lastValue := strings.IndexByte(base32Alphabet, hash[len(hash)-1])
	significantBits := bits - len(base)*bitsPerChar
	unusedBits := bitsPerChar - significantBits

	startValue := (lastValue >> unusedBits) << unusedBits
	endValue := startValue + (1 << unusedBits)

	b := Bound{StartHash: base + string(base32Alphabet[startValue])}
	if endValue > len(base32Alphabet)-1 {
		b.EndHash = base + "~"
	} else {
		b.EndHash = base + string(base32Alphabet[endValue])
	}
	return b
}

func joinBounds(bounds []Bound) []Bound {
	for {
		i, j, ok := findJoinable(bounds)
		if !ok {
			return bounds
		}
		merged := bounds[i].joinWith(bounds[j])
		next := make([]Bound, 0, len(bounds)-1)
		for k, b := range bounds {
			if k != i && k != j {
				next = append(next, b)
			}
		}
		bounds = append(next, merged)
	}
}

func findJoinable(bounds []Bound) (int, int, bool) {
	for i := range bounds {
		for j := range bounds {
			if i != j && bounds[i].canJoinWith(bounds[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

func containsBound(bounds []Bound, b Bound) bool {
	for _, existing := range bounds {
		if existing == b {
			return true
		}
	}
	return false
}

func bitsForBoundingBox(l Location, size float64) int {
	latDelta := distanceToLatitudeDegrees(size)
	latNorth := math.Min(90, l.Latitude+latDelta)
	latSouth := math.Max(-90, l.Latitude-latDelta)

	bitsLat := int(math.Floor(latitudeBitsForResolution(size))) * 2
	bitsLngNorth := int(math.Floor(longitudeBitsForResolution(size, latNorth)))*2 - 1
	bitsLngSouth := int(math.Floor(longitudeBitsForResolution(size, latSouth)))*2 - 1

	return min(bitsLat, bitsLngNorth, bitsLngSouth, maxBitsPrecision)
}

func latitudeBitsForResolution(resolution float64) float64 {
	return math.Min(math.Log2(earthMeridionalCircumference/2/resolution), maxBitsPrecision)
}

func longitudeBitsForResolution(resolution, latitude float64) float64 {
	degrees := distanceToLongitudeDegrees(resolution, latitude)
	if math.Abs(degrees) > 0 {
		return math.Max(1, math.Log2(360/degrees))
	}
	return 1
}
