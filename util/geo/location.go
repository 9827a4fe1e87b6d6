package geo

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidLocation = errors.New("invalid location")

// Location 经纬度坐标（十进制度）
type Location struct {
	Latitude  float64 `json:"lat" bson:"lat"`
	Longitude float64 `json:"lng" bson:"lng"`
}

func NewLocation(lat, lng float64) Location {
	return Location{Latitude: lat, Longitude: lng}
}

// Validate 检查纬度在 [-90,90]、经度在 [-180,180] 之内
func (l Location) Validate() error {
	if math.IsNaN(l.Latitude) || l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidLocation, l.Latitude)
	}
	if math.IsNaN(l.Longitude) || l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidLocation, l.Longitude)
	}
	return nil
}

func (l Location) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", l.Latitude, l.Longitude)
}
