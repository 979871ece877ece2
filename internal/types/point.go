package types

// Coordinate bounds in decimal degrees (WGS84).
const (
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
)

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// InRange reports whether the coordinate lies inside valid WGS84 bounds.
func (c Coords) InRange() bool {
	return c.Longitude >= MinLongitude && c.Longitude <= MaxLongitude &&
		c.Latitude >= MinLatitude && c.Latitude <= MaxLatitude
}

// Point is a named location of interest. Points are immutable once collected;
// the name is the row key in the result table and must be unique within a run.
type Point struct {
	Name        string `json:"name"`
	Coordinates Coords `json:"coordinates"`
}

func NewPoint(name string, longitude, latitude float64) Point {
	return Point{
		Name:        name,
		Coordinates: NewCoords(latitude, longitude),
	}
}
