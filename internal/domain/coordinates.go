package domain

import "fmt"

// Immutable geographic coordinate in (latitude, longitude) order.
// External routing and geocoding APIs use (longitude, latitude); conversions
// happen only in the adapters.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Validate reports whether the coordinate lies within WGS84 bounds.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinate) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// CoordinateFromLonLat builds a Coordinate from a GeoJSON-style [lon, lat] pair.
func CoordinateFromLonLat(pair []float64) (Coordinate, error) {
	if len(pair) < 2 {
		return Coordinate{}, fmt.Errorf("invalid position: want [lon, lat], got %d values", len(pair))
	}

	c := Coordinate{Lat: pair[1], Lon: pair[0]}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}
