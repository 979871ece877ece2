// Package points decodes an uploaded GeoJSON feature collection plus a
// parallel list of user-supplied names into the ordered point list the
// bioclim pipeline runs over. All user-input validation happens here, before
// any external fetch is attempted.
package points

import (
	"errors"
	"fmt"
	"strings"

	"easy-bioclim/internal/types"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ErrValidation is the base error for all user-input validation failures.
// Specific failures wrap it with detail, so callers can map the whole class
// to a 400 with errors.Is.
var ErrValidation = errors.New("invalid point input")

// ParseNames splits a comma-separated name list into trimmed labels,
// preserving order. An empty input yields no names.
func ParseNames(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = strings.TrimSpace(p)
	}
	return names
}

// Collect decodes a GeoJSON feature collection of point geometries and zips
// it with names into an ordered point list. The i-th name labels the i-th
// feature. Returns a wrapped ErrValidation when the input violates any
// contract: undecodable GeoJSON, non-point geometry, name/geometry count
// mismatch, empty or duplicate name, or an out-of-range coordinate.
func Collect(data []byte, names []string) ([]types.Point, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: not a GeoJSON feature collection: %v", ErrValidation, err)
	}

	if len(fc.Features) == 0 {
		return nil, fmt.Errorf("%w: feature collection contains no features", ErrValidation)
	}

	if len(names) != len(fc.Features) {
		return nil, fmt.Errorf("%w: %d names for %d point geometries",
			ErrValidation, len(names), len(fc.Features))
	}

	seen := make(map[string]struct{}, len(names))
	pts := make([]types.Point, 0, len(fc.Features))
	for i, feature := range fc.Features {
		if feature.Geometry == nil {
			return nil, fmt.Errorf("%w: feature %d has no geometry", ErrValidation, i)
		}
		geom, ok := feature.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("%w: feature %d has geometry %q, want Point",
				ErrValidation, i, feature.Geometry.GeoJSONType())
		}

		name := names[i]
		if name == "" {
			return nil, fmt.Errorf("%w: name %d is empty", ErrValidation, i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrValidation, name)
		}
		seen[name] = struct{}{}

		point := types.NewPoint(name, geom.Lon(), geom.Lat())
		if !point.Coordinates.InRange() {
			return nil, fmt.Errorf("%w: point %q coordinates (%f, %f) out of range",
				ErrValidation, name, geom.Lon(), geom.Lat())
		}

		pts = append(pts, point)
	}

	return pts, nil
}
