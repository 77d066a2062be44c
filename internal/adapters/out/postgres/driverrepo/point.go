package driverrepo

import (
	"database/sql/driver"
	"fmt"
	"strconv"

	"tms/internal/core/domain/model/kernel"
)

// Point maps the PostgreSQL point type in its "(x,y)" text form, with x as
// longitude and y as latitude.
type Point struct {
	X float64
	Y float64
}

func (p Point) Value() (driver.Value, error) {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + "," + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")", nil
}

func (p *Point) Scan(src any) error {
	var text string
	switch v := src.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Point", src)
	}

	if _, err := fmt.Sscanf(text, "(%g,%g)", &p.X, &p.Y); err != nil {
		return fmt.Errorf("parse point %q: %w", text, err)
	}
	return nil
}

func pointFromGeo(g *kernel.GeoPoint) *Point {
	if g == nil {
		return nil
	}
	return &Point{X: g.Longitude(), Y: g.Latitude()}
}

func (p *Point) toGeo() (*kernel.GeoPoint, error) {
	if p == nil {
		return nil, nil //nolint:nilnil // no reported position
	}
	g, err := kernel.NewGeoPoint(p.Y, p.X)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
