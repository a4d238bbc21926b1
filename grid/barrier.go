package grid

import (
	"github.com/Tarliton/collision2d"
	"github.com/pkg/errors"
)

// RasterOptions describes how world units map onto grid cells.
type RasterOptions struct {
	Width      int
	Height     int
	TileWidth  float64
	TileHeight float64
	// Radius of the probe circle placed at each cell centre.
	Radius float64
}

// FromPolygons marks a cell as BARRIER when a circle of opts.Radius at the
// cell centre touches any of the polygons. Each polygon is a flat
// [x0, y0, x1, y1, ...] list in world units and must be convex.
func FromPolygons(opts RasterOptions, polygons [][]float64) (*Grid, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.TileWidth <= 0 || opts.TileHeight <= 0 {
		return nil, errors.Wrapf(ErrDimensions, "%dx%d tiles of %gx%g", opts.Width, opts.Height, opts.TileWidth, opts.TileHeight)
	}

	barrierList := make([]collision2d.Polygon, 0, len(polygons))
	for i, pointList := range polygons {
		if len(pointList) < 6 || len(pointList)%2 != 0 {
			return nil, errors.Errorf("polygon %d: need at least 3 x,y pairs, got %d values", i, len(pointList))
		}
		pos := collision2d.NewVector(0.0, 0.0)
		offset := collision2d.NewVector(0.0, 0.0)
		barrierList = append(barrierList, collision2d.NewPolygon(pos, offset, 0.0, pointList))
	}

	collideMap := make([]int, opts.Width*opts.Height)
	for k := range collideMap {
		x := (float64(k%opts.Width) + 0.5) * opts.TileWidth
		y := (float64(k/opts.Width) + 0.5) * opts.TileHeight
		probe := collision2d.Circle{Pos: collision2d.NewVector(x, y), R: opts.Radius}

		for _, barrier := range barrierList {
			if hit, _ := collision2d.TestPolygonCircle(barrier, probe); hit {
				collideMap[k] = BARRIER
				break
			}
		}
	}

	return FromArray(collideMap, opts.Width, opts.Height)
}
