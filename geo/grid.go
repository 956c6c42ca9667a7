package geo

import "strconv"

// Grid is a derived view over a Region that maps between geographic
// coordinates and integer (column, row) cell addresses. Column zero,
// row zero is the lower left corner of the region's bounding box.
type Grid struct {
	region    *Region
	cellSize  int64
	lowerLeft Site
	columns   int
	rows      int
}

func newGrid(region *Region, cellSize int64) *Grid {
	g := &Grid{
		region:    region,
		cellSize:  cellSize,
		lowerLeft: region.LowerLeftCorner(),
	}

	upperRight := region.UpperRightCorner()
	g.columns = g.longitudeToColumn(upperRight.lon) + 1
	g.rows = g.latitudeToRow(upperRight.lat) + 1

	return g
}

func (g *Grid) Columns() int {
	return g.columns
}

func (g *Grid) Rows() int {
	return g.rows
}

// latitudeToRow rounds, never truncates: a site exactly on a cell
// boundary maps to the nearer cell.
func (g *Grid) latitudeToRow(lat int64) int {
	offset := lat - g.lowerLeft.lat
	if offset < 0 {
		offset = -offset
	}

	return int((offset + g.cellSize/2) / g.cellSize)
}

func (g *Grid) rowToLatitude(row int) int64 {
	return g.lowerLeft.lat + int64(row)*g.cellSize
}

func (g *Grid) longitudeToColumn(lon int64) int {
	offset := lon - g.lowerLeft.lon
	if offset < 0 {
		offset = -offset
	}

	return int((offset + g.cellSize/2) / g.cellSize)
}

func (g *Grid) columnToLongitude(column int) int64 {
	return g.lowerLeft.lon + int64(column)*g.cellSize
}

// PointAt maps a site to its grid cell. An explicit lookup on a site
// strictly outside the region polygon fails with ErrOutOfBounds.
func (g *Grid) PointAt(site Site) (GridPoint, error) {
	if !g.region.Contains(site) {
		return GridPoint{}, ErrOutOfBounds
	}

	return GridPoint{
		Column: g.longitudeToColumn(site.lon),
		Row:    g.latitudeToRow(site.lat),
		grid:   g,
	}, nil
}

// SiteAt resolves a grid cell back to the site at its lower left
// corner. Exact inverse of PointAt for sites on cell corners.
func (g *Grid) SiteAt(point GridPoint) Site {
	return scaledSite(g.columnToLongitude(point.Column), g.rowToLatitude(point.Row))
}

// Points enumerates every cell of [0, rows) x [0, columns) whose
// geographic location is contained by (or touches) the region
// polygon. Cells outside the polygon are silently skipped: the
// enumeration only produces valid cells, while explicit PointAt
// lookups keep failing loudly.
func (g *Grid) Points() []GridPoint {
	var points []GridPoint

	for row := 0; row < g.rows; row++ {
		for column := 0; column < g.columns; column++ {
			p := GridPoint{Column: column, Row: row, grid: g}

			if !g.region.Contains(g.SiteAt(p)) {
				continue
			}

			points = append(points, p)
		}
	}

	return points
}

// GridPoint is the integer (column, row) address of one cell of a
// specific grid. Two points are equal when they address the same cell
// of the same grid.
type GridPoint struct {
	Column int
	Row    int

	grid *Grid
}

// Site resolves the point back to its geographic location.
func (p GridPoint) Site() Site {
	return p.grid.SiteAt(p)
}

// Equal compares cell address and owning grid.
func (p GridPoint) Equal(other GridPoint) bool {
	return p.Column == other.Column && p.Row == other.Row && p.grid == other.grid
}

// Hash returns the cell's legacy numeric identity. The value is
// embedded in stored product keys, so the encoding must not change.
func (p GridPoint) Hash() int64 {
	return int64(p.Column)*1000000000 + int64(p.Row)
}

func (p GridPoint) String() string {
	return strconv.FormatInt(p.Hash(), 10)
}
