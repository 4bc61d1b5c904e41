package core

// GridCoord addresses a tile on the fixed board grid
type GridCoord struct {
	X, Y int
}

// GridToWorld converts a grid coordinate to the tile center in world space
// pitch is the tile size plus inter-tile overlap
func GridToWorld(c GridCoord, pitch Vec2) Vec2 {
	return Vec2{float64(c.X) * pitch.X, float64(c.Y) * pitch.Y}
}

// WorldToGrid converts a world point to the grid coordinate whose tile
// contains it, rounding toward the nearest tile center
func WorldToGrid(p Vec2, pitch Vec2) GridCoord {
	return GridCoord{
		X: roundedCell(p.X, pitch.X),
		Y: roundedCell(p.Y, pitch.Y),
	}
}

func roundedCell(v, pitch float64) int {
	sign := 1.0
	if v < 0 {
		sign = -1.0
	}
	return int((v + sign*pitch/2.0) / pitch)
}
