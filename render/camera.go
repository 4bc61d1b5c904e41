package render

import (
	"github.com/lixenwraith/card-grove/core"
)

// Terminal cells are roughly twice as tall as wide, so the horizontal
// scale doubles the vertical one to keep world squares square on screen
const (
	cellsPerUnitX = 8.0
	cellsPerUnitY = 4.0
)

// Camera maps between world space (y up, origin at board center) and
// screen space (row down, origin at top-left)
type Camera struct {
	centerCol int
	centerRow int
}

// NewCamera centers the world origin on a screen of the given size
func NewCamera(width, height int) Camera {
	return Camera{
		centerCol: width / 2,
		centerRow: height / 2,
	}
}

// Resize re-centers the camera after a terminal resize
func (c *Camera) Resize(width, height int) {
	c.centerCol = width / 2
	c.centerRow = height / 2
}

// WorldToScreen projects a world point to a screen cell
func (c Camera) WorldToScreen(p core.Vec2) (col, row int) {
	col = c.centerCol + int(roundAway(p.X*cellsPerUnitX))
	row = c.centerRow - int(roundAway(p.Y*cellsPerUnitY))
	return col, row
}

// ScreenToWorld projects a screen cell back to its world point
func (c Camera) ScreenToWorld(col, row int) core.Vec2 {
	return core.Vec2{
		X: float64(col-c.centerCol) / cellsPerUnitX,
		Y: -float64(row-c.centerRow) / cellsPerUnitY,
	}
}

func roundAway(v float64) float64 {
	if v < 0 {
		return v - 0.5
	}
	return v + 0.5
}
