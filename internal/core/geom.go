// Package core provides fundamental types and utilities for the maze simulation.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep simulation logic pure and testable.
package core

import "math"

// CellSize is the edge length of one grid cell in world units (pixels).
const CellSize = 32

// Point is an integer world position in pixels.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CellRect returns the full CellSize x CellSize footprint anchored at (x, y).
func CellRect(x, y int) Rect {
	return Rect{X: x, Y: y, W: CellSize, H: CellSize}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// GridIndex converts a pixel coordinate to its grid index, rounding to the
// nearest cell.
func GridIndex(v int) int {
	return int(math.Round(float64(v) / CellSize))
}

// CellOf returns the grid cell of a pixel position.
func CellOf(x, y int) Point {
	return Point{X: GridIndex(x), Y: GridIndex(y)}
}

// Snap moves a pixel coordinate onto the nearest cell boundary.
func Snap(v int) int {
	return GridIndex(v) * CellSize
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
