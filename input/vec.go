package input

import (
	"fmt"
	"math"
)

// Epsilon is the relative tolerance used when comparing vector state.
const Epsilon = 1e-6

// Vec2 is a 2D value reported by vector and directional actions.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Equals compares componentwise, scaling the tolerance with the magnitude of
// the larger operand so large cursor coordinates are not over-sensitive.
func (v Vec2) Equals(o Vec2) bool {
	return almostEqual(v.X, o.X) && almostEqual(v.Y, o.Y)
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
