package input

import "fmt"

// Direction names one of the control sets of a DirectionalAction.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight

	numDirections
)

var directionNames = [numDirections]string{"up", "down", "left", "right", "up_left", "up_right", "down_left", "down_right"}

func (d Direction) String() string {
	if d < numDirections {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection accepts the names produced by Direction.String.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("%w: direction %q", ErrUnknownName, s)
}

// Counts holds the pressed count of each direction's control set.
type Counts [numDirections]int

// Compose turns per-direction pressed counts into a vector with
// x = left - right and y = up - down. Diagonals count towards both of their
// sides. With normalize set each side contributes at most 1, so both
// components stay within [-1, 1].
func Compose(c Counts, normalize bool) Vec2 {
	up := c[Up] + c[UpLeft] + c[UpRight]
	down := c[Down] + c[DownLeft] + c[DownRight]
	left := c[Left] + c[UpLeft] + c[DownLeft]
	right := c[Right] + c[UpRight] + c[DownRight]
	if normalize {
		up, down, left, right = clamp01(up), clamp01(down), clamp01(left), clamp01(right)
	}
	return Vec2{X: float64(left - right), Y: float64(up - down)}
}

func clamp01(n int) int {
	return min(n, 1)
}

// DirectionalAction composes digital direction buttons into a 2D vector, the
// usual "WASD as a stick" mapping.
type DirectionalAction struct {
	directions [numDirections]ControlSet
	normalize  bool
	last       Vec2
	callback   delegate[Vec2, Vec2]
}

func NewDirectionalAction(up, down, left, right ControlSet, normalize bool) *DirectionalAction {
	a := &DirectionalAction{normalize: normalize}
	a.directions[Up] = up
	a.directions[Down] = down
	a.directions[Left] = left
	a.directions[Right] = right
	return a
}

// WithDiagonal binds a control set to one of the diagonal directions.
// Cardinal directions are fixed at construction and are left untouched.
func (a *DirectionalAction) WithDiagonal(d Direction, controls ControlSet) *DirectionalAction {
	switch d {
	case UpLeft, UpRight, DownLeft, DownRight:
		a.directions[d] = controls
	}
	return a
}

func (a *DirectionalAction) Kind() Kind { return KindDirectional }

func (a *DirectionalAction) Normalize() bool { return a.normalize }

// Controls returns the set bound to d.
func (a *DirectionalAction) Controls(d Direction) ControlSet {
	if d >= numDirections {
		return ControlSet{}
	}
	return a.directions[d]
}

func (a *DirectionalAction) State() Vec2 { return a.last }

func (a *DirectionalAction) SetCallback(fn VectorFunc) *DirectionalAction {
	a.callback.set(fn)
	return a
}

func (a *DirectionalAction) AddCallback(fn VectorFunc) *DirectionalAction {
	a.callback.add(fn)
	return a
}

func (a *DirectionalAction) ClearCallbacks() *DirectionalAction {
	a.callback.clear()
	return a
}

func (a *DirectionalAction) pump(b Backend, name string) (Event, bool) {
	var counts Counts
	for d, set := range a.directions {
		counts[d] = IsSetPressed(b, set)
	}
	return dispatchVector(&a.last, &a.callback, name, KindDirectional, Compose(counts, a.normalize))
}
