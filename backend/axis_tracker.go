package backend

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

type axisKey struct {
	id   ebiten.GamepadID
	axis ebiten.StandardGamepadAxis
}

type axisSample struct {
	prev, cur float64
	frame     uint64
}

// AxisTracker turns absolute stick positions into per-frame movement. Each
// axis is sampled at most once per frame, so any number of actions reading the
// same axis see the same movement, and an axis that was not read for a while
// reports everything it moved since it was last read.
type AxisTracker struct {
	read     func(ebiten.GamepadID, ebiten.StandardGamepadAxis) float64
	deadzone float64
	frame    uint64
	samples  map[axisKey]*axisSample
}

func NewAxisTracker(read func(ebiten.GamepadID, ebiten.StandardGamepadAxis) float64, deadzone float64) *AxisTracker {
	return &AxisTracker{
		read:     read,
		deadzone: math.Abs(deadzone),
		frame:    1,
		samples:  map[axisKey]*axisSample{},
	}
}

// Advance starts a new frame.
func (t *AxisTracker) Advance() {
	t.frame++
}

// Movement returns how far the axis moved since it was last sampled.
func (t *AxisTracker) Movement(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	k := axisKey{id, axis}
	s, ok := t.samples[k]
	if !ok {
		s = &axisSample{}
		t.samples[k] = s
	}
	if s.frame != t.frame {
		s.prev = s.cur
		s.cur = t.applyDeadzone(t.read(id, axis))
		s.frame = t.frame
	}
	return s.cur - s.prev
}

// Forget drops the samples of a disconnected gamepad so a reconnect starts
// from rest.
func (t *AxisTracker) Forget(id ebiten.GamepadID) {
	for k := range t.samples {
		if k.id == id {
			delete(t.samples, k)
		}
	}
}

// Reset drops every sample. The next read of each axis reports its whole
// position, which is what freshly built axis actions starting at 0 need.
func (t *AxisTracker) Reset() {
	clear(t.samples)
}

func (t *AxisTracker) applyDeadzone(v float64) float64 {
	if math.Abs(v) <= t.deadzone {
		return 0
	}
	return v
}
