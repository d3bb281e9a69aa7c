package input

import (
	"slices"
	"strings"
)

// ControlSet is an ordered set of unique controls. It is immutable once built.
type ControlSet struct {
	controls []Control
}

// NewControlSet sorts and deduplicates controls.
func NewControlSet(controls ...Control) ControlSet {
	if len(controls) == 0 {
		return ControlSet{}
	}
	cs := slices.Clone(controls)
	slices.SortFunc(cs, Compare)
	cs = slices.Compact(cs)
	return ControlSet{controls: cs}
}

func (s ControlSet) Len() int {
	return len(s.controls)
}

// Controls returns a copy of the members in order.
func (s ControlSet) Controls() []Control {
	return slices.Clone(s.controls)
}

func (s ControlSet) Contains(c Control) bool {
	_, found := slices.BinarySearchFunc(s.controls, c, Compare)
	return found
}

// Union returns a set holding the members of both sets.
func (s ControlSet) Union(o ControlSet) ControlSet {
	return NewControlSet(append(slices.Clone(s.controls), o.controls...)...)
}

func (s ControlSet) String() string {
	parts := make([]string, 0, len(s.controls))
	for _, c := range s.controls {
		parts = append(parts, c.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
