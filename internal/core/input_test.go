package core

import (
	"math"
	"testing"
)

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionUp) {
		t.Error("Fresh frame should have no actions")
	}

	f.Set(ActionUp)
	f.Set(ActionPause)
	if !f.Has(ActionUp) || !f.Has(ActionPause) {
		t.Error("Set actions not reported by Has")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Has(ActionPause) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameSetOnNilMap(t *testing.T) {
	var f InputFrame // zero value, no map allocated

	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero-value frame should allocate and record")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)

	clone := f.Clone()
	clone.Set(ActionUp)

	if f.Has(ActionUp) {
		t.Error("Mutating the clone leaked into the original")
	}
	if !clone.Has(ActionRight) {
		t.Error("Clone lost an action from the original")
	}
}

func TestMovement(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected Vec2
	}{
		{"no input", nil, Vec2{}},
		{"right", []Action{ActionRight}, Vec2{X: 1}},
		{"up is negative y", []Action{ActionUp}, Vec2{Y: -1}},
		{"opposing cancel", []Action{ActionLeft, ActionRight}, Vec2{}},
		{"all four cancel", []Action{ActionUp, ActionDown, ActionLeft, ActionRight}, Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Movement(); got != tc.expected {
				t.Errorf("Movement() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestMovementDiagonalIsUnit(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionDown)

	m := f.Movement()
	if math.Abs(m.Len()-1) > 1e-12 {
		t.Errorf("Diagonal movement length = %v, expected 1", m.Len())
	}
	if m.X <= 0 || m.Y <= 0 {
		t.Errorf("Movement() = %v, expected positive x and y", m)
	}
}

func TestActionString(t *testing.T) {
	if got := ActionChoose2.String(); got != "Choose2" {
		t.Errorf("String() = %q, expected Choose2", got)
	}
	if got := Action(99).String(); got != "Unknown" {
		t.Errorf("String() = %q, expected Unknown", got)
	}
}
