package core

import "testing"

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionRotate)

	c := f.Clone()
	f.Clear()
	f.Set(ActionPause)

	if !c.Has(ActionLeft) || !c.Has(ActionRotate) {
		t.Error("clone lost actions when the original was cleared")
	}
	if c.Has(ActionPause) {
		t.Error("clone picked up an action set on the original")
	}
}

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    Action
	}{
		{"none", nil, ActionNone},
		{"left", []Action{ActionLeft}, ActionLeft},
		{"up wins over right", []Action{ActionRight, ActionUp}, ActionUp},
		{"non-directional", []Action{ActionRotate}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tt.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tt.want {
				t.Errorf("Direction() = %v, want %v", got, tt.want)
			}
		})
	}
}
