package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionRotate)
	f.Set(ActionLeft)

	got := f.Actions()
	want := []Action{ActionLeft, ActionRotate, ActionLeft}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if !f.Has(ActionRotate) {
		t.Error("Has(ActionRotate) should be true")
	}
	if f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be false")
	}
}

func TestInputFrameCloneAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSoftDrop)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionSoftDrop) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionSoftDrop) {
		t.Error("Clone should be independent of the original frame")
	}
}

func TestActionString(t *testing.T) {
	if ActionSoftDrop.String() != "SoftDrop" {
		t.Errorf("ActionSoftDrop.String() = %q", ActionSoftDrop.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
