package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionJump, "Jump"},
		{ActionSlide, "Slide"},
		{ActionBoostDouble, "Double"},
		{ActionBoostShield, "Shield"},
		{ActionBoostMagnet, "Magnet"},
		{ActionPause, "Pause"},
		{ActionRestart, "Restart"},
		{ActionLeaderboard, "Leaderboard"},
		{ActionQuit, "Quit"},
		{ActionQuit + 1, "Unknown"},
	}

	for i, tc := range tests {
		if i < len(tests)-1 && int(tc.action) != i {
			t.Errorf("%s = %d, expected %d", tc.expected, tc.action, i)
		}
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionNone)
	f.Set(ActionJump)
	f.Set(ActionLeft)

	got := f.Actions()
	want := []Action{ActionLeft, ActionJump, ActionLeft}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
	if !f.Has(ActionJump) || f.Has(ActionQuit) {
		t.Error("Has() disagrees with recorded actions")
	}

	f.Clear()
	if len(f.Actions()) != 0 || f.Has(ActionLeft) {
		t.Error("Clear() left actions behind")
	}
}
