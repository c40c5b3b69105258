package core

import "testing"

func TestSwipeDirection(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   int
		expected Action
	}{
		{"right", 5, 1, ActionRight},
		{"left", -5, 2, ActionLeft},
		{"down", 1, 4, ActionDown},
		{"up", -2, -4, ActionUp},
		{"tie goes vertical", 3, -3, ActionUp},
		{"tie downward", -3, 3, ActionDown},
		{"no displacement", 0, 0, ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SwipeDirection(tc.dx, tc.dy); got != tc.expected {
				t.Errorf("SwipeDirection(%d, %d) = %v, expected %v", tc.dx, tc.dy, got, tc.expected)
			}
		})
	}
}

func TestSwipeGesture(t *testing.T) {
	var s Swipe

	// Move without Begin does nothing
	if got := s.Move(10, 10); got != ActionNone {
		t.Errorf("Move without Begin = %v, expected None", got)
	}

	s.Begin(10, 10)
	if !s.Active() {
		t.Fatal("Begin should activate the gesture")
	}

	// Same cell keeps the gesture open
	if got := s.Move(10, 10); got != ActionNone {
		t.Errorf("Move at start = %v, expected None", got)
	}
	if !s.Active() {
		t.Error("zero displacement should keep the gesture active")
	}

	if got := s.Move(4, 11); got != ActionLeft {
		t.Errorf("Move(4, 11) = %v, expected Left", got)
	}

	// One drag yields one action
	if s.Active() {
		t.Error("gesture should be cleared after resolving")
	}
	if got := s.Move(0, 0); got != ActionNone {
		t.Errorf("second Move = %v, expected None", got)
	}
}

func TestSwipeCancel(t *testing.T) {
	var s Swipe
	s.Begin(0, 0)
	s.Cancel()
	if got := s.Move(0, 5); got != ActionNone {
		t.Errorf("Move after Cancel = %v, expected None", got)
	}
}
