package core

// Swipe turns a pointer drag into a directional action.
// The zero value is ready to use.
type Swipe struct {
	startX, startY int
	active         bool
}

// Begin records the gesture start position.
func (s *Swipe) Begin(x, y int) {
	s.startX = x
	s.startY = y
	s.active = true
}

// Cancel forgets any gesture in progress.
func (s *Swipe) Cancel() {
	s.active = false
}

// Active reports whether a gesture start has been recorded.
func (s *Swipe) Active() bool {
	return s.active
}

// Move resolves the gesture against a later sample.
// The axis with the larger absolute displacement wins and its sign picks
// the direction; ties go to the vertical axis. A resolved gesture is cleared,
// so one drag yields at most one action. Zero displacement keeps the
// gesture open and returns ActionNone.
func (s *Swipe) Move(x, y int) Action {
	if !s.active {
		return ActionNone
	}

	dx := x - s.startX
	dy := y - s.startY
	if dx == 0 && dy == 0 {
		return ActionNone
	}

	s.active = false
	return SwipeDirection(dx, dy)
}

// SwipeDirection maps a displacement to a direction using dominant-axis rules.
// Screen coordinates grow downward, so a positive dy is a downward swipe.
func SwipeDirection(dx, dy int) Action {
	if dx == 0 && dy == 0 {
		return ActionNone
	}
	if Abs(dx) > Abs(dy) {
		if dx < 0 {
			return ActionLeft
		}
		return ActionRight
	}
	if dy < 0 {
		return ActionUp
	}
	return ActionDown
}
