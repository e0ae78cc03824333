// Package input holds the per-frame keyboard and mouse state.
// It is independent of the windowing backend; the window package fills it.
package input

// Key identifies a keyboard key.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyLeftCtrl
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF12

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	keyCount
)

// State is the input snapshot for one frame.
type State struct {
	down    [keyCount]bool
	pressed [keyCount]bool

	// Pointer movement since the previous frame, in pixels.
	MouseDX float32
	MouseDY float32

	// Quit is set when the window was asked to close.
	Quit bool

	// Resized is set when the drawable size changed this frame.
	Resized bool
	Width   int
	Height  int
}

// BeginFrame clears the edge-triggered state before polling a new frame.
// Held keys stay down.
func (s *State) BeginFrame() {
	s.pressed = [keyCount]bool{}
	s.MouseDX = 0
	s.MouseDY = 0
	s.Resized = false
}

// SetKey records a key transition. A key going from up to down is also
// reported by Pressed until the next BeginFrame.
func (s *State) SetKey(k Key, down bool) {
	if k <= KeyUnknown || k >= keyCount {
		return
	}
	if down && !s.down[k] {
		s.pressed[k] = true
	}
	s.down[k] = down
}

// AddMouseDelta accumulates relative pointer movement.
func (s *State) AddMouseDelta(dx, dy float32) {
	s.MouseDX += dx
	s.MouseDY += dy
}

// SetSize records a new drawable size.
func (s *State) SetSize(width, height int) {
	if width == s.Width && height == s.Height {
		return
	}
	s.Width = width
	s.Height = height
	s.Resized = true
}

// Down reports whether k is held.
func (s *State) Down(k Key) bool {
	if k <= KeyUnknown || k >= keyCount {
		return false
	}
	return s.down[k]
}

// Pressed reports whether k went down this frame.
func (s *State) Pressed(k Key) bool {
	if k <= KeyUnknown || k >= keyCount {
		return false
	}
	return s.pressed[k]
}

// Axis returns -1 when only neg is held, +1 when only pos is held and 0
// otherwise.
func (s *State) Axis(neg, pos Key) float32 {
	var v float32
	if s.Down(neg) {
		v--
	}
	if s.Down(pos) {
		v++
	}
	return v
}
