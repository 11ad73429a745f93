package viewer

import (
	"glbview/core"
)

// Input is the per-frame snapshot of pointer and keyboard state. It is fed
// by callbacks registered on the render window, so events never reach the
// viewer through process-global state. All writes happen on the main thread
// (GLFW delivers callbacks during PollEvents), so plain fields suffice.
type Input struct {
	CursorX float64
	CursorY float64

	clicks  int // left-button presses since the last frame
	scrollY float64

	buttonDown map[int]bool
	keyWasDown map[int]bool

	window *core.Window
}

func NewInput() *Input {
	return &Input{
		buttonDown: make(map[int]bool),
		keyWasDown: make(map[int]bool),
	}
}

// Attach registers this Input's callbacks on the window. Pointer moves are
// plain coordinate writes consumed on the next frame tick; clicks are
// counted so a press between two frames is never lost.
func (in *Input) Attach(w *core.Window) {
	in.window = w
	w.SetCursorPosCallback(func(x, y float64) {
		in.CursorX = x
		in.CursorY = y
	})
	w.SetMouseButtonCallback(func(button int, pressed bool) {
		in.buttonDown[button] = pressed
		if button == core.MouseButtonLeft && pressed {
			in.clicks++
		}
	})
	w.SetScrollCallback(func(xoff, yoff float64) {
		in.scrollY += yoff
	})
}

// Clicked reports whether at least one left click arrived since the last
// call, consuming all pending clicks.
func (in *Input) Clicked() bool {
	n := in.clicks
	in.clicks = 0
	return n > 0
}

// ScrollDelta returns and resets the accumulated vertical scroll.
func (in *Input) ScrollDelta() float64 {
	d := in.scrollY
	in.scrollY = 0
	return d
}

func (in *Input) IsButtonDown(button int) bool {
	return in.buttonDown[button]
}

// KeyPressed reports a key edge: true only on the frame the key went down.
func (in *Input) KeyPressed(key int) bool {
	if in.window == nil {
		return false
	}
	down := in.window.IsKeyPressed(key)
	was := in.keyWasDown[key]
	in.keyWasDown[key] = down
	return down && !was
}
