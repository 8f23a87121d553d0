package main

import (
	"github.com/joshvictor1024/mandelzoom/pkg/types"
	"github.com/joshvictor1024/mandelzoom/pkg/viewport"
	"github.com/veandco/go-sdl2/sdl"
)

// eventQueue collects viewport events from SDL between two frames.
// must be used from the thread that did INIT_VIDEO
type eventQueue struct {
	q      types.Queue[viewport.Event]
	w, h   int32
	closed bool
}

func newEventQueue(w, h int32) *eventQueue {
	return &eventQueue{w: w, h: h}
}

// poll drains the SDL queue and samples the held mouse buttons.
func (eq *eventQueue) poll() {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch t := e.(type) {
		case *sdl.QuitEvent:
			eq.closed = true
		case *sdl.KeyboardEvent:
			if t.Type != sdl.KEYDOWN || t.Repeat != 0 {
				continue
			}
			if key, ok := keyName(t.Keysym.Sym); ok {
				eq.q.Push(viewport.KeyPress{Key: key})
			}
		case *sdl.MouseButtonEvent:
			if t.Type != sdl.MOUSEBUTTONDOWN {
				continue
			}
			if b, ok := buttonOf(t.Button); ok {
				u, v := eq.normalize(t.X, t.Y)
				eq.q.Push(viewport.MousePress{Button: b, U: u, V: v})
			}
		}
	}

	x, y, state := sdl.GetMouseState()
	if state&sdl.Button(sdl.BUTTON_LEFT) != 0 {
		u, v := eq.normalize(x, y)
		eq.q.Push(viewport.MouseHeld{Button: viewport.ButtonLeft, U: u, V: v})
	}
}

// drain hands every queued event to fn in arrival order
func (eq *eventQueue) drain(fn func(viewport.Event)) {
	eq.q.Drain(fn)
}

// window row 0 is buffer row 0, so v grows downwards like the buffer
func (eq *eventQueue) normalize(x, y int32) (float64, float64) {
	return float64(x) / float64(eq.w), float64(y) / float64(eq.h)
}

func keyName(sym sdl.Keycode) (string, bool) {
	switch sym {
	case sdl.K_q:
		return "q", true
	case sdl.K_ESCAPE:
		return "escape", true
	case sdl.K_r:
		return "r", true
	case sdl.K_SPACE:
		return "space", true
	}
	return "", false
}

func buttonOf(b uint8) (viewport.Button, bool) {
	switch b {
	case sdl.BUTTON_LEFT:
		return viewport.ButtonLeft, true
	case sdl.BUTTON_MIDDLE:
		return viewport.ButtonMiddle, true
	case sdl.BUTTON_RIGHT:
		return viewport.ButtonRight, true
	}
	return 0, false
}
