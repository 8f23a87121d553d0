package viewport

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
)

// Event is one discrete input delivered by the input source.
type Event interface {
	isEvent()
}

// KeyPress carries a lowercase key name: "q", "r", "space", "escape", ...
type KeyPress struct {
	Key string
}

// MouseHeld is delivered once per frame for every button that is down.
// U and V are the cursor position normalised to [0,1].
type MouseHeld struct {
	Button Button
	U, V   float64
}

// MousePress is delivered once when a button goes down.
type MousePress struct {
	Button Button
	U, V   float64
}

func (KeyPress) isEvent()   {}
func (MouseHeld) isEvent()  {}
func (MousePress) isEvent() {}

// Effect is what the caller has to do outside the viewport after an event.
type Effect int

const (
	None Effect = iota
	Quit
	PrintOffset
)

func (e Effect) String() string {
	switch e {
	case Quit:
		return "quit"
	case PrintOffset:
		return "print-offset"
	default:
		return "none"
	}
}

// Apply returns the viewport that results from e, leaving v untouched.
func Apply(v Viewport, e Event) (Viewport, Effect) {
	switch t := e.(type) {
	case KeyPress:
		switch t.Key {
		case "q", "escape":
			return v, Quit
		case "r":
			v.Reset()
		case "space":
			if v.opts.Controls == Explore {
				v.ToggleAutoZoom()
			}
		}
	case MousePress:
		switch t.Button {
		case ButtonRight:
			v.Reset()
		case ButtonMiddle:
			return v, PrintOffset
		}
	case MouseHeld:
		if t.Button != ButtonLeft {
			break
		}
		if v.opts.Controls == PanZoom {
			v.Zoom(v.opts.ZoomFactor)
		}
		v.Pan(t.U, t.V)
	}
	return v, None
}
