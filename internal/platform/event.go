package platform

// EventKind is the closed set of events the manager distinguishes.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventButtonPress
	EventButtonRelease
	EventMotionNotify
	EventExpose
	EventMapRequest
	EventUnmap
	EventDestroy
	EventConfigureRequest
	EventPropertyNotify
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventButtonPress:
		return "ButtonPress"
	case EventButtonRelease:
		return "ButtonRelease"
	case EventMotionNotify:
		return "MotionNotify"
	case EventExpose:
		return "Expose"
	case EventMapRequest:
		return "MapRequest"
	case EventUnmap:
		return "Unmap"
	case EventDestroy:
		return "Destroy"
	case EventConfigureRequest:
		return "ConfigureRequest"
	case EventPropertyNotify:
		return "PropertyNotify"
	default:
		return "Unknown"
	}
}

// Pointer buttons reported in ButtonPress/ButtonRelease events.
const (
	Button1 uint8 = 1
	Button2 uint8 = 2
	Button3 uint8 = 3
)

// Value mask bits of a configure request.
const (
	ConfigX uint16 = 1 << iota
	ConfigY
	ConfigWidth
	ConfigHeight
)

// Event is a classified window-system event. Only the fields relevant to
// Kind are populated.
type Event struct {
	Kind EventKind

	// Window is the window the event is about: the frame for button,
	// motion and expose events, the client for the rest.
	Window WindowID

	// ButtonPress, ButtonRelease
	Button uint8

	// ButtonPress, ButtonRelease, MotionNotify
	RootX int
	RootY int

	// Expose: number of Expose events still to follow.
	Count int

	// ConfigureRequest
	Request   Rect
	ValueMask uint16

	// PropertyNotify
	Atom uint32
}
