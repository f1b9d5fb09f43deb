package platform

//go:generate mockgen -source=backend.go -destination=../mock/window_system_mock.go -package=mock

import "errors"

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Geometry is the server-side geometry of a window relative to its parent.
type Geometry struct {
	Rect
	Border int
	Depth  int
}

// Attributes holds the window attributes the manager cares about.
type Attributes struct {
	OverrideRedirect bool
	Mapped           bool
}

// Pointer is the result of a pointer query against a window.
type Pointer struct {
	RootX   int
	RootY   int
	WinX    int
	WinY    int
	Buttons uint16
}

// FontMetrics describes the font used to draw frame titles.
type FontMetrics struct {
	Ascent  int
	Descent int
}

// ErrClosed is returned by NextEvent once the connection has been closed.
var ErrClosed = errors.New("window system connection closed")

// WindowSystem abstracts the window-system operations the manager needs.
//
// Requests without a return value are fire-and-forget: errors caused by
// windows that vanished in the meantime are swallowed by the implementation.
type WindowSystem interface {
	Root() WindowID
	QueryTree() ([]WindowID, error)
	Geometry(win WindowID) (Geometry, error)
	Attributes(win WindowID) (Attributes, error)

	CreateFrame(bounds Rect) (WindowID, error)
	Reparent(win, parent WindowID, x, y int)
	Move(win WindowID, x, y int)
	Resize(win WindowID, width, height int)
	Map(win WindowID)
	Unmap(win WindowID)
	Destroy(win WindowID)
	Raise(win WindowID)
	Clear(win WindowID)
	AddToSaveSet(win WindowID)
	KillClient(win WindowID)
	WatchProperties(win WindowID)
	// PublishClients advertises the managed client windows, oldest first.
	PublishClients(wins []WindowID)

	FetchName(win WindowID) string
	DrawText(win WindowID, text string, x, y int)
	FontMetrics() (FontMetrics, bool)

	QueryPointer(win WindowID) (Pointer, error)
	WarpPointer(win WindowID, x, y, width, height int)

	// NextEvent blocks until the next event arrives. The only error it
	// returns is ErrClosed.
	NextEvent() (Event, error)
	Close()
}
