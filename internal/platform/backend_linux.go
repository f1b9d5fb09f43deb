//go:build linux

package platform

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/1broseidon/framewm/internal/x11"
	"github.com/BurntSushi/xgb/xproto"
)

// Options configures a LinuxBackend.
type Options struct {
	// Display is the X display name; empty uses $DISPLAY.
	Display string
	// Name is advertised through _NET_WM_NAME on the check window.
	Name   string
	Style  x11.FrameStyle
	Logger *slog.Logger
}

// LinuxBackend implements WindowSystem over an X11 connection.
type LinuxBackend struct {
	conn   *x11.Connection
	decor  *x11.Decorator
	logger *slog.Logger

	closeOnce sync.Once
}

var _ WindowSystem = (*LinuxBackend)(nil)

// NewLinuxBackend opens the display, takes over substructure redirection on
// the root window and allocates frame decoration resources.
func NewLinuxBackend(opts Options) (*LinuxBackend, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	conn, err := x11.NewConnection(opts.Display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	if err := conn.BecomeManager(); err != nil {
		conn.Close()
		return nil, err
	}

	decor, err := x11.NewDecorator(conn, opts.Style)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to set up frame decorations: %w", err)
	}
	if _, _, ok := decor.FontMetrics(); !ok {
		logger.Warn("no usable title font, falling back to default title height")
	}

	if err := conn.SetRootCursor(); err != nil {
		logger.Warn("failed to set root cursor", "error", err)
	}
	if opts.Name != "" {
		if err := conn.Announce(opts.Name); err != nil {
			logger.Warn("failed to announce window manager", "error", err)
		}
	}

	return &LinuxBackend{
		conn:   conn,
		decor:  decor,
		logger: logger,
	}, nil
}

// Root returns the root window.
func (b *LinuxBackend) Root() WindowID {
	return WindowID(b.conn.Root)
}

// QueryTree returns the root's children in stacking order, bottom first.
func (b *LinuxBackend) QueryTree() ([]WindowID, error) {
	tree, err := xproto.QueryTree(b.conn.Conn(), b.conn.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to query tree: %w", err)
	}
	out := make([]WindowID, 0, len(tree.Children))
	for _, child := range tree.Children {
		out = append(out, WindowID(child))
	}
	return out, nil
}

// Geometry returns the window geometry relative to its parent.
func (b *LinuxBackend) Geometry(win WindowID) (Geometry, error) {
	geom, err := xproto.GetGeometry(b.conn.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{
		Rect: Rect{
			X:      int(geom.X),
			Y:      int(geom.Y),
			Width:  int(geom.Width),
			Height: int(geom.Height),
		},
		Border: int(geom.BorderWidth),
		Depth:  int(geom.Depth),
	}, nil
}

// Attributes returns the window attributes.
func (b *LinuxBackend) Attributes(win WindowID) (Attributes, error) {
	attr, err := xproto.GetWindowAttributes(b.conn.Conn(), xproto.Window(win)).Reply()
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{
		OverrideRedirect: attr.OverrideRedirect,
		Mapped:           attr.MapState != xproto.MapStateUnmapped,
	}, nil
}

// CreateFrame creates an unmapped frame window.
func (b *LinuxBackend) CreateFrame(bounds Rect) (WindowID, error) {
	wid, err := b.decor.CreateFrame(bounds.X, bounds.Y, bounds.Width, bounds.Height)
	if err != nil {
		return 0, fmt.Errorf("failed to create frame: %w", err)
	}
	return WindowID(wid), nil
}

// Reparent moves win under parent at (x, y).
func (b *LinuxBackend) Reparent(win, parent WindowID, x, y int) {
	xproto.ReparentWindow(b.conn.Conn(), xproto.Window(win), xproto.Window(parent), int16(x), int16(y))
}

// Move moves a window.
func (b *LinuxBackend) Move(win WindowID, x, y int) {
	mask, values := x11.ConfigureValues(&x, &y, nil, nil)
	xproto.ConfigureWindow(b.conn.Conn(), xproto.Window(win), mask, values)
}

// Resize resizes a window. Dimensions below 1 are clamped.
func (b *LinuxBackend) Resize(win WindowID, width, height int) {
	mask, values := x11.ConfigureValues(nil, nil, &width, &height)
	xproto.ConfigureWindow(b.conn.Conn(), xproto.Window(win), mask, values)
}

// Map maps a window.
func (b *LinuxBackend) Map(win WindowID) {
	xproto.MapWindow(b.conn.Conn(), xproto.Window(win))
}

// Unmap unmaps a window.
func (b *LinuxBackend) Unmap(win WindowID) {
	xproto.UnmapWindow(b.conn.Conn(), xproto.Window(win))
}

// Destroy destroys a window.
func (b *LinuxBackend) Destroy(win WindowID) {
	xproto.DestroyWindow(b.conn.Conn(), xproto.Window(win))
}

// Raise puts a window on top of its siblings.
func (b *LinuxBackend) Raise(win WindowID) {
	xproto.ConfigureWindow(
		b.conn.Conn(),
		xproto.Window(win),
		xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove},
	)
}

// Clear repaints a window with its background.
func (b *LinuxBackend) Clear(win WindowID) {
	xproto.ClearArea(b.conn.Conn(), false, xproto.Window(win), 0, 0, 0, 0)
}

// AddToSaveSet makes the server reparent win back to the root if the
// manager's connection goes away.
func (b *LinuxBackend) AddToSaveSet(win WindowID) {
	xproto.ChangeSaveSet(b.conn.Conn(), xproto.SetModeInsert, xproto.Window(win))
}

// KillClient disconnects the client that owns win.
func (b *LinuxBackend) KillClient(win WindowID) {
	xproto.KillClient(b.conn.Conn(), uint32(win))
}

// WatchProperties selects PropertyChange on a client window. Unmap and
// destroy arrive once, through the frame's SubstructureNotify.
func (b *LinuxBackend) WatchProperties(win WindowID) {
	xproto.ChangeWindowAttributes(
		b.conn.Conn(),
		xproto.Window(win),
		xproto.CwEventMask,
		[]uint32{xproto.EventMaskPropertyChange},
	)
}

// PublishClients sets _NET_CLIENT_LIST on the root window.
func (b *LinuxBackend) PublishClients(wins []WindowID) {
	list := make([]xproto.Window, 0, len(wins))
	for _, w := range wins {
		list = append(list, xproto.Window(w))
	}
	if err := b.conn.SetClientList(list); err != nil {
		b.logger.Debug("failed to publish client list", "error", err)
	}
}

// FetchName returns the window title.
func (b *LinuxBackend) FetchName(win WindowID) string {
	return b.conn.WindowName(xproto.Window(win))
}

// DrawText draws text into win with the frame GC.
func (b *LinuxBackend) DrawText(win WindowID, text string, x, y int) {
	b.decor.DrawText(xproto.Window(win), text, x, y)
}

// FontMetrics returns the title font metrics, if a font could be opened.
func (b *LinuxBackend) FontMetrics() (FontMetrics, bool) {
	ascent, descent, ok := b.decor.FontMetrics()
	if !ok {
		return FontMetrics{}, false
	}
	return FontMetrics{Ascent: ascent, Descent: descent}, true
}

// QueryPointer returns the pointer position relative to the root and win.
func (b *LinuxBackend) QueryPointer(win WindowID) (Pointer, error) {
	reply, err := xproto.QueryPointer(b.conn.Conn(), xproto.Window(win)).Reply()
	if err != nil {
		return Pointer{}, err
	}
	return Pointer{
		RootX:   int(reply.RootX),
		RootY:   int(reply.RootY),
		WinX:    int(reply.WinX),
		WinY:    int(reply.WinY),
		Buttons: reply.Mask,
	}, nil
}

// WarpPointer moves the pointer to (width, height) relative to win.
func (b *LinuxBackend) WarpPointer(win WindowID, x, y, width, height int) {
	xproto.WarpPointer(
		b.conn.Conn(),
		xproto.WindowNone,
		xproto.Window(win),
		int16(x), int16(y),
		uint16(width), uint16(height),
		int16(width), int16(height),
	)
}

// NextEvent blocks for the next event. Protocol errors from requests that
// raced with a window's destruction are logged and skipped.
func (b *LinuxBackend) NextEvent() (Event, error) {
	for {
		ev, xerr := b.conn.Conn().WaitForEvent()
		if ev == nil && xerr == nil {
			return Event{}, ErrClosed
		}
		if xerr != nil {
			b.logger.Debug("ignoring protocol error", "error", xerr)
			continue
		}
		return classifyEvent(ev), nil
	}
}

// Close frees decoration resources and disconnects. Safe to call more than
// once and from another goroutine than the one blocked in NextEvent.
func (b *LinuxBackend) Close() {
	if b == nil {
		return
	}
	b.closeOnce.Do(func() {
		b.decor.Close()
		b.conn.Close()
	})
}
