package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// ErrAnotherWM is returned by BecomeManager when another client already
// holds substructure redirection on the root window.
var ErrAnotherWM = errors.New("another window manager is already running")

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection establishes a connection to the named X display. An empty
// name uses $DISPLAY.
func NewConnection(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// Conn returns the raw xgb connection.
func (c *Connection) Conn() *xgb.Conn {
	return c.XUtil.Conn()
}

// Screen returns the default screen.
func (c *Connection) Screen() *xproto.ScreenInfo {
	return c.XUtil.Screen()
}

// BecomeManager subscribes to substructure redirection and notification on
// the root window. Only one client may hold the redirect at a time.
func (c *Connection) BecomeManager() error {
	err := xproto.ChangeWindowAttributesChecked(
		c.Conn(),
		c.Root,
		xproto.CwEventMask,
		[]uint32{xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify},
	).Check()
	if err != nil {
		if _, ok := err.(xproto.AccessError); ok {
			return ErrAnotherWM
		}
		return fmt.Errorf("failed to select root events: %w", err)
	}
	return nil
}

// SetRootCursor installs the standard arrow cursor on the root window.
func (c *Connection) SetRootCursor() error {
	cursor, err := xcursor.CreateCursor(c.XUtil, xcursor.LeftPtr)
	if err != nil {
		return fmt.Errorf("failed to create cursor: %w", err)
	}
	return xproto.ChangeWindowAttributesChecked(
		c.Conn(),
		c.Root,
		xproto.CwCursor,
		[]uint32{uint32(cursor)},
	).Check()
}

// createCheckWindow creates an unmapped 1x1 override-redirect child of the root.
func (c *Connection) createCheckWindow() (xproto.Window, error) {
	win, err := xwindow.Create(c.XUtil, c.Root)
	if err != nil {
		return 0, err
	}
	win.Change(xproto.CwOverrideRedirect, 1)
	return win.Id, nil
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
