package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// supportedHints are advertised in _NET_SUPPORTED.
var supportedHints = []string{
	"_NET_SUPPORTED",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_WM_NAME",
	"_NET_CLIENT_LIST",
}

// Announce advertises the manager via _NET_SUPPORTING_WM_CHECK and
// _NET_SUPPORTED. The check window is override-redirect so the startup scan
// never adopts it.
func (c *Connection) Announce(name string) error {
	win, err := c.createCheckWindow()
	if err != nil {
		return fmt.Errorf("failed to create check window: %w", err)
	}

	if err := ewmh.SupportingWmCheckSet(c.XUtil, c.Root, win); err != nil {
		return err
	}
	if err := ewmh.SupportingWmCheckSet(c.XUtil, win, win); err != nil {
		return err
	}
	if err := ewmh.WmNameSet(c.XUtil, win, name); err != nil {
		return err
	}
	if err := ewmh.SupportedSet(c.XUtil, supportedHints); err != nil {
		return fmt.Errorf("failed to set _NET_SUPPORTED: %w", err)
	}
	return nil
}

// SetClientList replaces _NET_CLIENT_LIST on the root window. Pagers and
// taskbars read the managed client windows from it, oldest first.
func (c *Connection) SetClientList(wins []xproto.Window) error {
	if err := ewmh.ClientListSet(c.XUtil, wins); err != nil {
		return fmt.Errorf("failed to set _NET_CLIENT_LIST: %w", err)
	}
	return nil
}
