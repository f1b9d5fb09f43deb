package x11

import (
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// WindowName returns the window's title, preferring _NET_WM_NAME over the
// legacy WM_NAME property. Returns "" if neither is set.
func (c *Connection) WindowName(windowID xproto.Window) string {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, windowID)
	if err == nil {
		return strings.TrimSpace(title)
	}
	return ""
}

// ConfigureValues builds a ConfigureWindow mask/value list for the given
// fields. Values must follow the bit order of the mask, low to high.
func ConfigureValues(x, y *int, width, height *int) (uint16, []uint32) {
	var mask uint16
	var values []uint32
	if x != nil {
		mask |= xproto.ConfigWindowX
		values = append(values, uint32(*x))
	}
	if y != nil {
		mask |= xproto.ConfigWindowY
		values = append(values, uint32(*y))
	}
	if width != nil {
		mask |= xproto.ConfigWindowWidth
		values = append(values, uint32(clampDimension(*width)))
	}
	if height != nil {
		mask |= xproto.ConfigWindowHeight
		values = append(values, uint32(clampDimension(*height)))
	}
	return mask, values
}

// clampDimension keeps a width or height inside the protocol's 1..65535 range.
func clampDimension(v int) int {
	if v < 1 {
		return 1
	}
	if v > 0xffff {
		return 0xffff
	}
	return v
}
