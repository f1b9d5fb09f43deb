package platform

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// classifyEvent maps a decoded X event onto the closed Event set. xgb has
// already selected the variant from the event code; anything outside the
// set becomes EventUnknown.
func classifyEvent(ev xgb.Event) Event {
	switch e := ev.(type) {
	case xproto.ButtonPressEvent:
		return Event{
			Kind:   EventButtonPress,
			Window: WindowID(e.Event),
			Button: uint8(e.Detail),
			RootX:  int(e.RootX),
			RootY:  int(e.RootY),
		}
	case xproto.ButtonReleaseEvent:
		return Event{
			Kind:   EventButtonRelease,
			Window: WindowID(e.Event),
			Button: uint8(e.Detail),
			RootX:  int(e.RootX),
			RootY:  int(e.RootY),
		}
	case xproto.MotionNotifyEvent:
		return Event{
			Kind:   EventMotionNotify,
			Window: WindowID(e.Event),
			RootX:  int(e.RootX),
			RootY:  int(e.RootY),
		}
	case xproto.ExposeEvent:
		return Event{
			Kind:   EventExpose,
			Window: WindowID(e.Window),
			Count:  int(e.Count),
		}
	case xproto.MapRequestEvent:
		return Event{Kind: EventMapRequest, Window: WindowID(e.Window)}
	case xproto.UnmapNotifyEvent:
		return Event{Kind: EventUnmap, Window: WindowID(e.Window)}
	case xproto.DestroyNotifyEvent:
		return Event{Kind: EventDestroy, Window: WindowID(e.Window)}
	case xproto.ConfigureRequestEvent:
		return Event{
			Kind:   EventConfigureRequest,
			Window: WindowID(e.Window),
			Request: Rect{
				X:      int(e.X),
				Y:      int(e.Y),
				Width:  int(e.Width),
				Height: int(e.Height),
			},
			ValueMask: configureMask(e.ValueMask),
		}
	case xproto.PropertyNotifyEvent:
		return Event{
			Kind:   EventPropertyNotify,
			Window: WindowID(e.Window),
			Atom:   uint32(e.Atom),
		}
	default:
		return Event{Kind: EventUnknown}
	}
}

func configureMask(m uint16) uint16 {
	var out uint16
	if m&xproto.ConfigWindowX != 0 {
		out |= ConfigX
	}
	if m&xproto.ConfigWindowY != 0 {
		out |= ConfigY
	}
	if m&xproto.ConfigWindowWidth != 0 {
		out |= ConfigWidth
	}
	if m&xproto.ConfigWindowHeight != 0 {
		out |= ConfigHeight
	}
	return out
}
