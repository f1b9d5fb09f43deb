package wm

import "github.com/1broseidon/framewm/internal/platform"

// DragMode is the pointer interaction in progress.
type DragMode int

const (
	DragNone DragMode = iota
	DragMove
	DragResize
)

func (m DragMode) String() string {
	switch m {
	case DragNone:
		return "none"
	case DragMove:
		return "move"
	case DragResize:
		return "resize"
	default:
		return "unknown"
	}
}

// drag is the state of an active pointer drag. While mode is not DragNone
// only motion and button release events are processed.
type drag struct {
	mode   DragMode
	client *Client

	// offset of the pointer inside the frame when a move started
	offsetX, offsetY int
	// frame origin when a resize started
	originX, originY int
}

func (e *Env) beginMove(c *Client) {
	e.ws.Raise(c.Frame)
	p, err := e.ws.QueryPointer(c.Frame)
	if err != nil {
		e.logger.Debug("move: pointer query failed", "frame", c.Frame, "error", err)
		return
	}
	e.drag = drag{
		mode:    DragMove,
		client:  c,
		offsetX: p.WinX,
		offsetY: p.WinY,
	}
	e.logger.Debug("drag started", "mode", DragMove, "window", c.Window)
}

func (e *Env) beginResize(c *Client) {
	e.ws.Raise(c.Frame)
	geom, err := e.ws.Geometry(c.Frame)
	if err != nil {
		e.logger.Debug("resize: frame geometry unavailable", "frame", c.Frame, "error", err)
		return
	}
	e.ws.WarpPointer(c.Frame, geom.X, geom.Y, geom.Width, geom.Height)
	e.drag = drag{
		mode:    DragResize,
		client:  c,
		originX: geom.X,
		originY: geom.Y,
	}
	e.logger.Debug("drag started", "mode", DragResize, "window", c.Window)
}

// handleDrag consumes one event while a drag is active.
func (e *Env) handleDrag(ev platform.Event) {
	switch ev.Kind {
	case platform.EventMotionNotify:
		e.dragTo(ev.RootX, ev.RootY)
	case platform.EventButtonRelease:
		e.dragTo(ev.RootX, ev.RootY)
		e.logger.Debug("drag finished", "mode", e.drag.mode, "window", e.drag.client.Window)
		e.drag = drag{}
	default:
		e.logger.Debug("dropped event during drag", "kind", ev.Kind, "window", ev.Window)
	}
}

func (e *Env) dragTo(rootX, rootY int) {
	c := e.drag.client
	switch e.drag.mode {
	case DragMove:
		e.ws.Move(c.Frame, rootX-e.drag.offsetX, rootY-e.drag.offsetY)
	case DragResize:
		e.clients.ResizeFrame(c,
			abs(rootX-e.drag.originX),
			abs(rootY-e.drag.originY),
		)
	}
}
