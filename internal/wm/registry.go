package wm

import (
	"fmt"
	"log/slog"

	"github.com/1broseidon/framewm/internal/platform"
)

// Registry tracks managed clients and owns the creation and teardown of
// their frames. Lookups work by client window or by frame window.
type Registry struct {
	ws     platform.WindowSystem
	opts   Options
	logger *slog.Logger

	byWindow map[platform.WindowID]*Client
	byFrame  map[platform.WindowID]*Client
	order    []*Client
}

// NewRegistry returns an empty registry that decorates windows through ws.
func NewRegistry(ws platform.WindowSystem, opts Options, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		ws:       ws,
		opts:     opts.withDefaults(),
		logger:   logger,
		byWindow: make(map[platform.WindowID]*Client),
		byFrame:  make(map[platform.WindowID]*Client),
	}
}

// Len returns the number of managed clients.
func (r *Registry) Len() int {
	return len(r.order)
}

// Clients returns a snapshot of the managed clients in adoption order.
func (r *Registry) Clients() []Client {
	out := make([]Client, 0, len(r.order))
	for _, c := range r.order {
		out = append(out, *c)
	}
	return out
}

// FindByWindow returns the client whose application window is id.
func (r *Registry) FindByWindow(id platform.WindowID) *Client {
	return r.byWindow[id]
}

// FindByFrame returns the client whose frame is id.
func (r *Registry) FindByFrame(id platform.WindowID) *Client {
	return r.byFrame[id]
}

// Find looks id up as a frame first, then as a client window.
func (r *Registry) Find(id platform.WindowID) *Client {
	if c := r.byFrame[id]; c != nil {
		return c
	}
	return r.byWindow[id]
}

// FrameOf returns the frame decorating window.
func (r *Registry) FrameOf(window platform.WindowID) (platform.WindowID, bool) {
	c := r.byWindow[window]
	if c == nil {
		return 0, false
	}
	return c.Frame, true
}

// TitleHeight is the height of the title strip for newly created frames.
func (r *Registry) TitleHeight() int {
	if m, ok := r.ws.FontMetrics(); ok && m.Ascent+m.Descent > 0 {
		return m.Ascent + m.Descent
	}
	return r.opts.TitleHeight
}

// Manage adopts window: it creates a frame at the window's position,
// reparents the window into it and maps both. Managing an already tracked
// window returns the existing client.
func (r *Registry) Manage(window platform.WindowID, ignoreUnmap bool) (*Client, error) {
	if c := r.byWindow[window]; c != nil {
		return c, nil
	}

	geom, err := r.ws.Geometry(window)
	if err != nil {
		return nil, fmt.Errorf("failed to read geometry of window %d: %w", window, err)
	}

	title := r.TitleHeight()
	inset := r.opts.Inset
	width := max(geom.Width, r.opts.MinWidth)
	height := max(geom.Height, r.opts.MinHeight)

	frame, err := r.ws.CreateFrame(platform.Rect{
		X:      geom.X,
		Y:      geom.Y,
		Width:  width,
		Height: height + title,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to frame window %d: %w", window, err)
	}

	r.ws.Reparent(window, frame, inset, inset+title)
	r.ws.Resize(window, atLeastOne(width-2*inset), atLeastOne(height-2*inset))
	r.ws.WatchProperties(window)
	r.ws.Map(window)
	r.ws.Map(frame)
	r.ws.AddToSaveSet(window)

	c := &Client{
		Window:      window,
		Frame:       frame,
		IgnoreUnmap: ignoreUnmap,
		TitleHeight: title,
	}
	r.byWindow[window] = c
	r.byFrame[frame] = c
	r.order = append(r.order, c)
	r.publish()

	r.logger.Debug("managed window",
		"window", window,
		"frame", frame,
		"width", width,
		"height", height+title,
	)
	return c, nil
}

// Unmanage releases the client for window and destroys its frame. The
// first unmap after adopting an already mapped window is absorbed instead.
// It reports whether the client was released.
func (r *Registry) Unmanage(window platform.WindowID) bool {
	c := r.byWindow[window]
	if c == nil {
		return false
	}
	if c.IgnoreUnmap {
		c.IgnoreUnmap = false
		r.logger.Debug("absorbed reparent unmap", "window", window)
		return false
	}

	// Hand the window back to the root before the frame goes, otherwise
	// destroying the frame takes a withdrawn client with it. Fails harmlessly
	// if the client is already destroyed.
	if fg, err := r.ws.Geometry(c.Frame); err == nil {
		r.ws.Reparent(window, r.ws.Root(), fg.X, fg.Y+c.TitleHeight)
	}
	r.ws.Destroy(c.Frame)

	delete(r.byWindow, c.Window)
	delete(r.byFrame, c.Frame)
	for i, oc := range r.order {
		if oc == c {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.publish()

	r.logger.Debug("unmanaged window", "window", window, "frame", c.Frame)
	return true
}

// Configure applies a client's configure request to its frame. Fields the
// request leaves out keep their current values. The frame is placed so the
// client's top-left lands where it asked, with the title strip above.
func (r *Registry) Configure(window platform.WindowID, req platform.Rect, mask uint16) bool {
	c := r.byWindow[window]
	if c == nil {
		return false
	}

	frameGeom, err := r.ws.Geometry(c.Frame)
	if err != nil {
		r.logger.Debug("configure: frame geometry unavailable", "frame", c.Frame, "error", err)
		return false
	}
	clientGeom, err := r.ws.Geometry(c.Window)
	if err != nil {
		r.logger.Debug("configure: client geometry unavailable", "window", c.Window, "error", err)
		return false
	}

	x := frameGeom.X
	y := frameGeom.Y + c.TitleHeight
	width := clientGeom.Width
	height := clientGeom.Height
	if mask&platform.ConfigX != 0 {
		x = req.X
	}
	if mask&platform.ConfigY != 0 {
		y = req.Y
	}
	if mask&platform.ConfigWidth != 0 {
		width = req.Width
	}
	if mask&platform.ConfigHeight != 0 {
		height = req.Height
	}

	r.ws.Move(c.Frame, x, y-c.TitleHeight)
	r.ws.Resize(c.Frame, atLeastOne(width), atLeastOne(height+c.TitleHeight))
	r.ws.Resize(c.Window, atLeastOne(width), atLeastOne(height))
	return true
}

func (r *Registry) publish() {
	wins := make([]platform.WindowID, 0, len(r.order))
	for _, c := range r.order {
		wins = append(wins, c.Window)
	}
	r.ws.PublishClients(wins)
}

// ResizeFrame resizes c's frame to width x height and fits the client
// inside it below the title strip.
func (r *Registry) ResizeFrame(c *Client, width, height int) {
	inset := r.opts.Inset
	r.ws.Resize(c.Frame, atLeastOne(width), atLeastOne(height))
	r.ws.Resize(c.Window,
		atLeastOne(width-2*inset),
		atLeastOne(height-2*inset-c.TitleHeight),
	)
}

// Redraw repaints c's title strip with the window's current name.
func (r *Registry) Redraw(c *Client) {
	baseline := defaultTitleBaseline
	if m, ok := r.ws.FontMetrics(); ok {
		baseline = m.Ascent
	}
	name := r.ws.FetchName(c.Window)
	r.ws.Clear(c.Frame)
	r.ws.DrawText(c.Frame, name, r.opts.Inset, baseline)
}
