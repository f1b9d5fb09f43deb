package wm

import "github.com/1broseidon/framewm/internal/platform"

// Client is a managed top-level window and the frame that decorates it.
type Client struct {
	Window platform.WindowID
	Frame  platform.WindowID

	// IgnoreUnmap is set for windows adopted at startup. Reparenting a
	// mapped window produces one unmap notification that must be absorbed.
	IgnoreUnmap bool

	// TitleHeight is fixed when the frame is created.
	TitleHeight int
}

// Options controls frame geometry.
type Options struct {
	// MinWidth and MinHeight are the smallest client size accepted when a
	// window is adopted.
	MinWidth  int
	MinHeight int
	// Inset is the gap between the frame edge and the client.
	Inset int
	// TitleHeight is used when the window system has no font metrics.
	TitleHeight int
}

const (
	DefaultMinWidth    = 600
	DefaultMinHeight   = 400
	DefaultInset       = 5
	DefaultTitleHeight = 18

	// defaultTitleBaseline is where titles are drawn without font metrics.
	defaultTitleBaseline = 14
)

func (o Options) withDefaults() Options {
	if o.MinWidth <= 0 {
		o.MinWidth = DefaultMinWidth
	}
	if o.MinHeight <= 0 {
		o.MinHeight = DefaultMinHeight
	}
	if o.Inset <= 0 {
		o.Inset = DefaultInset
	}
	if o.TitleHeight <= 0 {
		o.TitleHeight = DefaultTitleHeight
	}
	return o
}

// DefaultOptions returns the stock frame geometry.
func DefaultOptions() Options {
	return Options{
		MinWidth:    DefaultMinWidth,
		MinHeight:   DefaultMinHeight,
		Inset:       DefaultInset,
		TitleHeight: DefaultTitleHeight,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
