// Package wm is the window manager core: it adopts top-level windows into
// decorated frames and turns window system events into frame operations.
// Everything here runs on the single goroutine that calls Run, except
// Env.Snapshot.
package wm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/1broseidon/framewm/internal/platform"
)

// Env holds the window system binding, the client registry and the drag
// state for one session.
type Env struct {
	ws      platform.WindowSystem
	clients *Registry
	logger  *slog.Logger
	drag    drag

	snap atomic.Pointer[Snapshot]
}

// New returns an Env that manages windows through ws.
func New(ws platform.WindowSystem, opts Options, logger *slog.Logger) *Env {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Env{
		ws:      ws,
		clients: NewRegistry(ws, opts, logger),
		logger:  logger,
	}
	e.storeSnapshot()
	return e
}

// Clients returns the client registry.
func (e *Env) Clients() *Registry {
	return e.clients
}

// Dragging returns the drag in progress, DragNone when idle.
func (e *Env) Dragging() DragMode {
	return e.drag.mode
}

// Scan adopts the root's existing children. Override-redirect windows are
// left alone. Adopted windows are already mapped, so each absorbs the unmap
// its reparenting generates.
func (e *Env) Scan() error {
	children, err := e.ws.QueryTree()
	if err != nil {
		return fmt.Errorf("failed to scan existing windows: %w", err)
	}
	for _, win := range children {
		attr, err := e.ws.Attributes(win)
		if err != nil {
			e.logger.Debug("scan: skipping window", "window", win, "error", err)
			continue
		}
		if attr.OverrideRedirect {
			continue
		}
		if _, err := e.clients.Manage(win, true); err != nil {
			e.logger.Warn("scan: failed to manage window", "window", win, "error", err)
		}
	}
	e.storeSnapshot()
	e.logger.Info("adopted existing windows", "count", e.clients.Len())
	return nil
}

// Run dispatches events until ctx is done or the window system closes.
// ctx is only checked between events; close the window system to unblock
// a pending NextEvent.
func (e *Env) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		ev, err := e.ws.NextEvent()
		if err != nil {
			if errors.Is(err, platform.ErrClosed) {
				return nil
			}
			return fmt.Errorf("failed to read event: %w", err)
		}
		e.Dispatch(ev)
	}
}

// Dispatch handles one event.
func (e *Env) Dispatch(ev platform.Event) {
	e.dispatch(ev)
	e.storeSnapshot()
}

func (e *Env) dispatch(ev platform.Event) {
	if e.drag.mode != DragNone {
		e.handleDrag(ev)
		return
	}

	e.logger.Debug("event", "kind", ev.Kind, "window", ev.Window)

	switch ev.Kind {
	case platform.EventMapRequest:
		if _, err := e.clients.Manage(ev.Window, false); err != nil {
			e.logger.Warn("failed to manage window", "window", ev.Window, "error", err)
		}

	case platform.EventUnmap, platform.EventDestroy:
		e.clients.Unmanage(ev.Window)

	case platform.EventConfigureRequest:
		e.clients.Configure(ev.Window, ev.Request, ev.ValueMask)

	case platform.EventExpose:
		if ev.Count != 0 {
			return
		}
		if c := e.clients.FindByFrame(ev.Window); c != nil {
			e.clients.Redraw(c)
		}

	case platform.EventPropertyNotify:
		if c := e.clients.FindByWindow(ev.Window); c != nil {
			e.clients.Redraw(c)
		}

	case platform.EventButtonPress:
		c := e.clients.Find(ev.Window)
		if c == nil {
			return
		}
		switch ev.Button {
		case platform.Button1:
			e.beginMove(c)
		case platform.Button2:
			e.ws.KillClient(c.Window)
		case platform.Button3:
			e.beginResize(c)
		}
	}
}
