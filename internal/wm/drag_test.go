package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/framewm/internal/platform"
)

func managedEnv(t *testing.T) (*fakeWS, *Env, *Client) {
	t.Helper()
	ws := newFakeWS()
	ws.addWindow(100, platform.Rect{X: 10, Y: 20, Width: 300, Height: 200})
	env := newTestEnv(ws)
	c, err := env.Clients().Manage(100, false)
	require.NoError(t, err)
	return ws, env, c
}

func motion(x, y int) platform.Event {
	return platform.Event{Kind: platform.EventMotionNotify, RootX: x, RootY: y}
}

func release(x, y int) platform.Event {
	return platform.Event{Kind: platform.EventButtonRelease, RootX: x, RootY: y}
}

func TestMoveDrag(t *testing.T) {
	ws, env, c := managedEnv(t)
	ws.pointer = [2]int{50, 30}

	env.Dispatch(platform.Event{Kind: platform.EventButtonPress, Window: c.Frame, Button: platform.Button1})
	require.Equal(t, DragMove, env.Dragging())
	assert.Contains(t, ws.calls, "raise "+itoa(c.Frame))

	env.Dispatch(motion(200, 200))
	assert.Equal(t, platform.Rect{X: 160, Y: 190, Width: 600, Height: 418}, ws.rect(c.Frame))

	env.Dispatch(release(300, 250))
	assert.Equal(t, DragNone, env.Dragging())
	assert.Equal(t, platform.Rect{X: 260, Y: 240, Width: 600, Height: 418}, ws.rect(c.Frame))
	assert.Equal(t, platform.Rect{X: 5, Y: 23, Width: 590, Height: 390}, ws.rect(100))
}

func TestMoveDragFromClientWindow(t *testing.T) {
	ws, env, c := managedEnv(t)
	ws.pointer = [2]int{10, 20}

	env.Dispatch(platform.Event{Kind: platform.EventButtonPress, Window: 100, Button: platform.Button1})
	require.Equal(t, DragMove, env.Dragging())

	env.Dispatch(release(0, 0))
	assert.Equal(t, 0, ws.rect(c.Frame).X)
	assert.Equal(t, 0, ws.rect(c.Frame).Y)
}

func TestMoveDragEndsAtReleasePoint(t *testing.T) {
	paths := map[string][][2]int{
		"no motion":   nil,
		"one motion":  {{400, 400}},
		"many motion": {{11, 21}, {900, 5}, {-40, 300}, {77, 77}, {500, 1000}},
	}

	for name, path := range paths {
		t.Run(name, func(t *testing.T) {
			ws, env, c := managedEnv(t)
			ws.pointer = [2]int{20, 25}

			env.Dispatch(platform.Event{Kind: platform.EventButtonPress, Window: c.Frame, Button: platform.Button1})
			for _, p := range path {
				env.Dispatch(motion(p[0], p[1]))
			}
			env.Dispatch(release(640, 480))

			assert.Equal(t, 630, ws.rect(c.Frame).X)
			assert.Equal(t, 475, ws.rect(c.Frame).Y)
		})
	}
}

func TestResizeDrag(t *testing.T) {
	ws, env, c := managedEnv(t)

	env.Dispatch(platform.Event{Kind: platform.EventButtonPress, Window: c.Frame, Button: platform.Button3})
	require.Equal(t, DragResize, env.Dragging())
	assert.Equal(t, [2]int{610, 438}, ws.pointer, "pointer warps to the frame's far corner")

	env.Dispatch(motion(410, 320))
	assert.Equal(t, platform.Rect{X: 10, Y: 20, Width: 400, Height: 300}, ws.rect(c.Frame))
	assert.Equal(t, platform.Rect{X: 5, Y: 23, Width: 390, Height: 272}, ws.rect(100))

	env.Dispatch(release(810, 620))
	assert.Equal(t, DragNone, env.Dragging())
	assert.Equal(t, platform.Rect{X: 10, Y: 20, Width: 800, Height: 600}, ws.rect(c.Frame))
	assert.Equal(t, platform.Rect{X: 5, Y: 23, Width: 790, Height: 572}, ws.rect(100))
}

func TestResizeDragUsesDistanceFromOrigin(t *testing.T) {
	ws, env, c := managedEnv(t)

	env.Dispatch(platform.Event{Kind: platform.EventButtonPress, Window: c.Frame, Button: platform.Button3})
	env.Dispatch(motion(0, 0))

	assert.Equal(t, platform.Rect{X: 10, Y: 20, Width: 10, Height: 20}, ws.rect(c.Frame))
	client := ws.rect(100)
	assert.Equal(t, 1, client.Width)
	assert.Equal(t, 1, client.Height)

	env.Dispatch(release(10, 20))
	frame := ws.rect(c.Frame)
	assert.Equal(t, 1, frame.Width)
	assert.Equal(t, 1, frame.Height)
}

func TestEventsDroppedDuringDrag(t *testing.T) {
	ws, env, c := managedEnv(t)
	ws.addWindow(200, platform.Rect{Width: 100, Height: 100})
	ws.pointer = [2]int{10, 20}

	env.Dispatch(platform.Event{Kind: platform.EventButtonPress, Window: c.Frame, Button: platform.Button1})
	require.Equal(t, DragMove, env.Dragging())

	dropped := []platform.Event{
		{Kind: platform.EventMapRequest, Window: 200},
		{Kind: platform.EventUnmap, Window: 100},
		{Kind: platform.EventDestroy, Window: 100},
		{Kind: platform.EventExpose, Window: c.Frame},
		{Kind: platform.EventButtonPress, Window: c.Frame, Button: platform.Button2},
		{Kind: platform.EventButtonPress, Window: c.Frame, Button: platform.Button3},
		{Kind: platform.EventConfigureRequest, Window: 100, Request: platform.Rect{Width: 5}, ValueMask: platform.ConfigWidth},
	}
	calls := len(ws.calls)
	for _, ev := range dropped {
		env.Dispatch(ev)
		assert.Equal(t, DragMove, env.Dragging(), "event %s ended the drag", ev.Kind)
	}
	assert.Len(t, ws.calls, calls, "dropped events must not reach the window system")

	env.Dispatch(release(10, 20))
	assert.Equal(t, DragNone, env.Dragging())
	assert.Equal(t, 1, env.Clients().Len())
	assert.Nil(t, env.Clients().FindByWindow(200))
	assert.Empty(t, ws.killed)

	// Events after the drag are handled again.
	env.Dispatch(platform.Event{Kind: platform.EventMapRequest, Window: 200})
	assert.Equal(t, 2, env.Clients().Len())
}

func TestDragModeString(t *testing.T) {
	assert.Equal(t, "none", DragNone.String())
	assert.Equal(t, "move", DragMove.String())
	assert.Equal(t, "resize", DragResize.String())
	assert.Equal(t, "unknown", DragMode(9).String())
}
