package wm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/framewm/internal/platform"
)

func TestSnapshotTracksDispatch(t *testing.T) {
	ws := newFakeWS()
	ws.addWindow(100, platform.Rect{Width: 300, Height: 300})
	env := newTestEnv(ws)
	assert.Empty(t, env.Snapshot().Clients)

	env.Dispatch(platform.Event{Kind: platform.EventMapRequest, Window: 100})
	snap := env.Snapshot()
	require.Len(t, snap.Clients, 1)
	assert.Equal(t, platform.WindowID(100), snap.Clients[0].Window)
	assert.Equal(t, DragNone, snap.Drag)

	env.Dispatch(platform.Event{Kind: platform.EventButtonPress, Window: snap.Clients[0].Frame, Button: platform.Button1})
	assert.Equal(t, DragMove, env.Snapshot().Drag)

	env.Dispatch(platform.Event{Kind: platform.EventButtonRelease})
	assert.Equal(t, DragNone, env.Snapshot().Drag)
}

func TestSnapshotIsACopy(t *testing.T) {
	ws := newFakeWS()
	ws.addWindow(100, platform.Rect{Width: 300, Height: 300})
	env := newTestEnv(ws)
	env.Dispatch(platform.Event{Kind: platform.EventMapRequest, Window: 100})

	snap := env.Snapshot()
	snap.Clients[0].IgnoreUnmap = true
	assert.False(t, env.Clients().FindByWindow(100).IgnoreUnmap)
}

func TestSnapshotAfterScan(t *testing.T) {
	ws := newFakeWS()
	ws.addWindow(100, platform.Rect{Width: 300, Height: 300})
	ws.addWindow(200, platform.Rect{Width: 300, Height: 300})
	env := newTestEnv(ws)
	require.NoError(t, env.Scan())
	assert.Len(t, env.Snapshot().Clients, 2)
}
