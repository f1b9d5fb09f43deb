package wm_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/1broseidon/framewm/internal/mock"
	"github.com/1broseidon/framewm/internal/platform"
	"github.com/1broseidon/framewm/internal/wm"
)

func TestManageRequestOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := mock.NewMockWindowSystem(ctrl)

	const win, frame platform.WindowID = 42, 43

	ws.EXPECT().FontMetrics().Return(platform.FontMetrics{}, false).AnyTimes()
	gomock.InOrder(
		ws.EXPECT().Geometry(win).Return(platform.Geometry{
			Rect: platform.Rect{X: 3, Y: 4, Width: 700, Height: 500},
		}, nil),
		ws.EXPECT().CreateFrame(platform.Rect{X: 3, Y: 4, Width: 700, Height: 518}).Return(frame, nil),
		ws.EXPECT().Reparent(win, frame, 5, 23),
		ws.EXPECT().Resize(win, 690, 490),
		ws.EXPECT().WatchProperties(win),
		ws.EXPECT().Map(win),
		ws.EXPECT().Map(frame),
		ws.EXPECT().AddToSaveSet(win),
		ws.EXPECT().PublishClients([]platform.WindowID{win}),
	)

	env := wm.New(ws, wm.DefaultOptions(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	env.Dispatch(platform.Event{Kind: platform.EventMapRequest, Window: win})

	got, ok := env.Clients().FrameOf(win)
	require.True(t, ok)
	require.Equal(t, frame, got)
}

func TestUnmanageReturnsWindowToRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := mock.NewMockWindowSystem(ctrl)

	const root, win, frame platform.WindowID = 1, 42, 43

	ws.EXPECT().FontMetrics().Return(platform.FontMetrics{Ascent: 10, Descent: 2}, true).AnyTimes()
	ws.EXPECT().Geometry(win).Return(platform.Geometry{
		Rect: platform.Rect{Width: 800, Height: 600},
	}, nil)
	ws.EXPECT().CreateFrame(gomock.Any()).Return(frame, nil)
	ws.EXPECT().Reparent(win, frame, gomock.Any(), gomock.Any())
	ws.EXPECT().Resize(win, gomock.Any(), gomock.Any())
	ws.EXPECT().WatchProperties(win)
	ws.EXPECT().Map(gomock.Any()).Times(2)
	ws.EXPECT().AddToSaveSet(win)
	ws.EXPECT().PublishClients(gomock.Any())

	env := wm.New(ws, wm.DefaultOptions(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := env.Clients().Manage(win, false)
	require.NoError(t, err)

	ws.EXPECT().Root().Return(root)
	gomock.InOrder(
		ws.EXPECT().Geometry(frame).Return(platform.Geometry{
			Rect: platform.Rect{X: 40, Y: 50, Width: 800, Height: 612},
		}, nil),
		ws.EXPECT().Reparent(win, root, 40, 62),
		ws.EXPECT().Destroy(frame),
		ws.EXPECT().PublishClients([]platform.WindowID{}),
	)

	env.Dispatch(platform.Event{Kind: platform.EventUnmap, Window: win})
	_, ok := env.Clients().FrameOf(win)
	require.False(t, ok)
}
