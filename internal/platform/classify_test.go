package platform

import (
	"testing"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

func TestClassifyEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   xgb.Event
		want Event
	}{
		{
			name: "button press reports event window",
			ev: xproto.ButtonPressEvent{
				Detail: 3, Root: 1, Event: 77, Child: 78, RootX: 640, RootY: 480,
			},
			want: Event{Kind: EventButtonPress, Window: 77, Button: Button3, RootX: 640, RootY: 480},
		},
		{
			name: "button release",
			ev:   xproto.ButtonReleaseEvent{Detail: 1, Event: 77, RootX: -5, RootY: 12},
			want: Event{Kind: EventButtonRelease, Window: 77, Button: Button1, RootX: -5, RootY: 12},
		},
		{
			name: "motion",
			ev:   xproto.MotionNotifyEvent{Event: 9, RootX: 1, RootY: 2},
			want: Event{Kind: EventMotionNotify, Window: 9, RootX: 1, RootY: 2},
		},
		{
			name: "expose keeps count",
			ev:   xproto.ExposeEvent{Window: 12, Count: 3},
			want: Event{Kind: EventExpose, Window: 12, Count: 3},
		},
		{
			name: "map request reports the child",
			ev:   xproto.MapRequestEvent{Parent: 1, Window: 40},
			want: Event{Kind: EventMapRequest, Window: 40},
		},
		{
			name: "unmap reports the unmapped window",
			ev:   xproto.UnmapNotifyEvent{Event: 43, Window: 42},
			want: Event{Kind: EventUnmap, Window: 42},
		},
		{
			name: "destroy",
			ev:   xproto.DestroyNotifyEvent{Event: 43, Window: 42},
			want: Event{Kind: EventDestroy, Window: 42},
		},
		{
			name: "configure request translates mask",
			ev: xproto.ConfigureRequestEvent{
				Parent:    43,
				Window:    42,
				X:         100,
				Y:         -20,
				Width:     800,
				Height:    600,
				ValueMask: xproto.ConfigWindowX | xproto.ConfigWindowHeight | xproto.ConfigWindowBorderWidth,
			},
			want: Event{
				Kind:      EventConfigureRequest,
				Window:    42,
				Request:   Rect{X: 100, Y: -20, Width: 800, Height: 600},
				ValueMask: ConfigX | ConfigHeight,
			},
		},
		{
			name: "property notify",
			ev:   xproto.PropertyNotifyEvent{Window: 42, Atom: 39},
			want: Event{Kind: EventPropertyNotify, Window: 42, Atom: 39},
		},
		{
			name: "anything else is unknown",
			ev:   xproto.EnterNotifyEvent{Event: 43},
			want: Event{Kind: EventUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyEvent(tt.ev))
		})
	}
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "MapRequest", EventMapRequest.String())
	assert.Equal(t, "ConfigureRequest", EventConfigureRequest.String())
	assert.Equal(t, "Unknown", EventUnknown.String())
	assert.Equal(t, "Unknown", EventKind(99).String())
}
