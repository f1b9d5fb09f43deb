package wm

import (
	"errors"
	"fmt"

	"github.com/1broseidon/framewm/internal/platform"
)

const fakeRoot platform.WindowID = 1

type fakeWindow struct {
	rect     platform.Rect
	parent   platform.WindowID
	mapped   bool
	override bool
	name     string
	watched  bool
	saved    bool
}

type drawCall struct {
	win  platform.WindowID
	text string
	x, y int
}

// fakeWS is an in-memory window system. It keeps enough server state to
// check geometry after a sequence of requests and logs every mutating call.
type fakeWS struct {
	windows map[platform.WindowID]*fakeWindow
	stack   []platform.WindowID
	nextID  platform.WindowID

	metrics    *platform.FontMetrics
	pointer    [2]int
	events     []platform.Event
	failCreate bool

	clientList []platform.WindowID

	calls  []string
	drawn  []drawCall
	killed []platform.WindowID
}

func newFakeWS() *fakeWS {
	return &fakeWS{
		windows: map[platform.WindowID]*fakeWindow{
			fakeRoot: {rect: platform.Rect{Width: 1920, Height: 1080}},
		},
		nextID: 0x1000,
	}
}

// addWindow creates a mapped top-level window as another client would.
func (f *fakeWS) addWindow(id platform.WindowID, r platform.Rect) {
	f.windows[id] = &fakeWindow{rect: r, parent: fakeRoot, mapped: true}
	f.stack = append(f.stack, id)
}

func (f *fakeWS) push(evs ...platform.Event) {
	f.events = append(f.events, evs...)
}

func (f *fakeWS) log(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeWS) rect(id platform.WindowID) platform.Rect {
	return f.windows[id].rect
}

func (f *fakeWS) Root() platform.WindowID { return fakeRoot }

func (f *fakeWS) QueryTree() ([]platform.WindowID, error) {
	out := make([]platform.WindowID, len(f.stack))
	copy(out, f.stack)
	return out, nil
}

func (f *fakeWS) Geometry(win platform.WindowID) (platform.Geometry, error) {
	w, ok := f.windows[win]
	if !ok {
		return platform.Geometry{}, errors.New("bad window")
	}
	return platform.Geometry{Rect: w.rect, Depth: 24}, nil
}

func (f *fakeWS) Attributes(win platform.WindowID) (platform.Attributes, error) {
	w, ok := f.windows[win]
	if !ok {
		return platform.Attributes{}, errors.New("bad window")
	}
	return platform.Attributes{OverrideRedirect: w.override, Mapped: w.mapped}, nil
}

func (f *fakeWS) CreateFrame(bounds platform.Rect) (platform.WindowID, error) {
	if f.failCreate {
		return 0, errors.New("bad alloc")
	}
	f.nextID++
	id := f.nextID
	f.windows[id] = &fakeWindow{rect: bounds, parent: fakeRoot, override: true}
	f.stack = append(f.stack, id)
	f.log("create %d %dx%d+%d+%d", id, bounds.Width, bounds.Height, bounds.X, bounds.Y)
	return id, nil
}

func (f *fakeWS) Reparent(win, parent platform.WindowID, x, y int) {
	if w, ok := f.windows[win]; ok {
		w.parent = parent
		w.rect.X, w.rect.Y = x, y
	}
	f.log("reparent %d %d", win, parent)
}

func (f *fakeWS) Move(win platform.WindowID, x, y int) {
	if w, ok := f.windows[win]; ok {
		w.rect.X, w.rect.Y = x, y
	}
	f.log("move %d %d,%d", win, x, y)
}

func (f *fakeWS) Resize(win platform.WindowID, width, height int) {
	if w, ok := f.windows[win]; ok {
		w.rect.Width, w.rect.Height = width, height
	}
	f.log("resize %d %dx%d", win, width, height)
}

func (f *fakeWS) Map(win platform.WindowID) {
	if w, ok := f.windows[win]; ok {
		w.mapped = true
	}
	f.log("map %d", win)
}

func (f *fakeWS) Unmap(win platform.WindowID) {
	if w, ok := f.windows[win]; ok {
		w.mapped = false
	}
	f.log("unmap %d", win)
}

func (f *fakeWS) Destroy(win platform.WindowID) {
	delete(f.windows, win)
	for id, w := range f.windows {
		if w.parent == win {
			delete(f.windows, id)
		}
	}
	f.log("destroy %d", win)
}

func (f *fakeWS) Raise(win platform.WindowID) { f.log("raise %d", win) }

func (f *fakeWS) Clear(win platform.WindowID) { f.log("clear %d", win) }

func (f *fakeWS) AddToSaveSet(win platform.WindowID) {
	if w, ok := f.windows[win]; ok {
		w.saved = true
	}
	f.log("saveset %d", win)
}

func (f *fakeWS) KillClient(win platform.WindowID) {
	f.killed = append(f.killed, win)
	f.log("kill %d", win)
}

func (f *fakeWS) WatchProperties(win platform.WindowID) {
	if w, ok := f.windows[win]; ok {
		w.watched = true
	}
	f.log("watch %d", win)
}

func (f *fakeWS) PublishClients(wins []platform.WindowID) {
	f.clientList = append([]platform.WindowID(nil), wins...)
	f.log("publish %d", len(wins))
}

func (f *fakeWS) FetchName(win platform.WindowID) string {
	if w, ok := f.windows[win]; ok {
		return w.name
	}
	return ""
}

func (f *fakeWS) DrawText(win platform.WindowID, text string, x, y int) {
	f.drawn = append(f.drawn, drawCall{win: win, text: text, x: x, y: y})
	f.log("draw %d %q", win, text)
}

func (f *fakeWS) FontMetrics() (platform.FontMetrics, bool) {
	if f.metrics == nil {
		return platform.FontMetrics{}, false
	}
	return *f.metrics, true
}

func (f *fakeWS) QueryPointer(win platform.WindowID) (platform.Pointer, error) {
	w, ok := f.windows[win]
	if !ok {
		return platform.Pointer{}, errors.New("bad window")
	}
	return platform.Pointer{
		RootX: f.pointer[0],
		RootY: f.pointer[1],
		WinX:  f.pointer[0] - w.rect.X,
		WinY:  f.pointer[1] - w.rect.Y,
	}, nil
}

func (f *fakeWS) WarpPointer(win platform.WindowID, x, y, width, height int) {
	f.pointer = [2]int{x + width, y + height}
	f.log("warp %d %d,%d", win, x+width, y+height)
}

func (f *fakeWS) NextEvent() (platform.Event, error) {
	if len(f.events) == 0 {
		return platform.Event{}, platform.ErrClosed
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, nil
}

func (f *fakeWS) Close() {}

var _ platform.WindowSystem = (*fakeWS)(nil)
