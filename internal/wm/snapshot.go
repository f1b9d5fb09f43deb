package wm

// Snapshot is a copy of the session state taken after the last handled
// event.
type Snapshot struct {
	Clients []Client
	Drag    DragMode
}

// Snapshot returns the state as of the last handled event. It is safe to
// call from any goroutine.
func (e *Env) Snapshot() Snapshot {
	if s := e.snap.Load(); s != nil {
		return *s
	}
	return Snapshot{}
}

func (e *Env) storeSnapshot() {
	e.snap.Store(&Snapshot{
		Clients: e.clients.Clients(),
		Drag:    e.drag.mode,
	})
}
