package store

// EventKind tells subscribers what changed.
type EventKind int

const (
	EventRecords EventKind = iota // record set replaced or edited
	EventView                     // active view switched
	EventUpload                   // upload started or finished
)

func (k EventKind) String() string {
	switch k {
	case EventRecords:
		return "records"
	case EventView:
		return "view"
	case EventUpload:
		return "upload"
	}
	return "unknown"
}

// Event is delivered to subscribers after a change.
type Event struct {
	Kind    EventKind
	Version uint64
	View    View
}

// Subscribe registers fn to be called after every change, outside the
// state's lock. The returned function unregisters it.
func (s *State) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// bump increments the version and builds the event. Callers hold the lock.
func (s *State) bump(kind EventKind) Event {
	s.version++
	return Event{Kind: kind, Version: s.version, View: s.view}
}

func (s *State) notify(ev Event) {
	s.mu.RLock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()
	for _, fn := range fns {
		fn(ev)
	}
}
