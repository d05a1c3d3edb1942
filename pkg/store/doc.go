// Package store holds the record set being edited and the view state around
// it. [State] is the single owner of both: every change goes through one of
// its methods, bumps a version counter and notifies subscribers.
//
// # Mutations
//
//	s := store.New()
//	s.Load(company.Sample())                      // replace, switch to chart view
//	r, _ := s.Add(store.Draft{Name: "X", Equity: "5%"})
//	equity := "7%"
//	s.Update(r.ID, store.Patch{Equity: &equity})  // merge fields in place
//	s.Remove(r.ID)                                // delete, order preserved
//	s.Reset()                                     // empty, back to upload view
//
// Only [State.Add] changes the order of records. Names must stay unique:
// Load, Add and Update fail with [ErrDuplicateName] rather than create a
// second record with the same name.
//
// # Upload Lifecycle
//
// [State.BeginUpload] clears the record set and marks the state busy; a
// second upload is refused with [ErrBusy] until [State.FinishUpload] stores
// either the extracted records or the error message.
//
// # Redraws
//
// Subscribers receive an [Event] after each change. Views are expected to
// coalesce bursts of events, redrawing [RedrawDelay] after the last one.
package store
