package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/orgchart/pkg/company"
	"github.com/matzehuels/orgchart/pkg/hierarchy"
)

// RedrawDelay is how long a view waits after the last change before redrawing.
const RedrawDelay = 300 * time.Millisecond

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrBusy is returned by BeginUpload while an upload is outstanding.
	ErrBusy = errors.New("upload already in progress")
	// ErrUnknownView is returned by SetView for an unknown view.
	ErrUnknownView = errors.New("unknown view")

	// ErrInvalidRecord aliases the validation sentinel of package company.
	ErrInvalidRecord = company.ErrInvalidRecord
	// ErrDuplicateName aliases the hierarchy sentinel.
	ErrDuplicateName = hierarchy.ErrDuplicateName
)

// View is the active presentation.
type View string

// Views.
const (
	ViewUpload View = "upload"
	ViewChart  View = "chart"
	ViewTree   View = "tree"
	ViewTable  View = "table"
)

// Views lists every view in tab order.
var Views = []View{ViewUpload, ViewChart, ViewTree, ViewTable}

// ParseView converts a view name.
func ParseView(s string) (View, error) {
	for _, v := range Views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}

// Draft is the input to [State.Add].
type Draft struct {
	Name   string
	Parent string
	Equity string
}

// Patch holds the fields to change in [State.Update]. Nil fields are kept.
type Patch struct {
	Name   *string
	Parent *string
	Equity *string
}

// State is the record set plus view state. It is safe for concurrent use,
// though a single owner (the UI loop) is the expected caller.
type State struct {
	mu        sync.RWMutex
	records   []company.Record
	view      View
	busy      bool
	fileName  string
	errMsg    string
	extracted string
	version   uint64

	subs   map[int]func(Event)
	nextID int
}

// New returns an empty state in the upload view.
func New() *State {
	return &State{view: ViewUpload, subs: make(map[int]func(Event))}
}

// =============================================================================
// Record Mutations
// =============================================================================

// Load replaces the record set and switches to the chart view. Records are
// trimmed, missing or repeated ids are reassigned and levels are recomputed.
func (s *State) Load(records []company.Record) error {
	recs, err := prepare(records)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records = recs
	s.view = ViewChart
	s.errMsg = ""
	ev := s.bump(EventRecords)
	s.mu.Unlock()
	s.notify(ev)
	return nil
}

func prepare(records []company.Record) ([]company.Record, error) {
	recs := make([]company.Record, len(records))
	next := company.NextID(records)
	seen := make(map[int]bool, len(records))
	for i, r := range records {
		recs[i] = r.Normalize()
		if recs[i].ID <= 0 || seen[recs[i].ID] {
			recs[i].ID = next
			next++
		}
		seen[recs[i].ID] = true
	}
	if dups := company.Duplicates(recs); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, strings.Join(dups, ", "))
	}
	return company.AssignLevels(recs), nil
}

// Add validates d and appends it with the next free id.
func (s *State) Add(d Draft) (company.Record, error) {
	r := company.Record{Name: d.Name, Parent: d.Parent, Equity: d.Equity}.Normalize()
	if err := company.Validate(r); err != nil {
		return company.Record{}, err
	}

	s.mu.Lock()
	if s.hasName(r.Name, 0) {
		s.mu.Unlock()
		return company.Record{}, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
	}
	r.ID = company.NextID(s.records)
	r.Level = company.LevelUnder(s.records, r.Parent)
	s.records = append(s.records, r)
	ev := s.bump(EventRecords)
	s.mu.Unlock()

	s.notify(ev)
	return r, nil
}

// Update merges p into the record with the given id. The record keeps its
// position and only its own level is recomputed. Children that reference
// the old name are not renamed.
func (s *State) Update(id int, p Patch) (company.Record, error) {
	s.mu.Lock()
	i := company.Index(s.records, id)
	if i < 0 {
		s.mu.Unlock()
		return company.Record{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	r := s.records[i]
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Parent != nil {
		r.Parent = *p.Parent
	}
	if p.Equity != nil {
		r.Equity = *p.Equity
	}
	r = r.Normalize()
	if err := company.Validate(r); err != nil {
		s.mu.Unlock()
		return company.Record{}, err
	}
	if s.hasName(r.Name, id) {
		s.mu.Unlock()
		return company.Record{}, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
	}

	r.Level = company.LevelUnder(s.records, r.Parent)
	if r.Parent == s.records[i].Name { // its own parent
		r.Level = 0
	}
	recs := company.Clone(s.records)
	recs[i] = r
	s.records = recs
	ev := s.bump(EventRecords)
	s.mu.Unlock()

	s.notify(ev)
	return r, nil
}

// Remove deletes the record with the given id. The other records keep their
// order and fields.
func (s *State) Remove(id int) error {
	s.mu.Lock()
	i := company.Index(s.records, id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	recs := make([]company.Record, 0, len(s.records)-1)
	recs = append(recs, s.records[:i]...)
	recs = append(recs, s.records[i+1:]...)
	s.records = recs
	ev := s.bump(EventRecords)
	s.mu.Unlock()

	s.notify(ev)
	return nil
}

// Reset clears records, error and extracted text and returns to the upload view.
func (s *State) Reset() {
	s.mu.Lock()
	s.records = nil
	s.errMsg = ""
	s.extracted = ""
	s.fileName = ""
	s.view = ViewUpload
	ev := s.bump(EventRecords)
	s.mu.Unlock()
	s.notify(ev)
}

// hasName reports whether a record other than exceptID is called name.
// Callers hold the lock.
func (s *State) hasName(name string, exceptID int) bool {
	for _, r := range s.records {
		if r.Name == name && r.ID != exceptID {
			return true
		}
	}
	return false
}

// =============================================================================
// View and Upload State
// =============================================================================

// SetView switches the active view.
func (s *State) SetView(v View) error {
	if _, err := ParseView(string(v)); err != nil {
		return err
	}
	s.mu.Lock()
	if s.view == v {
		s.mu.Unlock()
		return nil
	}
	s.view = v
	ev := s.bump(EventView)
	s.mu.Unlock()
	s.notify(ev)
	return nil
}

// BeginUpload marks an upload of fileName as outstanding and clears the
// record set, error and extracted text.
func (s *State) BeginUpload(fileName string) error {
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	s.fileName = fileName
	s.records = nil
	s.errMsg = ""
	s.extracted = ""
	ev := s.bump(EventUpload)
	s.mu.Unlock()
	s.notify(ev)
	return nil
}

// FinishUpload ends the outstanding upload. On failure the error message is
// stored and records stay empty; on success the records are loaded, the
// extracted text kept and the chart view shown.
func (s *State) FinishUpload(records []company.Record, extracted string, uploadErr error) {
	var recs []company.Record
	if uploadErr == nil {
		recs, uploadErr = prepare(records)
	}

	s.mu.Lock()
	s.busy = false
	if uploadErr != nil {
		s.errMsg = uploadErr.Error()
		s.records = nil
	} else {
		s.records = recs
		s.extracted = extracted
		s.errMsg = ""
		s.view = ViewChart
	}
	ev := s.bump(EventUpload)
	s.mu.Unlock()
	s.notify(ev)
}

// =============================================================================
// Queries
// =============================================================================

// Records returns a copy of the record set in order.
func (s *State) Records() []company.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return company.Clone(s.records)
}

// Record returns the record with the given id.
func (s *State) Record(id int) (company.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := company.Index(s.records, id); i >= 0 {
		return s.records[i], true
	}
	return company.Record{}, false
}

// Len returns the number of records.
func (s *State) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Forest builds the hierarchy of the current records.
func (s *State) Forest() (*hierarchy.Forest, error) {
	return hierarchy.Build(s.Records())
}

// Stats computes statistics for the current records.
func (s *State) Stats() company.Stats {
	return company.ComputeStats(s.Records())
}

// Snapshot is a consistent copy of the whole state.
type Snapshot struct {
	Records   []company.Record
	View      View
	Busy      bool
	FileName  string
	Error     string
	Extracted string
	Version   uint64
}

// Snapshot returns a copy of the state taken under one lock.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Records:   company.Clone(s.records),
		View:      s.view,
		Busy:      s.busy,
		FileName:  s.fileName,
		Error:     s.errMsg,
		Extracted: s.extracted,
		Version:   s.version,
	}
}

// View returns the active view.
func (s *State) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// Busy reports whether an upload is outstanding.
func (s *State) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy
}

// ErrorMessage returns the message of the last failed upload, if any.
func (s *State) ErrorMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// ExtractedText returns the text preview of the last successful upload.
func (s *State) ExtractedText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.extracted
}

// Version increases by one with every change.
func (s *State) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
