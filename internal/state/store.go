package state

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/five82/fitjourney/internal/journal"
)

// ClearPrompt is the question asked before every entry is discarded.
const ClearPrompt = "Clear all saved data?"

// Saver persists a full snapshot. Implementations swallow their own failures.
type Saver interface {
	Save(journal.State)
}

// Confirm asks the user a yes/no question.
type Confirm func(prompt string) bool

// Options configure a Store.
type Options struct {
	Saver Saver            // nil keeps the log in memory only
	Now   func() time.Time // nil uses time.Now
	NewID func() string    // nil uses journal.NewID
}

// Store owns the current snapshot and applies every mutation to it.
type Store struct {
	mu       sync.RWMutex
	snapshot journal.State
	version  uint64
	now      func() time.Time
	newID    func() string

	saver   Saver
	mailbox chan journal.State
	done    chan struct{}
	closed  bool
}

// New returns a store holding initial. When opts.Saver is set a background
// writer persists every new snapshot until Close is called.
func New(initial journal.State, opts Options) *Store {
	s := &Store{
		snapshot: initial.Normalize(opts.NewID),
		now:      opts.Now,
		newID:    opts.NewID,
		saver:    opts.Saver,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = journal.NewID
	}
	if s.saver != nil {
		s.mailbox = make(chan journal.State, 1)
		s.done = make(chan struct{})
		go s.writeLoop()
	}
	return s
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() journal.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// Version counts the snapshots produced since the store was created.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Today returns the current day-string according to the store's clock.
func (s *Store) Today() string {
	return journal.Today(s.now())
}

// Close stops the writer after the last pending snapshot has been saved.
// Mutations after Close still apply in memory but are no longer persisted.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed || s.mailbox == nil {
		s.closed = true
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.mailbox)
	s.mu.Unlock()
	<-s.done
}

// apply runs fn against the current snapshot and installs its result when ok.
// fn must build a new state rather than modify cur.
func (s *Store) apply(fn func(cur journal.State, today string) (journal.State, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := fn(s.snapshot, journal.Today(s.now()))
	if !ok {
		return false
	}
	s.snapshot = next
	s.version++
	s.enqueue(next)
	return true
}

// enqueue hands snap to the writer without waiting. The mailbox holds one
// snapshot; a newer one replaces whatever has not been written yet.
func (s *Store) enqueue(snap journal.State) {
	if s.mailbox == nil || s.closed {
		return
	}
	select {
	case s.mailbox <- snap:
		return
	default:
	}
	select {
	case <-s.mailbox:
	default:
	}
	s.mailbox <- snap
}

func (s *Store) writeLoop() {
	defer close(s.done)
	for snap := range s.mailbox {
		s.saver.Save(snap)
	}
	log.Debug("state writer stopped")
}
