package tracker

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrAlreadyRunning = errors.New("a stopwatch is already running")
	ErrNothingTracked = errors.New("no tracked time to submit")
)

// Clock supplies the current time; injected so tests control elapsed time.
type Clock func() time.Time

// Status is the stopwatch state a client polls while rendering the display.
type Status struct {
	Running        bool `json:"running"`
	ElapsedSeconds int  `json:"elapsed_seconds"`
}

type session struct {
	startedAt time.Time
	running   bool
	elapsed   int // seconds; live while running, frozen after Stop
	stop      chan struct{}
}

// Tracker keeps one stopwatch session per user, in memory. While a session
// runs, a 1-second tick recomputes elapsed from the captured start instant;
// Stop freezes the value without discarding it, so the user can still submit
// it. Sessions do not survive a restart (multi-device sync is out of scope).
type Tracker struct {
	mu       sync.Mutex
	clock    Clock
	sessions map[string]*session
}

func New(clock Clock) *Tracker {
	if clock == nil {
		clock = time.Now
	}
	return &Tracker{
		clock:    clock,
		sessions: make(map[string]*session),
	}
}

// Start begins a session for the user. Any previously frozen value is
// discarded. Starting while already running is rejected.
func (t *Tracker) Start(userID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.sessions[userID]; ok && s.running {
		return ErrAlreadyRunning
	}

	s := &session{
		startedAt: t.clock(),
		running:   true,
		stop:      make(chan struct{}),
	}
	t.sessions[userID] = s

	go t.tick(userID, s)
	return nil
}

// tick refreshes the stored elapsed seconds once a second until the session
// stops. The ticker must not outlive the session.
func (t *Tracker) tick(userID string, s *session) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			if s.running {
				s.elapsed = int(t.clock().Sub(s.startedAt) / time.Second)
			}
			t.mu.Unlock()
		}
	}
}

// Stop freezes the elapsed time and returns to idle. The frozen value stays
// available for submission. Stopping an idle tracker is a no-op.
func (t *Tracker) Stop(userID string) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[userID]
	if !ok {
		return Status{}
	}

	if s.running {
		s.elapsed = int(t.clock().Sub(s.startedAt) / time.Second)
		s.running = false
		close(s.stop)
	}

	return Status{Running: false, ElapsedSeconds: s.elapsed}
}

// Status reports the live state; while running, elapsed is recomputed from
// the wall clock rather than waiting for the next tick.
func (t *Tracker) Status(userID string) Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[userID]
	if !ok {
		return Status{}
	}

	elapsed := s.elapsed
	if s.running {
		elapsed = int(t.clock().Sub(s.startedAt) / time.Second)
	}
	return Status{Running: s.running, ElapsedSeconds: elapsed}
}

// Reset discards the session entirely (switching to manual entry mode stops
// any running stopwatch and zeroes the display).
func (t *Tracker) Reset(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[userID]
	if !ok {
		return
	}

	if s.running {
		s.running = false
		close(s.stop)
	}
	delete(t.sessions, userID)
}

// Consume stops the session if needed, removes it, and returns the elapsed
// seconds for submission. Zero tracked time is an error.
func (t *Tracker) Consume(userID string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[userID]
	if !ok {
		return 0, ErrNothingTracked
	}

	elapsed := s.elapsed
	if s.running {
		elapsed = int(t.clock().Sub(s.startedAt) / time.Second)
		s.running = false
		close(s.stop)
	}
	delete(t.sessions, userID)

	if elapsed <= 0 {
		return 0, ErrNothingTracked
	}
	return elapsed, nil
}

// Minutes converts tracked seconds to whole minutes: round half up on
// seconds/60, and any non-zero duration counts as at least one minute.
func Minutes(seconds int) int {
	if seconds <= 0 {
		return 0
	}
	minutes := (seconds + 30) / 60
	if minutes < 1 {
		return 1
	}
	return minutes
}
