package clock

import (
	"sync"
	"time"
)

// Source provides ledger time in seconds and a monotonically advancing sequence number
type Source interface {
	Now() uint64
	Sequence() uint64
}

// System derives ledger time from the wall clock. The sequence advances once
// per close interval since genesis.
type System struct {
	genesis  time.Time
	interval time.Duration
	now      func() time.Time
}

// NewSystem creates a wall-clock source
func NewSystem(genesis time.Time, interval time.Duration) *System {
	if interval <= 0 {
		interval = DefaultCloseInterval
	}
	return &System{genesis: genesis, interval: interval, now: time.Now}
}

// Now returns unix seconds
func (s *System) Now() uint64 {
	sec := s.now().Unix()
	if sec < 0 {
		return 0
	}
	return uint64(sec)
}

// Sequence returns the number of close intervals elapsed since genesis
func (s *System) Sequence() uint64 {
	elapsed := s.now().Sub(s.genesis)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed / s.interval)
}

// Manual is a settable source for tests and tooling
type Manual struct {
	mu       sync.Mutex
	now      uint64
	sequence uint64
}

// NewManual creates a manual source
func NewManual(now, sequence uint64) *Manual {
	return &Manual{now: now, sequence: sequence}
}

func (m *Manual) Now() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) Sequence() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sequence
}

// Set moves time and sequence to fixed values
func (m *Manual) Set(now, sequence uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
	m.sequence = sequence
}

// Advance moves time forward by seconds and bumps the sequence once
func (m *Manual) Advance(seconds uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += seconds
	m.sequence++
}
