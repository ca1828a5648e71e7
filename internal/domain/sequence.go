package domain

import (
	"sync"
	"time"
)

// Sequence issues monotonically increasing identifiers seeded from the wall
// clock. Ids sort roughly by creation time but never repeat within a process,
// even when issued inside the same millisecond.
type Sequence struct {
	mu   sync.Mutex
	last int64
	now  func() int64
}

func NewSequence() *Sequence {
	return &Sequence{now: func() int64 { return time.Now().UnixMilli() }}
}

// NewSequenceAt returns a sequence driven by the given clock. Used by tests.
func NewSequenceAt(now func() int64) *Sequence {
	return &Sequence{now: now}
}

func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextLocked()
}

// Pair issues two consecutive identifiers in one step. The second is always
// first+1, so a record and its derived sibling cannot collide regardless of
// clock resolution.
func (s *Sequence) Pair() (int64, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	first := s.nextLocked()
	s.last = first + 1
	return first, s.last
}

func (s *Sequence) nextLocked() int64 {
	candidate := s.now()
	if candidate <= s.last {
		candidate = s.last + 1
	}
	s.last = candidate
	return candidate
}
