package editor

import (
	"fmt"
	"time"
)

// IDSource produces block identifiers for inserted blocks
type IDSource interface {
	NewID() string
}

// TimeIDs derives ids from the wall clock. Reads that do not advance past the
// previous id are bumped by one nanosecond so ids stay distinct within a session.
type TimeIDs struct {
	Now  func() time.Time
	last int64
}

// NewTimeIDs returns an id source backed by time.Now
func NewTimeIDs() *TimeIDs {
	return &TimeIDs{Now: time.Now}
}

func (s *TimeIDs) NewID() string {
	now := s.Now().UnixNano()
	if now <= s.last {
		now = s.last + 1
	}
	s.last = now
	return fmt.Sprintf("block-%d", now)
}
