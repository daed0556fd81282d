package clock

import "time"

// Clock returns the current time. Sale timestamps are taken from it so tests
// can pin them.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock { return RealClock{} }

func (RealClock) Now() time.Time { return time.Now() }

// MockClock is a settable Clock for tests.
type MockClock struct {
	current time.Time
}

func NewMockClock(start time.Time) *MockClock {
	return &MockClock{current: start}
}

func (m *MockClock) Now() time.Time { return m.current }

func (m *MockClock) Set(t time.Time) { m.current = t }

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) { m.current = m.current.Add(d) }
