package clock

import (
	"sync"
	"time"
)

type RealDateProvider struct{}

func NewRealDateProvider() RealDateProvider {
	return RealDateProvider{}
}

func (RealDateProvider) Now() time.Time {
	return time.Now().UTC()
}

// StubDateProvider returns whatever was last set. Tests use it to pin "now".
type StubDateProvider struct {
	mu  sync.RWMutex
	now time.Time
}

func NewStubDateProvider(now time.Time) *StubDateProvider {
	return &StubDateProvider{now: now}
}

func (s *StubDateProvider) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

func (s *StubDateProvider) Set(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}
