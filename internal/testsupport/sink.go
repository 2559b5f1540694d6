// Package testsupport provides shared helpers for package tests.
package testsupport

import "sync"

// CaptureSink records every message pushed through it. When Err is set, Push
// fails with it and nothing is recorded, which lets tests exercise delivery
// failure paths.
type CaptureSink struct {
	mu       sync.Mutex
	messages []string

	Err error
}

func (s *CaptureSink) Push(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.messages = append(s.messages, message)
	return nil
}

// Messages returns a copy of everything delivered so far.
func (s *CaptureSink) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

// Reset discards recorded messages.
func (s *CaptureSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}
