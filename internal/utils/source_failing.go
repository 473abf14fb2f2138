package utils

import (
	"errors"
)

// ErrSourceFailed is the error FailingSource reports once its threshold is exceeded.
var ErrSourceFailed = errors.New("simulated source failure")

// FailingSource provides a stub for a byte source which serves NUL bytes until the cumulative requested length
// exceeds FailAfter, and fails every read from then on. It allows tests to exercise the behavior of a read error
// in the middle of a stream.
type FailingSource struct {
	// The cumulative requested length after which reads fail.
	FailAfter int

	requested int
}

func (s *FailingSource) Read(p []byte) (int, error) {
	s.requested += len(p)
	if s.requested > s.FailAfter {
		return 0, ErrSourceFailed
	}
	clear(p)
	return len(p), nil
}
