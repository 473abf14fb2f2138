package utils

// SourceLoop provides a stub for a byte source which returns the same data over and over again in an endless loop.
// It allows us to run large scale benchmarks without having to provide an actual big file on disk or memory.
type SourceLoop struct {
	Data   []byte
	Offset int
}

func (s *SourceLoop) Read(p []byte) (int, error) {
	copyBytes := min(len(p), len(s.Data)-s.Offset)
	copy(p, s.Data[s.Offset:s.Offset+copyBytes])
	s.Offset += copyBytes
	if s.Offset >= len(s.Data) {
		s.Offset = 0
	}
	return copyBytes, nil
}
