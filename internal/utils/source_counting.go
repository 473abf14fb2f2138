package utils

import (
	"io"
)

// CountingSource wraps a byte source and records how often and how much it was read. It allows tests to assert how
// many buffer fills a consumption pass issued against the source.
type CountingSource struct {
	source    io.Reader
	readCalls int
	bytesRead int
}

func NewCountingSource(source io.Reader) *CountingSource {
	return &CountingSource{
		source: source,
	}
}

func (c *CountingSource) Read(p []byte) (int, error) {
	n, err := c.source.Read(p)
	c.readCalls++
	c.bytesRead += n
	return n, err
}

// ReadCalls returns the number of reads issued against the wrapped source.
func (c *CountingSource) ReadCalls() int {
	return c.readCalls
}

// BytesRead returns the total number of bytes delivered by the wrapped source.
func (c *CountingSource) BytesRead() int {
	return c.bytesRead
}
