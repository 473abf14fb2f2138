package bytestream

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/webmafia/fast"

	"github.com/backbone81/byte-stream/internal/utils"
)

// DefaultBufferSize is the buffer size used by NewReader.
const DefaultBufferSize = 8192

var (
	ErrEmptySource = errors.New("the source delivered no data")
	ErrBufferSize  = errors.New("the buffer size must be at least one byte")
)

// Reader provides functionality for reading a byte source one byte at a time. It pulls fixed-size chunks from the
// source into an internal buffer and serves bytes out of that buffer, refilling it on demand. This avoids issuing
// one read against the source per byte.
//
// It is not thread safe and should only be used in a single go routine. Otherwise, external synchronization must be
// provided.
type Reader struct {
	noCopy utils.NoCopy

	// The source to read from.
	source io.Reader

	// The buffer holding the most recently read chunk. It is allocated once at construction and overwritten in place
	// on every refill.
	buffer []byte

	// The index of the next unread byte within the buffer. Always cursor <= validLength.
	cursor int

	// The number of bytes in the buffer holding real data from the last fill. Bytes at index >= validLength are stale
	// and are never served.
	validLength int

	// The total number of bytes served so far.
	offset int64

	// An error the source reported alongside data. The data is served first, the error terminates the stream at the
	// next refill.
	fillErr error

	// Set once the reader has reached the end of the source or a failed refill. Every Next() afterward returns false
	// without touching the source again.
	terminal bool

	// The value the reader returns. Only contains useful data after Next() returned true.
	value byte

	// The error of the refill which terminated the stream. If this is nil after Next() returned false, the source was
	// read to its end.
	err error
}

// NewReader creates a new Reader over the given source with the default buffer size.
//
// It performs the first fill against the source. A source which delivers no data at all fails construction with
// ErrEmptySource.
func NewReader(source io.Reader) (*Reader, error) {
	return NewReaderSize(source, DefaultBufferSize)
}

// NewReaderSize creates a new Reader over the given source with an explicit buffer size.
//
// It performs the first fill against the source. A source which delivers no data at all fails construction with
// ErrEmptySource.
func NewReaderSize(source io.Reader, size int) (*Reader, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBufferSize, size)
	}

	result := Reader{
		source: source,
		// The buffer is not zeroed on allocation. Every byte served is below validLength and was written by the
		// source first.
		buffer: fast.MakeNoZeroCap(size, size),
	}
	validLength, err := result.fill()
	if validLength == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("filling the buffer: %w", err)
		}
		return nil, ErrEmptySource
	}
	result.validLength = validLength
	result.fillErr = err
	return &result, nil
}

// Next reports if a byte has been successfully read. When it returns true, Value() contains the byte. When it returns
// false, the reader has terminated permanently: Err() is nil if the source was read to its end, or returns the error
// of the failed refill. Every call after the first false keeps returning false.
func (r *Reader) Next() bool {
	if r.cursor == r.validLength {
		if !r.refill() {
			return false
		}
	}
	r.value = r.buffer[r.cursor]
	r.cursor++
	r.offset++
	return true
}

// refill overwrites the buffer with the next chunk from the source and reports if at least one byte is available.
// Reaching the end of the source and a failed read are both terminal.
func (r *Reader) refill() bool {
	if r.terminal {
		return false
	}
	if r.fillErr != nil {
		// The source reported this error alongside the data of the previous fill. That data has been fully served,
		// so the error takes effect now.
		if !errors.Is(r.fillErr, io.EOF) {
			r.err = r.fillErr
		}
		r.terminal = true
		return false
	}

	validLength, err := r.fill()
	if validLength == 0 {
		// A read of zero bytes without an error counts as end of data as well. Retrying the source would turn a
		// misbehaving source into a busy loop.
		if err != nil && !errors.Is(err, io.EOF) {
			r.err = err
		}
		r.terminal = true
		return false
	}
	r.validLength = validLength
	r.cursor = 0
	r.fillErr = err
	return true
}

// fill issues a single read against the source, overwriting the buffer from offset 0.
func (r *Reader) fill() (int, error) {
	startTime := time.Now()
	n, err := r.source.Read(r.buffer)
	if n < 0 || len(r.buffer) < n {
		panic("bytestream: source returned an invalid read count")
	}
	RefillTotal.Inc()
	RefillBytesTotal.Add(float64(n))
	RefillDuration.Observe(time.Since(startTime).Seconds())
	return n, err
}

// Value returns the last byte read from the source. The value is only valid after Next() returned true.
func (r *Reader) Value() byte {
	return r.value
}

// Err returns the error of the refill which terminated the reader. It returns nil while the reader is still
// producing bytes and after the source was cleanly read to its end.
func (r *Reader) Err() error {
	return r.err
}

// Offset returns the total number of bytes served so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// BufferSize returns the buffer size chosen at construction.
func (r *Reader) BufferSize() int {
	return len(r.buffer)
}

// ReadByte reads and returns the next byte. It returns io.EOF after the source was cleanly read to its end, or the
// error of the failed refill.
//
// ReadByte shares the cursor with Next(), which makes the Reader usable with everything consuming an io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	if !r.Next() {
		if r.err != nil {
			return 0, r.err
		}
		return 0, io.EOF
	}
	return r.value, nil
}

// Reader implements io.ByteReader.
var _ io.ByteReader = (*Reader)(nil)

// All returns an iterator over the remaining bytes of the source. The iteration stops early and silently when a
// refill fails. Callers who need to tell the end of the source apart from a failed read must check Err() afterward
// or use Run().
func (r *Reader) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for r.Next() {
			if !yield(r.value) {
				return
			}
		}
	}
}

// Run invokes fn with the given reader and afterward checks if any refill failed while fn was consuming it. On
// failure it returns that error and discards the result of fn. This lets a caller drive an entire consumption pass
// and learn atomically at the end whether the pass saw all data.
//
// This is a package level function because methods cannot have type parameters.
func Run[T any](reader *Reader, fn func(reader *Reader) T) (T, error) {
	result := fn(reader)
	if err := reader.Err(); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
