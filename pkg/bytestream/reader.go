package bytestream

import intbytestream "github.com/backbone81/byte-stream/internal/bytestream"

// Reader provides functionality for reading a byte source one byte at a time. It pulls fixed-size chunks from the
// source into an internal buffer and serves bytes out of that buffer, refilling it on demand.
//
// Instances of this struct are NOT safe for concurrent use. Either use it on a single Go routine or provide your own
// external synchronization.
type Reader = intbytestream.Reader

// DefaultBufferSize is the buffer size used by NewReader.
const DefaultBufferSize = intbytestream.DefaultBufferSize

// ErrEmptySource is returned by the constructors when the source delivers no data at all.
var ErrEmptySource = intbytestream.ErrEmptySource

// ErrBufferSize is returned by NewReaderSize when the requested buffer size is below one byte.
var ErrBufferSize = intbytestream.ErrBufferSize

// NewReader creates a new Reader over the given source with the default buffer size.
var NewReader = intbytestream.NewReader

// NewReaderSize creates a new Reader over the given source with an explicit buffer size.
var NewReaderSize = intbytestream.NewReaderSize

// Run invokes fn with the given reader and afterward checks if any refill failed while fn was consuming it. On
// failure it returns that error and discards the result of fn.
//
// This is a wrapper function instead of an alias because function aliases cannot carry type parameters.
func Run[T any](reader *Reader, fn func(reader *Reader) T) (T, error) {
	return intbytestream.Run(reader, fn)
}
