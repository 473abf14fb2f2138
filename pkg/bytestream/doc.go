// Package bytestream provides a buffered byte-at-a-time iterator over an arbitrary byte source.
//
//   - The source is anything implementing io.Reader. The reader owns the source for its lifetime and issues one read
//     per buffer fill instead of one read per byte.
//   - The internal buffer is allocated once at construction and overwritten in place on every refill.
//   - Reaching the end of the source and a failed read both terminate the iteration permanently. The error of a
//     failed refill is recorded on the reader and can be inspected with Err() or Run() after the fact, since the
//     per-byte contract has no channel for mid-stream errors.
package bytestream
