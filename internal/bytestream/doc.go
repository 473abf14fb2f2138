// Package bytestream provides a buffered byte-at-a-time iterator over an arbitrary byte source.
//
//   - The source is anything implementing io.Reader: a file, a socket, an in-memory reader. The reader owns the
//     source for its lifetime and issues one read per buffer fill instead of one read per byte.
//   - The internal buffer is allocated once at construction and overwritten in place on every refill. The cursor and
//     the valid data boundary are plain integer indexes, so no byte outside the most recent fill is ever served.
//   - Reaching the end of the source and a failed read both terminate the iteration permanently. The error of a
//     failed refill is recorded on the reader and can be inspected after the fact, since the per-byte contract has
//     no channel for mid-stream errors.
package bytestream
