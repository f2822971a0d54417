// Package respcodec adapts resp3's Value model and stream decoder to a
// connection's read/write buffer, per spec.md §4.C. It generalizes
// original_source's parser/src/codec.go RedisCodec (a tokio_util
// Decoder/Encoder pair) to Go's non-blocking gnet model: Decode operates
// directly on the byte slice gnet already assembled instead of
// implementing tokio_util's Decoder trait against a BytesMut.
package respcodec

import "github.com/yametech/celeritas/pkg/resp3"

// Version selects which RESP revision Encode targets for the
// version-sensitive variants (Null, SimpleError).
type Version int

const (
	RESP2 Version = 2
	RESP3 Version = 3
)

// Decode attempts to parse one complete frame from the front of buf.
//
// On success it returns the parsed Value and the number of bytes that
// compose the frame; the caller must advance its read cursor by exactly
// that many bytes. On *incomplete* input (not enough bytes yet) it
// returns a zero Value, 0, and a nil error — signaling "need more bytes"
// without treating it as a failure. On a genuine protocol violation it
// returns a non-nil error and the caller should close the connection.
//
// Empty input yields (zero Value, 0, nil), not an error.
func Decode(buf []byte) (resp3.Value, int, error) {
	if len(buf) == 0 {
		return resp3.Value{}, 0, nil
	}
	v, n, err := resp3.ParseValue(buf)
	if err != nil {
		if resp3.Incomplete(err) {
			return resp3.Value{}, 0, nil
		}
		return resp3.Value{}, 0, err
	}
	return v, n, nil
}

// Encode appends the canonical wire bytes for v to out and returns the
// extended slice. It is total: encoding a well-formed Value never fails.
func Encode(out []byte, v resp3.Value, version Version) []byte {
	return append(out, resp3.Encode(v, int(version))...)
}
