// Package command implements the append-only command wire buffer and
// parallel argument-span index of spec.md §3/§4.D, generalizing the
// teacher's pkg/resp.Writer (a plain byte-appending builder with no
// argument index) and drawing the span bookkeeping directly from
// original_source/parser/src/command.rs's Argument{pos,len}/Command pair.
package command

import (
	"errors"
	"unicode/utf8"

	"github.com/yametech/celeritas/pkg/resp3"
)

// ErrInvalidArgument is returned by the accessor methods when an argv
// index is out of range or the requested bytes are not valid UTF-8.
var ErrInvalidArgument = errors.New("invalid argument")

// Span is one argument's (position, length) pair into a Command's data
// buffer. The payload at data[Pos:Pos+Len] excludes framing bytes.
type Span struct {
	Pos int
	Len int
}

// Command is the append-only wire buffer plus argv index of spec.md §3.
// It is created empty (via NewBuilder) and mutated only through Builder
// methods; once built it is read-only and safe to share.
type Command struct {
	data []byte
	argv []Span
}

// GetSlice returns the raw bytes of argument i without copying.
func (c *Command) GetSlice(i int) ([]byte, error) {
	if i < 0 || i >= len(c.argv) {
		return nil, ErrInvalidArgument
	}
	a := c.argv[i]
	return c.data[a.Pos : a.Pos+a.Len], nil
}

// GetStr returns argument i validated as UTF-8 text.
func (c *Command) GetStr(i int) (string, error) {
	b, err := c.GetSlice(i)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidArgument
	}
	return string(b), nil
}

// GetVec returns a copy of argument i's bytes.
func (c *Command) GetVec(i int) ([]byte, error) {
	b, err := c.GetSlice(i)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), b...), nil
}

// GetData returns the full underlying buffer, suitable for writing
// directly to the wire.
func (c *Command) GetData() []byte {
	return c.data
}

// Argc returns the number of arguments indexed by argv.
func (c *Command) Argc() int {
	return len(c.argv)
}

// GetValue parses the buffer back into an Array Value, equivalent to
// resp3.ParseRedisValue(c.GetData()).
func (c *Command) GetValue() (resp3.Value, error) {
	return resp3.ParseRedisValue(c.data)
}

