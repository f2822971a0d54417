package command

import (
	"strconv"

	"github.com/yametech/celeritas/pkg/resp3"
)

// Builder constructs a Command incrementally, mirroring the teacher's
// resp.Writer append-only style but additionally tracking an argv span
// for every argument written, per spec.md §4.D. Every method mutates in
// place and returns the Builder so calls can be chained.
type Builder struct {
	data []byte
	argv []Span
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WriteArrayHeader appends "*<n>\r\n". It does not push an argv entry:
// the header is framing, not an argument.
func (b *Builder) WriteArrayHeader(n int) *Builder {
	b.data = append(b.data, '*')
	b.data = strconv.AppendInt(b.data, int64(n), 10)
	b.data = append(b.data, '\r', '\n')
	return b
}

// WriteSimple appends "+<s>\r\n" and records one argv span covering the
// payload bytes.
func (b *Builder) WriteSimple(s []byte) *Builder {
	b.data = append(b.data, '+')
	pos := len(b.data)
	b.data = append(b.data, s...)
	b.argv = append(b.argv, Span{Pos: pos, Len: len(s)})
	b.data = append(b.data, '\r', '\n')
	return b
}

// WriteBlob appends "$<len>\r\n<payload>\r\n" and records one argv span
// covering the payload bytes only (excluding prefix and CRLF).
func (b *Builder) WriteBlob(s []byte) *Builder {
	b.data = append(b.data, '$')
	b.data = strconv.AppendInt(b.data, int64(len(s)), 10)
	b.data = append(b.data, '\r', '\n')
	pos := len(b.data)
	b.data = append(b.data, s...)
	b.argv = append(b.argv, Span{Pos: pos, Len: len(s)})
	b.data = append(b.data, '\r', '\n')
	return b
}

// Command freezes the builder's state into a read-only Command.
func (b *Builder) Command() *Command {
	return &Command{data: b.data, argv: b.argv}
}

// WriteArray is the convenience writer of spec.md §4.D: it constructs a
// complete multi-bulk command frame ["*<1+len(args)>", "$…\r\n<op>",
// "$…\r\n<a>"…] and returns it already parsed as a Value.
func WriteArray(op string, args ...[]byte) resp3.Value {
	b := NewBuilder()
	b.WriteArrayHeader(1 + len(args))
	b.WriteBlob([]byte(op))
	for _, a := range args {
		b.WriteBlob(a)
	}
	v, _ := b.Command().GetValue()
	return v
}

// WriteSimpleValue yields a Value::SimpleString(content), the second
// convenience writer of spec.md §4.D.
func WriteSimpleValue(content string) resp3.Value {
	return resp3.SimpleStr(content)
}
