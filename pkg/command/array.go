package command

import (
	"fmt"

	"github.com/yametech/celeritas/pkg/resp3"
)

// maxMultibulkLen and maxBulkLen are the same caps original_source's
// parse_array enforces (1,048,576 elements / 512 MiB per bulk), carried
// into spec.md §4.E verbatim.
const (
	maxMultibulkLen = 1024 * 1024
	maxBulkLen      = 512 * 1024 * 1024
)

// ParseArray parses a pure RESP2 multi-bulk frame directly into a Command
// in a single pass, without materializing intermediate resp3.Values, per
// spec.md §4.E. It returns the Command (sharing input's backing array)
// and the exact number of bytes consumed.
func ParseArray(input []byte) (*Command, int, error) {
	pos := 0

	// Tolerate leading bare \r\n pairs.
	for pos < len(input) && input[pos] == '\r' {
		if pos+1 >= len(input) {
			return nil, 0, errIncomplete()
		}
		if input[pos+1] != '\n' {
			return nil, 0, errBadProtocol("expected \\r\\n separator, got \\r%c", input[pos+1])
		}
		pos += 2
	}

	if pos >= len(input) {
		return nil, 0, errIncomplete()
	}
	if input[pos] != '*' {
		return nil, 0, errBadProtocol("expected '*', got '%c'", input[pos])
	}
	pos++

	count, consumed, err := parseLengthLine(input, pos, "multibulk")
	if err != nil {
		return nil, 0, err
	}
	pos += consumed
	argc := 0
	if count != nil {
		argc = *count
	}
	if argc > maxMultibulkLen {
		return nil, 0, errBadProtocol("invalid multibulk length")
	}

	argv := make([]Span, 0, argc)
	for i := 0; i < argc; i++ {
		if pos >= len(input) {
			return nil, 0, errIncomplete()
		}
		if input[pos] != '$' {
			return nil, 0, errBadProtocol("expected '$', got '%c'", input[pos])
		}
		pos++

		arglen, consumed, err := parseLengthLine(input, pos, "bulk")
		if err != nil {
			return nil, 0, err
		}
		if arglen == nil {
			return nil, 0, errBadProtocol("invalid bulk length")
		}
		if *arglen > maxBulkLen {
			return nil, 0, errBadProtocol("invalid bulk length")
		}
		pos += consumed

		argv = append(argv, Span{Pos: pos, Len: *arglen})
		pos += *arglen + 2
		if pos > len(input) || (pos == len(input) && i != argc-1) {
			return nil, 0, errIncomplete()
		}
	}

	return &Command{data: input, argv: argv}, pos, nil
}

// parseLengthLine parses a decimal length terminated by "\r\n" starting
// at input[pos:]. A leading '-' yields (nil, consumed) — "no length" —
// matching original_source's parse_int tolerance for the multibulk
// count; callers that can't accept a missing length treat nil as an
// error themselves.
func parseLengthLine(input []byte, pos int, name string) (*int, int, error) {
	if pos >= len(input) {
		return nil, 0, errIncomplete()
	}
	i := pos
	var n int
	var negative bool
	if input[i] == '-' {
		negative = true
		i++
	}
	start := i
	for i < len(input) && input[i] != '\r' {
		c := input[i]
		if c < '0' || c > '9' {
			return nil, 0, errBadProtocol("invalid %s length", name)
		}
		n = n*10 + int(c-'0')
		i++
	}
	if i == len(input) {
		return nil, 0, errIncomplete()
	}
	if i == start && !negative {
		return nil, 0, errBadProtocol("invalid %s length", name)
	}
	if i+1 >= len(input) {
		return nil, 0, errIncomplete()
	}
	if input[i+1] != '\n' {
		return nil, 0, errBadProtocol("expected \\r\\n separator, got \\r%c", input[i+1])
	}
	consumed := i + 2 - pos
	if negative {
		return nil, consumed, nil
	}
	return &n, consumed, nil
}

func errIncomplete() error {
	return &resp3.ParseError{Kind: resp3.ErrIncomplete}
}

func errBadProtocol(format string, args ...interface{}) error {
	return &resp3.ParseError{Kind: resp3.ErrBadProtocol, Reason: fmt.Sprintf(format, args...)}
}
