package resp3

import (
	"math"
	"strconv"
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// Encode returns the canonical wire bytes for v under the given RESP
// version (2 or 3). Null and SimpleError are the only version-sensitive
// variants, per spec.md §4.A.
func Encode(v Value, version int) []byte {
	var out []byte
	if v.Attrs != nil {
		out = append(out, encodeValue(nil, *v.Attrs, version)...)
	}
	return encodeValue(out, v, version)
}

func encodeValue(b []byte, v Value, version int) []byte {
	switch v.Kind {
	case KindBlob:
		return appendLength(b, '$', int64(len(v.Blob)), v.Blob)
	case KindSimpleString:
		return appendLine(b, '+', v.Blob)
	case KindSimpleError:
		if version <= 2 {
			return appendLine(b, '-', v.Blob)
		}
		return appendLength(b, '!', int64(len(v.Blob)), v.Blob)
	case KindBlobError:
		return appendLength(b, '!', int64(len(v.Blob)), v.Blob)
	case KindNumber:
		b = append(b, ':')
		b = strconv.AppendInt(b, v.Num, 10)
		return append(b, '\r', '\n')
	case KindNull:
		if version <= 2 {
			return append(b, '$', '-', '1', '\r', '\n')
		}
		return append(b, '_', '\r', '\n')
	case KindDouble:
		return append(b, encodeDouble(v.Dbl)...)
	case KindBoolean:
		b = append(b, '#')
		if v.Bool {
			b = append(b, 't')
		} else {
			b = append(b, 'f')
		}
		return append(b, '\r', '\n')
	case KindVerbatimString:
		format := v.Format
		if format == "" {
			format = "txt"
		}
		payload := append([]byte(format+":"), v.Blob...)
		return appendLength(b, '=', int64(len(payload)), payload)
	case KindBigInt:
		b = append(b, '(')
		if v.Big != nil {
			b = append(b, v.Big.String()...)
		} else {
			b = append(b, '0')
		}
		return append(b, '\r', '\n')
	case KindArray:
		return encodeSeq(b, '*', v.Elems, version)
	case KindSet:
		return encodeSeq(b, '~', v.Elems, version)
	case KindPush:
		return encodeSeq(b, '>', v.Elems, version)
	case KindMap:
		return encodeMap(b, '%', v.Pairs, version)
	case KindAttribute:
		return encodeMap(b, '|', v.Pairs, version)
	default:
		return b
	}
}

func encodeSeq(b []byte, tag byte, elems []Value, version int) []byte {
	b = append(b, tag)
	b = strconv.AppendInt(b, int64(len(elems)), 10)
	b = append(b, '\r', '\n')
	for _, e := range elems {
		b = append(b, Encode(e, version)...)
	}
	return b
}

func encodeMap(b []byte, tag byte, pairs []Pair, version int) []byte {
	b = append(b, tag)
	b = strconv.AppendInt(b, int64(len(pairs)), 10)
	b = append(b, '\r', '\n')
	for _, p := range pairs {
		b = append(b, Encode(p.Key, version)...)
		b = append(b, Encode(p.Value, version)...)
	}
	return b
}

func encodeDouble(f float64) []byte {
	switch {
	case math.IsInf(f, 1):
		return []byte(",inf\r\n")
	case math.IsInf(f, -1):
		return []byte(",-inf\r\n")
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	out := make([]byte, 0, len(s)+3)
	out = append(out, ',')
	out = append(out, s...)
	return append(out, '\r', '\n')
}

func appendLine(b []byte, tag byte, payload []byte) []byte {
	b = append(b, tag)
	b = append(b, payload...)
	return append(b, '\r', '\n')
}

func appendLength(b []byte, tag byte, n int64, payload []byte) []byte {
	b = append(b, tag)
	b = strconv.AppendInt(b, n, 10)
	b = append(b, '\r', '\n')
	b = append(b, payload...)
	return append(b, '\r', '\n')
}
