// Package resp3 implements the typed, round-trippable value model for the
// Redis Serialization Protocol, RESP2 and RESP3 alike, in the spirit of
// the teacher's pkg/resp package: a tagged struct with a Kind marker and
// plain fields for each variant's payload, rather than an interface sum.
//
// A Value is produced by Decoder.ParseValue and turned back into wire
// bytes by Encode. Two Values are equal (via Value.Equal) iff they would
// serialize to identical bytes for a given RESP version.
package resp3

import (
	"math"
	"math/big"
)

// Kind identifies which RESP frame variant a Value holds.
type Kind byte

const (
	KindBlob Kind = iota
	KindSimpleString
	KindSimpleError
	KindNumber
	KindNull
	KindDouble
	KindBoolean
	KindBlobError
	KindVerbatimString
	KindBigInt
	KindArray
	KindMap
	KindSet
	KindAttribute
	KindPush
)

// Pair is one insertion-ordered key/value entry of a Map or Attribute.
type Pair struct {
	Key   Value
	Value Value
}

// Value is the tagged union of every RESP2/RESP3 frame.
//
// Only the fields relevant to Kind are meaningful; the zero value of the
// others is ignored by Encode and Equal.
type Value struct {
	Kind Kind

	// Blob carries the payload for Blob, SimpleString, SimpleError,
	// BlobError and VerbatimString (VerbatimString's payload excludes the
	// "txt:" format tag, which is reconstructed from Format on encode).
	Blob []byte

	// Format is the 3-byte format tag of a VerbatimString ("txt").
	Format string

	Num  int64
	Dbl  float64
	Bool bool
	Big  *big.Int

	// Elems holds the ordered children of Array, Set and Push.
	Elems []Value

	// Pairs holds the insertion-ordered entries of Map and Attribute.
	Pairs []Pair

	// Attrs, when non-nil, is the Attribute frame that decorated this
	// Value on the wire (spec.md §9: modeled as a field, not a sibling
	// frame or a back-pointer).
	Attrs *Value
}

// Blob-like constructors used throughout the codebase and tests.

func Bulk(b []byte) Value              { return Value{Kind: KindBlob, Blob: b} }
func BulkString(s string) Value        { return Value{Kind: KindBlob, Blob: []byte(s)} }
func SimpleStr(s string) Value         { return Value{Kind: KindSimpleString, Blob: []byte(s)} }
func SimpleErr(s string) Value         { return Value{Kind: KindSimpleError, Blob: []byte(s)} }
func BlobErr(s string) Value           { return Value{Kind: KindBlobError, Blob: []byte(s)} }
func Int(n int64) Value                { return Value{Kind: KindNumber, Num: n} }
func Double(f float64) Value           { return Value{Kind: KindDouble, Dbl: f} }
func Bool(b bool) Value                { return Value{Kind: KindBoolean, Bool: b} }
func Null() Value                      { return Value{Kind: KindNull} }
func Verbatim(format, text string) Value {
	return Value{Kind: KindVerbatimString, Format: format, Blob: []byte(text)}
}
func BigInt(n *big.Int) Value   { return Value{Kind: KindBigInt, Big: n} }
func Array(elems ...Value) Value { return Value{Kind: KindArray, Elems: elems} }
func Set(elems ...Value) Value   { return Value{Kind: KindSet, Elems: elems} }
func Push(elems ...Value) Value  { return Value{Kind: KindPush, Elems: elems} }
func Map(pairs ...Pair) Value    { return Value{Kind: KindMap, Pairs: pairs} }

// IsError reports whether v is a SimpleError or BlobError.
func (v Value) IsError() bool {
	return v.Kind == KindSimpleError || v.Kind == KindBlobError
}

// IsNil reports whether v is Null.
func (v Value) IsNil() bool {
	return v.Kind == KindNull
}

// IsStatus reports whether v is a SimpleString status reply.
func (v Value) IsStatus() bool {
	return v.Kind == KindSimpleString
}

// Equal reports whether v and other would serialize to identical bytes.
// Double equality is bit-pattern equality (math.Float64bits), per spec.md
// §9, so NaN and signed zero behave deterministically.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	if (v.Attrs == nil) != (other.Attrs == nil) {
		return false
	}
	if v.Attrs != nil && !v.Attrs.Equal(*other.Attrs) {
		return false
	}
	switch v.Kind {
	case KindBlob, KindSimpleString, KindSimpleError, KindBlobError:
		return bytesEqual(v.Blob, other.Blob)
	case KindVerbatimString:
		return v.Format == other.Format && bytesEqual(v.Blob, other.Blob)
	case KindNumber:
		return v.Num == other.Num
	case KindNull:
		return true
	case KindDouble:
		return math.Float64bits(v.Dbl) == math.Float64bits(other.Dbl)
	case KindBoolean:
		return v.Bool == other.Bool
	case KindBigInt:
		if v.Big == nil || other.Big == nil {
			return v.Big == other.Big
		}
		return v.Big.Cmp(other.Big) == 0
	case KindArray, KindSet, KindPush:
		if len(v.Elems) != len(other.Elems) {
			return false
		}
		for i := range v.Elems {
			if !v.Elems[i].Equal(other.Elems[i]) {
				return false
			}
		}
		return true
	case KindMap, KindAttribute:
		if len(v.Pairs) != len(other.Pairs) {
			return false
		}
		for i := range v.Pairs {
			if !v.Pairs[i].Key.Equal(other.Pairs[i].Key) || !v.Pairs[i].Value.Equal(other.Pairs[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
