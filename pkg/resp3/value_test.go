package resp3

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Value
		equal bool
	}{
		{"bulk equal", Bulk([]byte("hi")), Bulk([]byte("hi")), true},
		{"bulk differ", Bulk([]byte("hi")), Bulk([]byte("ho")), false},
		{"kind mismatch", Bulk([]byte("hi")), SimpleStr("hi"), false},
		{"int equal", Int(42), Int(42), true},
		{"null equal", Null(), Null(), true},
		{"double nan equal", Double(nan()), Double(nan()), true},
		{"double signed zero differs", Double(0), Double(negZero()), false},
		{"bigint equal", BigInt(big.NewInt(123)), BigInt(big.NewInt(123)), true},
		{"bigint differ", BigInt(big.NewInt(123)), BigInt(big.NewInt(124)), false},
		{
			"array equal",
			Array(Int(1), Bulk([]byte("x"))),
			Array(Int(1), Bulk([]byte("x"))),
			true,
		},
		{
			"map equal",
			Map(Pair{Key: BulkString("k"), Value: Int(1)}),
			Map(Pair{Key: BulkString("k"), Value: Int(1)}),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a.Equal(tt.b))
		})
	}
}

func TestValueEqualConsidersAttrs(t *testing.T) {
	ttl := Map(Pair{Key: BulkString("ttl"), Value: Int(100)})
	withAttrs := Int(42)
	withAttrs.Attrs = &ttl
	plain := Int(42)

	assert.False(t, plain.Equal(withAttrs))
	assert.False(t, withAttrs.Equal(plain))

	sameAttrs := Int(42)
	sameAttrs.Attrs = &ttl
	assert.True(t, withAttrs.Equal(sameAttrs))

	otherTTL := Map(Pair{Key: BulkString("ttl"), Value: Int(200)})
	differentAttrs := Int(42)
	differentAttrs.Attrs = &otherTTL
	assert.False(t, withAttrs.Equal(differentAttrs))
}

func TestValuePredicates(t *testing.T) {
	assert.True(t, SimpleErr("oops").IsError())
	assert.True(t, BlobErr("oops").IsError())
	assert.False(t, SimpleStr("ok").IsError())

	assert.True(t, Null().IsNil())
	assert.False(t, Int(0).IsNil())

	assert.True(t, SimpleStr("ok").IsStatus())
	assert.False(t, Bulk([]byte("ok")).IsStatus())
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func negZero() float64 {
	return math.Copysign(0, -1)
}
