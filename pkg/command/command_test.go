package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yametech/celeritas/pkg/resp3"
)

// TestBuilderScenario5 covers spec.md §8 scenario 5: building *3/set/a/123
// via the builder yields the exact wire bytes and accessor values.
func TestBuilderScenario5(t *testing.T) {
	b := NewBuilder()
	b.WriteArrayHeader(3)
	b.WriteBlob([]byte("set"))
	b.WriteBlob([]byte("a"))
	b.WriteBlob([]byte("123"))
	cmd := b.Command()

	assert.Equal(t, "*3\r\n$3\r\nset\r\n$1\r\na\r\n$3\r\n123\r\n", string(cmd.GetData()))
	assert.Equal(t, 3, cmd.Argc())

	for i, want := range []string{"set", "a", "123"} {
		got, err := cmd.GetStr(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

// TestCommandConsistency covers §8 property 5.
func TestCommandConsistency(t *testing.T) {
	args := [][]byte{[]byte("a0"), []byte("a1"), []byte("a2")}

	b := NewBuilder()
	b.WriteArrayHeader(len(args))
	for _, a := range args {
		b.WriteBlob(a)
	}
	cmd := b.Command()

	for i, a := range args {
		got, err := cmd.GetSlice(i)
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	v, err := cmd.GetValue()
	require.NoError(t, err)
	want := resp3.Array(resp3.Bulk(args[0]), resp3.Bulk(args[1]), resp3.Bulk(args[2]))
	assert.True(t, want.Equal(v))
}

func TestGetSliceOutOfRange(t *testing.T) {
	cmd := NewBuilder().Command()
	_, err := cmd.GetSlice(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGetStrRejectsInvalidUTF8(t *testing.T) {
	b := NewBuilder()
	b.WriteBlob([]byte{0xff, 0xfe})
	cmd := b.Command()
	_, err := cmd.GetStr(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGetVecCopies(t *testing.T) {
	b := NewBuilder()
	original := []byte("abc")
	b.WriteBlob(original)
	cmd := b.Command()

	vec, err := cmd.GetVec(0)
	require.NoError(t, err)
	vec[0] = 'z'

	slice, err := cmd.GetSlice(0)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(slice))
}
