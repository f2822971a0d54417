package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yametech/celeritas/internal/raft"
	"github.com/yametech/celeritas/pkg/resp3"
	"github.com/yametech/celeritas/pkg/respcodec"
)

func newTestServer() *Server {
	return NewServer(NewStore(), raft.NullReplicator{}, zap.NewNop())
}

// TestHandleFrameDispatchesCommand covers the Array-of-Blob branch of
// handleFrame: a well-formed command frame is parsed and dispatched.
func TestHandleFrameDispatchesCommand(t *testing.T) {
	s := newTestServer()
	frame := []byte("*1\r\n$4\r\nPING\r\n")
	v, _, err := respcodec.Decode(frame)
	require.NoError(t, err)

	reply, action := s.handleFrame(frame, v)
	assert.Equal(t, resp3.SimpleStr("PONG"), reply)
	assert.Equal(t, None, action)
}

// TestHandleFrameIgnoresNonCommandFrame covers spec.md §4.F item 3: a
// frame that isn't an Array of Blobs (e.g. a bare SimpleString) is logged
// and ignored rather than dispatched.
func TestHandleFrameIgnoresNonCommandFrame(t *testing.T) {
	s := newTestServer()
	frame := []byte("+hello\r\n")
	v, _, err := respcodec.Decode(frame)
	require.NoError(t, err)

	reply, action := s.handleFrame(frame, v)
	assert.Equal(t, resp3.Value{}, reply)
	assert.Equal(t, None, action)
}

func TestNewServerDefaultsReplicatorAndLogger(t *testing.T) {
	s := NewServer(NewStore(), nil, nil)
	assert.NotNil(t, s.replicator)
	assert.NotNil(t, s.logger)
}
