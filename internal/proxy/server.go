// Package proxy implements the connection handler of spec.md §4.F: a
// gnet-based event loop that frames each connection with respcodec,
// dispatches recognized commands against a shared Store, and (via
// Forward, in forward.go) can instead splice bytes to a fixed upstream
// with no parsing at all.
//
// The event loop itself is a direct generalization of the teacher's
// redhub.go RedHub type: same OnBoot/OnOpen/OnClose/OnTraffic/OnTick
// shape, same per-connection buffer-accumulation strategy, swapped from
// the teacher's RESP2-only resp.ReadCommands to respcodec.Decode so
// RESP3 frames are recognized as well.
package proxy

import (
	"context"
	"time"

	"github.com/panjf2000/gnet/v2"
	"go.uber.org/zap"

	"github.com/yametech/celeritas/internal/raft"
	"github.com/yametech/celeritas/pkg/command"
	"github.com/yametech/celeritas/pkg/resp3"
	"github.com/yametech/celeritas/pkg/respcodec"
)

// Options configures a Server, trimmed to the knobs this proxy actually
// exercises from the teacher's much larger redhub.Options surface.
type Options struct {
	Multicore    bool
	ReusePort    bool
	NumEventLoop int
	TCPKeepAlive time.Duration
	Version      respcodec.Version
}

// connState accumulates bytes for one connection until a complete frame
// can be decoded, mirroring the teacher's connBuffer.
type connState struct {
	buf []byte
}

// Server is the dispatch front-end: it decodes frames with respcodec and
// answers SET/GET/PING/... via Dispatch against a shared Store.
type Server struct {
	*gnet.BuiltinEventEngine

	store      *Store
	replicator raft.Replicator
	logger     *zap.Logger
	version    respcodec.Version

	conns   map[gnet.Conn]*connState
	engine  gnet.Engine
	running bool
}

// NewServer returns a Server backed by store. If replicator is nil,
// raft.NullReplicator{} is used.
func NewServer(store *Store, replicator raft.Replicator, logger *zap.Logger) *Server {
	if replicator == nil {
		replicator = raft.NullReplicator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		store:      store,
		replicator: replicator,
		logger:     logger,
		version:    respcodec.RESP3,
		conns:      make(map[gnet.Conn]*connState),
	}
}

func (s *Server) OnBoot(eng gnet.Engine) gnet.Action {
	s.engine = eng
	return gnet.None
}

func (s *Server) OnOpen(c gnet.Conn) ([]byte, gnet.Action) {
	s.conns[c] = &connState{}
	return nil, gnet.None
}

func (s *Server) OnClose(c gnet.Conn, err error) gnet.Action {
	delete(s.conns, c)
	if err != nil {
		s.logger.Debug("connection closed", zap.Error(err))
	}
	return gnet.None
}

// OnTraffic decodes every complete frame currently buffered for c,
// dispatches each to Dispatch, and writes the accumulated replies in one
// Write call, exactly as the teacher's OnTraffic batches replies for a
// pipelined request. A protocol error closes the connection after a
// best-effort error reply, per spec.md §7.
func (s *Server) OnTraffic(c gnet.Conn) gnet.Action {
	cs, ok := s.conns[c]
	if !ok {
		cs = &connState{}
		s.conns[c] = cs
	}

	chunk, _ := c.Next(-1)
	if len(chunk) == 0 {
		return gnet.None
	}
	cs.buf = append(cs.buf, chunk...)

	var out []byte
	closeAfter := false

	for {
		v, n, err := respcodec.Decode(cs.buf)
		if err != nil {
			s.logger.Warn("protocol error, closing connection", zap.Error(err))
			out = respcodec.Encode(out, resp3.SimpleErr("Protocol error: "+err.Error()), s.version)
			if len(out) > 0 {
				_, _ = c.Write(out)
			}
			return gnet.Close
		}
		if n == 0 {
			break // incomplete: wait for more bytes
		}
		frame := cs.buf[:n]
		cs.buf = cs.buf[n:]

		reply, action := s.handleFrame(frame, v)
		// Frames handleFrame ignores get no reply at all.
		if v.Kind == resp3.KindArray && len(v.Elems) > 0 && v.Elems[0].Kind == resp3.KindBlob {
			out = respcodec.Encode(out, reply, s.version)
		}
		if action == CloseConn {
			closeAfter = true
			break
		}
	}

	if len(out) > 0 {
		_, _ = c.Write(out)
	}
	if closeAfter {
		return gnet.Close
	}
	return gnet.None
}

// handleFrame implements spec.md §4.F item 3: an Array whose first
// element is a Blob is interpreted as a command; anything else is logged
// and ignored.
func (s *Server) handleFrame(frame []byte, v resp3.Value) (resp3.Value, Action) {
	if v.Kind != resp3.KindArray || len(v.Elems) == 0 || v.Elems[0].Kind != resp3.KindBlob {
		s.logger.Debug("ignoring non-command frame", zap.Int("kind", int(v.Kind)))
		return resp3.Value{}, None
	}
	cmd, _, err := command.ParseArray(frame)
	if err != nil {
		return resp3.SimpleErr("ERR " + err.Error()), None
	}
	return Dispatch(s.store, s.replicator, cmd)
}

func (s *Server) OnTick() (time.Duration, gnet.Action) {
	return 0, gnet.None
}

// ListenAndServe starts the dispatch server on addr (e.g.
// "tcp://127.0.0.1:7000", the address original_source's
// server/src/redis.rs dispatch listener binds). It blocks until the
// server stops.
func ListenAndServe(addr string, opts Options, s *Server) error {
	var gopts []gnet.Option
	if opts.Multicore {
		gopts = append(gopts, gnet.WithMulticore(true))
	}
	if opts.ReusePort {
		gopts = append(gopts, gnet.WithReusePort(true))
	}
	if opts.NumEventLoop > 0 {
		gopts = append(gopts, gnet.WithNumEventLoop(opts.NumEventLoop))
	}
	if opts.TCPKeepAlive > 0 {
		gopts = append(gopts, gnet.WithTCPKeepAlive(opts.TCPKeepAlive))
	}
	if opts.Version != 0 {
		s.version = opts.Version
	}
	s.running = true
	err := gnet.Run(s, addr, gopts...)
	s.running = false
	return err
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	if !s.running {
		return nil
	}
	return s.engine.Stop(context.Background())
}
