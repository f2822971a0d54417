package proxy

import (
	"io"
	"net"
	"sync"

	"go.uber.org/zap"
)

// Forward implements spec.md §4.F's alternative forwarding handler: every
// byte received from a client connection is spliced, unparsed, to a
// single fixed upstream address, and every byte the upstream sends back
// is spliced back to the client. No RESP framing happens on this path at
// all, which is the point: it lets the proxy sit in front of a real
// Redis-compatible server without decoding anything.
//
// The splice loop itself is adapted from the teacher's
// handleTLSConn/acceptTLSConnections pair in the now-removed root
// redhub.go (that code proxied a TLS listener onto the plain TCP gnet
// listener with the identical two-goroutine io.Copy pattern); here the
// pattern instead bridges an accepted client connection onto the
// configured upstream, mirroring original_source's
// server/src/lib.rs Server::transfer.
type Forward struct {
	upstreamAddr string
	logger       *zap.Logger

	mu       sync.Mutex
	listener net.Listener
	running  bool
}

// NewForward returns a Forward that splices every accepted connection to
// upstreamAddr (host:port, no scheme).
func NewForward(upstreamAddr string, logger *zap.Logger) *Forward {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Forward{upstreamAddr: upstreamAddr, logger: logger}
}

// ListenAndServe accepts connections on addr (host:port) and splices each
// to the upstream until Close is called. It blocks until the listener is
// closed.
func (f *Forward) ListenAndServe(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.listener = ln
	f.running = true
	f.mu.Unlock()

	for {
		conn, err := ln.Accept()
		if err != nil {
			f.mu.Lock()
			stopped := !f.running
			f.mu.Unlock()
			if stopped {
				return nil
			}
			continue
		}
		go f.splice(conn)
	}
}

// Close stops accepting new connections. In-flight splices drain on
// their own once both sides see EOF or an error.
func (f *Forward) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.running {
		return nil
	}
	f.running = false
	return f.listener.Close()
}

func (f *Forward) splice(client net.Conn) {
	defer client.Close()

	upstream, err := net.Dial("tcp", f.upstreamAddr)
	if err != nil {
		f.logger.Warn("dial upstream failed", zap.String("upstream", f.upstreamAddr), zap.Error(err))
		return
	}
	defer upstream.Close()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, _ = io.Copy(upstream, client)
		if c, ok := upstream.(interface{ CloseWrite() error }); ok {
			_ = c.CloseWrite()
		}
	}()
	go func() {
		defer wg.Done()
		_, _ = io.Copy(client, upstream)
		if c, ok := client.(interface{ CloseWrite() error }); ok {
			_ = c.CloseWrite()
		}
	}()

	wg.Wait()
}
