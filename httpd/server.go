package httpd

import (
	"net"
	"strconv"
	"sync"
	"sync/atomic"

	"vex0.dev/go/httpd/internal/obs"
)

// DefaultAddr is the address ListenAndServe binds when Addr is empty.
const DefaultAddr = "127.0.0.1:4221"

// Server accepts TCP connections and answers exactly one request on
// each. Connections are handled one goroutine apiece with no cap and
// no read deadline; a slow client occupies its goroutine until the
// transport errors.
//
// The zero value is usable: Addr defaults to DefaultAddr, Store to
// the current directory, Logger and Meter to no-ops. All fields are
// read-only once Serve starts.
type Server struct {
	Addr   string
	Store  FileStore
	Logger obs.Logger
	Meter  obs.Meter

	mu     sync.Mutex
	ln     net.Listener
	closed atomic.Bool
}

func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve runs the accept loop on l until Close. A failed accept is
// logged and counted, never fatal; the loop only exits on Close.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	s.ln = l
	s.mu.Unlock()
	// Close may have run before the listener was published; it had
	// nothing to close then, so close here instead of accepting.
	if s.closed.Load() {
		_ = l.Close()
		return nil
	}
	defer l.Close()
	for {
		c, err := l.Accept()
		if err != nil {
			if s.closed.Load() {
				return nil
			}
			s.logf(obs.Error, "accept: %v", err)
			s.meter().Counter("httpd.accept_errors", 1)
			continue
		}
		s.meter().Counter("httpd.connections", 1)
		go s.serveConn(c)
	}
}

// Close stops the accept loop. In-flight connections run to
// completion. Safe to call from any goroutine, before or after Serve
// has published its listener.
func (s *Server) Close() error {
	s.mu.Lock()
	s.closed.Store(true)
	ln := s.ln
	s.mu.Unlock()
	if ln != nil {
		return ln.Close()
	}
	return nil
}

// serveConn runs one connection through parse, route, negotiate and
// serialize, then closes it. Any failure is logged and ends this
// connection alone; nothing propagates to the accept loop.
func (s *Server) serveConn(c net.Conn) {
	defer c.Close()
	id := connID()
	req, err := ReadRequest(c)
	if err != nil {
		s.logf(obs.Warn, "conn %s: read request: %v", id, err)
		return
	}
	resp, err := s.route(req)
	if err != nil {
		s.logf(obs.Warn, "conn %s: %s %s: %v", id, req.Method, req.Path, err)
		return
	}
	// Negotiation runs after routing so Content-Length can be fixed
	// up against the encoded body. Error responses stay unencoded.
	if resp.Status == StatusOK {
		if ae, ok := req.Headers.Lookup(HeaderAcceptEncoding); ok {
			if err := NegotiateEncoding(ae, resp); err != nil {
				s.logf(obs.Error, "conn %s: encode: %v", id, err)
				return
			}
		}
	}
	if err := resp.WriteTo(c); err != nil {
		s.logf(obs.Warn, "conn %s: write response: %v", id, err)
		return
	}
	s.meter().Counter("httpd.responses", 1,
		obs.Label{Key: "status", Value: strconv.Itoa(int(resp.Status))})
	s.logf(obs.Info, "conn %s: %s %s -> %v", id, req.Method, req.Path, resp.Status)
}

func (s *Server) store() FileStore {
	if s.Store != nil {
		return s.Store
	}
	return DirStore{Root: "./"}
}

func (s *Server) logf(level obs.Level, format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Logf(level, format, args...)
	}
}

func (s *Server) meter() obs.Meter {
	if s.Meter != nil {
		return s.Meter
	}
	return obs.NopMeter{}
}
