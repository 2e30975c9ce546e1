// Package httpd is a small HTTP/1.1 server built directly on TCP,
// aimed at learning, control, and embeddability in tools.
//
// It speaks a deliberate subset of the protocol: one request per
// connection, length-delimited bodies only, and content-encoding
// negotiation for responses. Each connection is handled by its own
// goroutine, spawned without bound; there are no read timeouts, so a
// slow client holds its goroutine until the transport errors.
//
// Highlights
//   - Identity-typed header names: well-known names are enum values,
//     anything else is carried as a Custom name verbatim.
//   - Wire parsing and serialization live in internal/http1; the
//     public package owns the message model and routing.
//   - Observability: plug-in Logger and Meter interfaces (internal/obs).
//
// Quick start:
//
//	s := &httpd.Server{Addr: "127.0.0.1:4221", Store: httpd.DirStore{Root: "./"}}
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
package httpd
