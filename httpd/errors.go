package httpd

import (
	"errors"

	"vex0.dev/go/httpd/httpd/internal/http1"
)

var (
	// ErrInvalidMethod reports an unrecognized request-line method token.
	ErrInvalidMethod = errors.New("httpd: invalid method")
	// ErrMissingHeader reports a route that requires a header the
	// request did not carry.
	ErrMissingHeader = errors.New("httpd: missing header")

	// Wire-level parse failures, surfaced from internal/http1.
	ErrMalformedRequestLine = http1.ErrMalformedRequestLine
	ErrInvalidContentLength = http1.ErrInvalidContentLength
)
