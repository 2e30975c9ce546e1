package httpd

import (
	"bufio"
	"fmt"
	"io"

	"vex0.dev/go/httpd/httpd/internal/http1"
)

// Request is one inbound HTTP request. It is built once per
// connection and not mutated afterwards; the handling goroutine owns
// it exclusively.
type Request struct {
	Method Method
	// Path is the request target as received: query and fragment are
	// kept opaque, nothing is percent-decoded.
	Path    string
	Version string
	Headers Headers
	Body    []byte
}

// ReadRequest parses one request from the stream. Wire-level failures
// come back from internal/http1; an unrecognized method token fails
// here with ErrInvalidMethod.
func ReadRequest(r io.Reader) (*Request, error) {
	rr := &http1.Reader{BR: bufio.NewReader(r)}
	pr, err := rr.ReadRequest()
	if err != nil {
		return nil, err
	}
	method, err := ParseMethod(pr.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, pr.Method)
	}
	headers := make(Headers, len(pr.Headers))
	for _, h := range pr.Headers {
		headers.Set(ParseHeaderName(h[0]), h[1])
	}
	return &Request{
		Method:  method,
		Path:    pr.RequestTarget,
		Version: pr.Proto,
		Headers: headers,
		Body:    pr.Body,
	}, nil
}
