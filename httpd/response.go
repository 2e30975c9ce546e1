package httpd

import (
	"bufio"
	"io"
	"strconv"

	"vex0.dev/go/httpd/httpd/internal/http1"
)

// Response is one outbound HTTP response. Handlers build it, the
// negotiator may rewrite the body, and WriteTo consumes it exactly
// once.
type Response struct {
	Version string
	Status  StatusCode
	Headers Headers
	Body    []byte
}

// NewResponse returns a 200 response with no headers and no body,
// echoing the request's protocol version.
func NewResponse(version string) *Response {
	return &Response{
		Version: version,
		Status:  StatusOK,
		Headers: make(Headers),
	}
}

// WriteTo serializes the response onto w and flushes. Content-Length
// is recomputed here, after any encoding transform has run, so it
// always matches the body bytes that follow it on the wire.
func (r *Response) WriteTo(w io.Writer) error {
	r.Headers.Set(HeaderContentLength, strconv.Itoa(len(r.Body)))
	wire := make([][2]string, 0, len(r.Headers))
	for name, value := range r.Headers {
		wire = append(wire, [2]string{name.WireName(), value})
	}
	return http1.WriteResponse(bufio.NewWriter(w), r.Version, r.Status.String(), wire, r.Body)
}
