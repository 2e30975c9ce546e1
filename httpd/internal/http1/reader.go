package http1

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrMalformedRequestLine = errors.New("http1: malformed request line")
	ErrInvalidContentLength = errors.New("http1: invalid content length")
)

// ParsedRequest is the wire-level view of one request: request-line
// tokens and header pairs exactly as received, before any name
// interning by the caller.
type ParsedRequest struct {
	Method        string
	RequestTarget string
	Proto         string
	Headers       [][2]string
	Body          []byte
}

type Reader struct {
	BR *bufio.Reader
}

// ReadRequest consumes one full request from the stream: request line,
// header block up to the blank line, then a Content-Length delimited
// body. With no Content-Length header the body is empty.
func (r *Reader) ReadRequest() (*ParsedRequest, error) {
	line, err := r.readLine()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil, ErrMalformedRequestLine
	}
	pr := &ParsedRequest{
		Method:        fields[0],
		RequestTarget: fields[1],
		Proto:         fields[2],
	}
	for {
		line, err := r.readLine()
		if err != nil {
			return nil, err
		}
		if line == "" {
			break
		}
		k, v, ok := splitHeaderLine(line)
		if !ok {
			// Lenient: a line without a colon is skipped, not fatal.
			continue
		}
		pr.Headers = append(pr.Headers, [2]string{k, v})
	}
	if cl, ok := pr.lastValue("Content-Length"); ok {
		n, err := strconv.Atoi(cl)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidContentLength, cl)
		}
		if n > 0 {
			body := make([]byte, n)
			if _, err := io.ReadFull(r.BR, body); err != nil {
				return nil, err
			}
			pr.Body = body
		}
	}
	return pr, nil
}

// lastValue returns the value of the last occurrence of key, matching
// exact-case only. Duplicate headers overwrite, so the last one wins.
func (pr *ParsedRequest) lastValue(key string) (string, bool) {
	for i := len(pr.Headers) - 1; i >= 0; i-- {
		if pr.Headers[i][0] == key {
			return pr.Headers[i][1], true
		}
	}
	return "", false
}

func splitHeaderLine(line string) (string, string, bool) {
	k, v, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(k), strings.TrimSpace(v), true
}

func (r *Reader) readLine() (string, error) {
	var sb strings.Builder
	for {
		b, err := r.BR.ReadByte()
		if err != nil {
			return "", err
		}
		if b == '\n' {
			break
		}
		if b != '\r' {
			sb.WriteByte(b)
		}
	}
	return sb.String(), nil
}
