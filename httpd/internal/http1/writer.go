package http1

import (
	"bufio"
	"fmt"
)

// WriteResponse writes one response in wire form: status line, header
// lines, a blank line, then the body verbatim. Header order on the
// wire is whatever order the caller supplies; no ordering is promised.
// The writer is flushed before returning.
func WriteResponse(bw *bufio.Writer, proto, status string, headers [][2]string, body []byte) error {
	if _, err := fmt.Fprintf(bw, "%s %s\r\n", proto, status); err != nil {
		return err
	}
	for _, h := range headers {
		if _, err := fmt.Fprintf(bw, "%s: %s\r\n", h[0], h[1]); err != nil {
			return err
		}
	}
	if _, err := bw.WriteString("\r\n"); err != nil {
		return err
	}
	if len(body) > 0 {
		if _, err := bw.Write(body); err != nil {
			return err
		}
	}
	return bw.Flush()
}
