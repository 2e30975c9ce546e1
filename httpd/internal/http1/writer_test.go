package http1

import (
	"bufio"
	"bytes"
	"testing"
)

func TestWriteResponse(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	headers := [][2]string{
		{"Content-Type", "text/plain"},
		{"Content-Length", "3"},
	}
	if err := WriteResponse(bw, "HTTP/1.1", "200 OK", headers, []byte("abc")); err != nil {
		t.Fatalf("WriteResponse error: %v", err)
	}
	want := "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 3\r\n\r\nabc"
	if got := buf.String(); got != want {
		t.Fatalf("wire = %q, want %q", got, want)
	}
}

func TestWriteResponse_EmptyBody(t *testing.T) {
	var buf bytes.Buffer
	bw := bufio.NewWriter(&buf)
	if err := WriteResponse(bw, "HTTP/1.1", "404 Not Found", nil, nil); err != nil {
		t.Fatalf("WriteResponse error: %v", err)
	}
	if got, want := buf.String(), "HTTP/1.1 404 Not Found\r\n\r\n"; got != want {
		t.Fatalf("wire = %q, want %q", got, want)
	}
}
