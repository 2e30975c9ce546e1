package httpd

import (
	"errors"
	"io/fs"
	"testing"
)

type memStore struct {
	files    map[string][]byte
	writeErr error
}

func (m *memStore) ReadFile(name string) ([]byte, error) {
	if b, ok := m.files[name]; ok {
		return b, nil
	}
	return nil, fs.ErrNotExist
}

func (m *memStore) WriteFile(name string, data []byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[name] = data
	return nil
}

func routeOne(t *testing.T, s *Server, req *Request) *Response {
	t.Helper()
	resp, err := s.route(req)
	if err != nil {
		t.Fatalf("route: %v", err)
	}
	return resp
}

func newReq(method Method, path string) *Request {
	return &Request{Method: method, Path: path, Version: "HTTP/1.1", Headers: make(Headers)}
}

func TestRoute_Echo(t *testing.T) {
	s := &Server{}
	resp := routeOne(t, s, newReq(MethodGet, "/echo/hello-world"))
	if resp.Status != StatusOK || string(resp.Body) != "hello-world" {
		t.Fatalf("status=%v body=%q", resp.Status, resp.Body)
	}
	if got := resp.Headers.Get(HeaderContentType); got != "text/plain" {
		t.Fatalf("Content-Type = %q", got)
	}
}

func TestRoute_EchoFirstSegmentOnly(t *testing.T) {
	s := &Server{}
	resp := routeOne(t, s, newReq(MethodGet, "/echo/one/two"))
	if string(resp.Body) != "one" {
		t.Fatalf("body = %q, want the first segment", resp.Body)
	}
}

func TestRoute_Root(t *testing.T) {
	s := &Server{}
	resp := routeOne(t, s, newReq(MethodGet, "/"))
	if resp.Status != StatusOK || len(resp.Body) != 0 {
		t.Fatalf("status=%v body=%q", resp.Status, resp.Body)
	}
}

func TestRoute_Unmatched(t *testing.T) {
	s := &Server{}
	resp := routeOne(t, s, newReq(MethodGet, "/nope"))
	if resp.Status != StatusNotFound || len(resp.Body) != 0 {
		t.Fatalf("status=%v body=%q", resp.Status, resp.Body)
	}
}

func TestRoute_UserAgent(t *testing.T) {
	s := &Server{}
	req := newReq(MethodGet, "/user-agent")
	req.Headers.Set(HeaderUserAgent, "test-agent/1.0")
	resp := routeOne(t, s, req)
	if string(resp.Body) != "test-agent/1.0" {
		t.Fatalf("body = %q", resp.Body)
	}
}

func TestRoute_UserAgentMissing(t *testing.T) {
	s := &Server{}
	if _, err := s.route(newReq(MethodGet, "/user-agent")); !errors.Is(err, ErrMissingHeader) {
		t.Fatalf("err = %v, want ErrMissingHeader", err)
	}
}

func TestRoute_FilesGet(t *testing.T) {
	s := &Server{Store: &memStore{files: map[string][]byte{"a.txt": []byte("data")}}}
	resp := routeOne(t, s, newReq(MethodGet, "/files/a.txt"))
	if resp.Status != StatusOK || string(resp.Body) != "data" {
		t.Fatalf("status=%v body=%q", resp.Status, resp.Body)
	}
	if got := resp.Headers.Get(HeaderContentType); got != "application/octet-stream" {
		t.Fatalf("Content-Type = %q", got)
	}
}

func TestRoute_FilesGetMissing(t *testing.T) {
	s := &Server{Store: &memStore{}}
	resp := routeOne(t, s, newReq(MethodGet, "/files/missing"))
	if resp.Status != StatusNotFound || len(resp.Body) != 0 {
		t.Fatalf("status=%v body=%q", resp.Status, resp.Body)
	}
}

func TestRoute_FilesPost(t *testing.T) {
	store := &memStore{}
	s := &Server{Store: store}
	req := newReq(MethodPost, "/files/b.txt")
	req.Body = []byte("posted")
	resp := routeOne(t, s, req)
	if resp.Status != StatusCreated || len(resp.Body) != 0 {
		t.Fatalf("status=%v body=%q", resp.Status, resp.Body)
	}
	if string(store.files["b.txt"]) != "posted" {
		t.Fatalf("stored = %q", store.files["b.txt"])
	}
}

func TestRoute_FilesPostFailure(t *testing.T) {
	s := &Server{Store: &memStore{writeErr: errors.New("disk full")}}
	req := newReq(MethodPost, "/files/b.txt")
	resp := routeOne(t, s, req)
	if resp.Status != StatusInternalServerError || string(resp.Body) != "disk full" {
		t.Fatalf("status=%v body=%q", resp.Status, resp.Body)
	}
}

func TestRoute_FilesOtherMethod(t *testing.T) {
	s := &Server{Store: &memStore{}}
	resp := routeOne(t, s, newReq(MethodPut, "/files/a"))
	if resp.Status != StatusMethodNotAllowed || len(resp.Body) != 0 {
		t.Fatalf("status=%v body=%q", resp.Status, resp.Body)
	}
}
