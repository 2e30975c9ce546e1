package httpd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// route maps one parsed request to a response. Only a missing
// User-Agent on its route is an error; unknown paths, bad methods and
// file-store faults are all absorbed into a status.
func (s *Server) route(req *Request) (*Response, error) {
	resp := NewResponse(req.Version)
	switch {
	case strings.HasPrefix(req.Path, "/echo/"):
		resp.Headers.Set(HeaderContentType, "text/plain")
		resp.Body = []byte(pathSegment(req.Path, "/echo/"))
	case strings.HasPrefix(req.Path, "/files/"):
		s.serveFile(req, resp)
	case req.Path == "/user-agent":
		ua, ok := req.Headers.Lookup(HeaderUserAgent)
		if !ok {
			return nil, fmt.Errorf("%w: User-Agent", ErrMissingHeader)
		}
		resp.Headers.Set(HeaderContentType, "text/plain")
		resp.Body = []byte(ua)
	case req.Path == "/":
		// 200 with empty body
	default:
		resp.Status = StatusNotFound
	}
	return resp, nil
}

func (s *Server) serveFile(req *Request, resp *Response) {
	name := pathSegment(req.Path, "/files/")
	switch req.Method {
	case MethodGet:
		data, err := s.store().ReadFile(name)
		switch {
		case err == nil:
			resp.Headers.Set(HeaderContentType, "application/octet-stream")
			resp.Body = data
		case errors.Is(err, fs.ErrNotExist):
			resp.Status = StatusNotFound
		default:
			resp.Status = StatusInternalServerError
			resp.Body = []byte(err.Error())
		}
	case MethodPost:
		if err := s.store().WriteFile(name, req.Body); err != nil {
			resp.Status = StatusInternalServerError
			resp.Body = []byte(err.Error())
		} else {
			resp.Status = StatusCreated
		}
	default:
		resp.Status = StatusMethodNotAllowed
	}
}

// pathSegment returns the single path segment that follows prefix.
func pathSegment(path, prefix string) string {
	rest := strings.TrimPrefix(path, prefix)
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
