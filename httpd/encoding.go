package httpd

import (
	"bytes"
	"compress/gzip"
	"strings"
)

// EncodingName is one of the content codings recognized during
// negotiation.
type EncodingName int

const (
	EncodingGzip EncodingName = iota
	EncodingCompress
	EncodingDeflate
	EncodingBr
	EncodingZstd
)

// ParseEncoding matches a token case-insensitively against the
// recognized codings. Unknown tokens report ok false; negotiation
// drops them silently rather than erroring.
func ParseEncoding(s string) (EncodingName, bool) {
	switch strings.ToLower(s) {
	case "gzip":
		return EncodingGzip, true
	case "compress":
		return EncodingCompress, true
	case "deflate":
		return EncodingDeflate, true
	case "br":
		return EncodingBr, true
	case "zstd":
		return EncodingZstd, true
	}
	return 0, false
}

func (e EncodingName) String() string {
	switch e {
	case EncodingGzip:
		return "gzip"
	case EncodingCompress:
		return "compress"
	case EncodingDeflate:
		return "deflate"
	case EncodingBr:
		return "br"
	case EncodingZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// NegotiateEncoding inspects an Accept-Encoding value and applies the
// outcome to resp: every recognized coding is recorded in the
// Content-Encoding header in encounter order, and gzip additionally
// compresses the body. The other codings are header-only; the body
// stays as produced by the handler. With no recognized codings the
// response is left untouched.
func NegotiateEncoding(acceptEncoding string, resp *Response) error {
	var accepted []string
	gzipBody := false
	for _, tok := range strings.Split(acceptEncoding, ", ") {
		enc, ok := ParseEncoding(tok)
		if !ok {
			continue
		}
		accepted = append(accepted, enc.String())
		if enc == EncodingGzip {
			gzipBody = true
		}
	}
	if len(accepted) == 0 {
		return nil
	}
	resp.Headers.Set(HeaderContentEncoding, strings.Join(accepted, ", "))
	if gzipBody {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(resp.Body); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		resp.Body = buf.Bytes()
	}
	return nil
}
