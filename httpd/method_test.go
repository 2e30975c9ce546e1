package httpd

import (
	"errors"
	"testing"
)

func TestParseMethod(t *testing.T) {
	for _, tok := range []string{"GET", "HEAD", "POST", "PUT", "DELETE", "CONNECT", "OPTIONS", "TRACE", "PATCH"} {
		m, err := ParseMethod(tok)
		if err != nil {
			t.Fatalf("ParseMethod(%q): %v", tok, err)
		}
		if m.String() != tok {
			t.Fatalf("round trip %q -> %q", tok, m.String())
		}
	}
}

func TestParseMethod_Invalid(t *testing.T) {
	for _, tok := range []string{"get", "FETCH", ""} {
		if _, err := ParseMethod(tok); !errors.Is(err, ErrInvalidMethod) {
			t.Fatalf("ParseMethod(%q) err = %v, want ErrInvalidMethod", tok, err)
		}
	}
}
