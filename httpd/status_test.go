package httpd

import "testing"

func TestStatusDisplay(t *testing.T) {
	cases := map[StatusCode]string{
		StatusOK:                  "200 OK",
		StatusCreated:             "201 Created",
		StatusNotFound:            "404 Not Found",
		StatusMethodNotAllowed:    "405 Method Not Allowed",
		StatusTeapot:              "418 I'm a teapot",
		StatusInternalServerError: "500 Internal Server Error",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Fatalf("String(%d) = %q, want %q", int(code), got, want)
		}
	}
}

func TestStatusDisplay_Unknown(t *testing.T) {
	if got := StatusCode(299).String(); got != "299" {
		t.Fatalf("String(299) = %q", got)
	}
}
