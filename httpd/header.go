package httpd

// wellKnown indexes the fixed set of recognized header names.
// The zero value marks a custom name.
type wellKnown int

const (
	wkCustom wellKnown = iota
	wkAccept
	wkAcceptCharset
	wkAcceptEncoding
	wkAcceptLanguage
	wkAccessControlRequestMethod
	wkAccessControlRequestHeaders
	wkAuthorization
	wkCacheControl
	wkConnection
	wkContentDisposition
	wkContentEncoding
	wkContentLanguage
	wkContentLength
	wkContentType
	wkCookie
	wkDate
	wkExpect
	wkForwarded
	wkFrom
	wkHost
	wkIfMatch
	wkIfModifiedSince
	wkIfNoneMatch
	wkIfRange
	wkIfUnmodifiedSince
	wkMaxForwards
	wkOrigin
	wkPragma
	wkProxyAuthenticate
	wkProxyAuthorization
	wkRange
	wkReferer
	wkTE
	wkTrailer
	wkTransferEncoding
	wkUserAgent
	wkUpgrade
	wkVia
	wkWarning
)

var wireNames = [...]string{
	wkAccept:                      "Accept",
	wkAcceptCharset:               "Accept-Charset",
	wkAcceptEncoding:              "Accept-Encoding",
	wkAcceptLanguage:              "Accept-Language",
	wkAccessControlRequestMethod:  "Access-Control-Request-Method",
	wkAccessControlRequestHeaders: "Access-Control-Request-Headers",
	wkAuthorization:               "Authorization",
	wkCacheControl:                "Cache-Control",
	wkConnection:                  "Connection",
	wkContentDisposition:          "Content-Disposition",
	wkContentEncoding:             "Content-Encoding",
	wkContentLanguage:             "Content-Language",
	wkContentLength:               "Content-Length",
	wkContentType:                 "Content-Type",
	wkCookie:                      "Cookie",
	wkDate:                        "Date",
	wkExpect:                      "Expect",
	wkForwarded:                   "Forwarded",
	wkFrom:                        "From",
	wkHost:                        "Host",
	wkIfMatch:                     "If-Match",
	wkIfModifiedSince:             "If-Modified-Since",
	wkIfNoneMatch:                 "If-None-Match",
	wkIfRange:                     "If-Range",
	wkIfUnmodifiedSince:           "If-Unmodified-Since",
	wkMaxForwards:                 "Max-Forwards",
	wkOrigin:                      "Origin",
	wkPragma:                      "Pragma",
	wkProxyAuthenticate:           "Proxy-Authenticate",
	wkProxyAuthorization:          "Proxy-Authorization",
	wkRange:                       "Range",
	wkReferer:                     "Referer",
	wkTE:                          "TE",
	wkTrailer:                     "Trailer",
	wkTransferEncoding:            "Transfer-Encoding",
	wkUserAgent:                   "User-Agent",
	wkUpgrade:                     "Upgrade",
	wkVia:                         "Via",
	wkWarning:                     "Warning",
}

var byWireName = func() map[string]wellKnown {
	m := make(map[string]wellKnown, len(wireNames))
	for wk, name := range wireNames {
		if name != "" {
			m[name] = wellKnown(wk)
		}
	}
	return m
}()

// HeaderName identifies a header by variant, not by string. Two names
// are equal iff they are the same well-known name, or both are custom
// with byte-equal text. The type is comparable and safe as a map key.
type HeaderName struct {
	wk     wellKnown
	custom string
}

// Well-known header names used throughout the package.
var (
	HeaderAccept          = HeaderName{wk: wkAccept}
	HeaderAcceptEncoding  = HeaderName{wk: wkAcceptEncoding}
	HeaderAuthorization   = HeaderName{wk: wkAuthorization}
	HeaderConnection      = HeaderName{wk: wkConnection}
	HeaderContentEncoding = HeaderName{wk: wkContentEncoding}
	HeaderContentLength   = HeaderName{wk: wkContentLength}
	HeaderContentType     = HeaderName{wk: wkContentType}
	HeaderHost            = HeaderName{wk: wkHost}
	HeaderUserAgent       = HeaderName{wk: wkUserAgent}
)

// CustomHeader wraps an unrecognized header name verbatim.
func CustomHeader(name string) HeaderName {
	return HeaderName{custom: name}
}

// ParseHeaderName matches s against the well-known set. Matching is
// exact-case: "host" is a custom name, "Host" is not.
func ParseHeaderName(s string) HeaderName {
	if wk, ok := byWireName[s]; ok {
		return HeaderName{wk: wk}
	}
	return CustomHeader(s)
}

// WireName returns the canonical hyphenated form for well-known names
// and the stored text unchanged for custom ones.
func (n HeaderName) WireName() string {
	if n.wk != wkCustom {
		return wireNames[n.wk]
	}
	return n.custom
}

func (n HeaderName) String() string { return n.WireName() }

// Headers holds one value per name; setting an existing name
// overwrites it.
type Headers map[HeaderName]string

func (h Headers) Get(name HeaderName) string {
	return h[name]
}

func (h Headers) Lookup(name HeaderName) (string, bool) {
	v, ok := h[name]
	return v, ok
}

func (h Headers) Set(name HeaderName, value string) {
	h[name] = value
}
