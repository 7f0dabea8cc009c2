package link

import (
	"fmt"
	"net/url"
	"strings"
)

type Mode string

const (
	ModeFull   Mode = "full"
	ModeOrigin Mode = "origin"
)

var ErrNotAbsolute = fmt.Errorf("url is not absolute")

// Candidate is a parsed absolute URL. It is returned by value and never cached.
type Candidate struct {
	Raw string
	u   *url.URL
}

func Parse(raw string) (Candidate, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Candidate{}, fmt.Errorf("empty url")
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return Candidate{}, err
	}
	if !u.IsAbs() || u.Host == "" {
		return Candidate{}, fmt.Errorf("%w: %q", ErrNotAbsolute, trimmed)
	}

	return Candidate{Raw: raw, u: u}, nil
}

// Origin is scheme://host[:port], lower-cased, with default ports omitted.
func (c Candidate) Origin() string {
	if c.u == nil {
		return ""
	}
	scheme := strings.ToLower(c.u.Scheme)
	host := strings.ToLower(c.u.Hostname())
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	port := c.u.Port()
	if port == "" || isDefaultPort(scheme, port) {
		return scheme + "://" + host
	}
	return scheme + "://" + host + ":" + port
}

// FullPath is the origin plus the path; query string and fragment are dropped.
func (c Candidate) FullPath() string {
	if c.u == nil {
		return ""
	}
	path := c.u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return c.Origin() + path
}

// Key returns the value stored for mode.
func (c Candidate) Key(mode Mode) (string, error) {
	switch mode {
	case ModeFull:
		return c.FullPath(), nil
	case ModeOrigin:
		return c.Origin(), nil
	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}
}

func isDefaultPort(scheme, port string) bool {
	switch scheme {
	case "http", "ws":
		return port == "80"
	case "https", "wss":
		return port == "443"
	case "ftp":
		return port == "21"
	}
	return false
}
