// Package qr defines the QR code request and style models.
package qr

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// EmptyInputMessage is shown when a commit is attempted without content.
const EmptyInputMessage = "Please enter some text or a number"

// PreviewLimit is the number of characters shown before the preview is cut.
const PreviewLimit = 40

// ErrEmptyInput is returned by Commit for blank drafts.
var ErrEmptyInput = errors.New("qr: empty input")

// Request is the confirmed content currently encoded into the QR code.
type Request struct {
	Content string
	IsURL   bool
}

// Empty reports whether there is nothing to draw.
func (r Request) Empty() bool {
	return r.Content == ""
}

// Preview returns the content cut to PreviewLimit characters.
func (r Request) Preview() string {
	runes := []rune(r.Content)
	if len(runes) <= PreviewLimit {
		return r.Content
	}
	return string(runes[:PreviewLimit]) + "..."
}

// Commit validates a draft and promotes it into a request.
// The draft is kept as typed; only the emptiness check ignores surrounding whitespace.
func Commit(draft string) (Request, error) {
	if strings.TrimSpace(draft) == "" {
		return Request{}, ErrEmptyInput
	}
	return Request{
		Content: draft,
		IsURL:   IsAbsoluteURL(draft),
	}, nil
}

// maxPort is the largest port number a URL may carry.
const maxPort = 65535

// specialSchemes need an authority to be a valid absolute URL.
var specialSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

// IsAbsoluteURL reports whether text parses as an absolute URL on its own,
// without a base. Relative references such as "example.com" are rejected.
func IsAbsoluteURL(text string) bool {
	trimmed := strings.TrimFunc(text, func(r rune) bool { return r <= ' ' })
	if trimmed == "" {
		return false
	}
	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" {
		return false
	}
	if port := u.Port(); port != "" {
		if n, err := strconv.Atoi(port); err != nil || n > maxPort {
			return false
		}
	}
	if !specialSchemes[strings.ToLower(u.Scheme)] {
		return true
	}
	if u.Host != "" {
		return u.Hostname() != ""
	}
	// Special schemes take the host from whatever follows the colon,
	// so "http:x" and "http:/x" both mean "http://x".
	rest := u.Opaque
	if rest == "" {
		rest = u.EscapedPath()
	}
	rest = strings.TrimLeft(rest, "/")
	if rest == "" {
		return false
	}
	return IsAbsoluteURL(u.Scheme + "://" + rest)
}
