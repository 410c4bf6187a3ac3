package network

import (
	"net/http"
	"strings"
)

type Header http.Header

// Get returns the first value associated with the given key.
func (h Header) Get(key string) string {
	return http.Header(h).Get(key)
}

// Values returns all values associated with the given key, including empty
// ones.
func (h Header) Values(key string) []string {
	return http.Header(h).Values(key)
}

// Request represents basic information about a request.
type Request struct {
	// URL being requested.
	URL string
	// Method used to access the request.
	Method Method
	// Headers sent with the request.
	Headers Header
}

// Response contains information about a response.
type Response struct {
	// URL of the response.
	URL string
	// Proto is the protocol version, such as HTTP/1.1.
	Proto string
	// StatusCode is the HTTP status code of the request, such as 200, 301,
	// 404 etc.
	StatusCode int
	// StatusPhrase is the phrase associated with the HTTP status code.
	StatusPhrase string
	// Headers received with the response.
	Headers Header
	// Body is the full body as read from the server. It is only read for
	// textual responses or when an output needs it.
	Body []byte
}

// ContentType returns the media type of the response without any
// parameters. Responses without a Content-Type are treated as text/plain.
func (r *Response) ContentType() string {
	ct := r.Headers.Get("Content-Type")
	if ct == "" {
		return "text/plain"
	}

	mediaType, _, _ := strings.Cut(ct, ";")
	return strings.TrimSpace(mediaType)
}

// IsText reports whether the body is meant to be shown as text, which is the
// case when the content type mentions text or json.
func (r *Response) IsText() bool {
	contentType := r.ContentType()
	return strings.Contains(contentType, "text") || strings.Contains(contentType, "json")
}
