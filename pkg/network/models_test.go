package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseContentType(t *testing.T) {
	res := &Response{Headers: Header{}}
	assert.Equal(t, "text/plain", res.ContentType())

	res.Headers = Header{"Content-Type": {"application/json; charset=utf-8"}}
	assert.Equal(t, "application/json", res.ContentType())

	res.Headers = Header{"Content-Type": {"application/octet-stream"}}
	assert.Equal(t, "application/octet-stream", res.ContentType())
}

func TestResponseIsText(t *testing.T) {
	for ct, expected := range map[string]bool{
		"":                         true,
		"text/html; charset=utf-8": true,
		"application/json":         true,
		"application/ld+json":      true,
		"application/JSON":         false,
		"application/octet-stream": false,
		"image/png":                false,
	} {
		res := &Response{Headers: Header{}}
		if ct != "" {
			res.Headers["Content-Type"] = []string{ct}
		}
		assert.Equal(t, expected, res.IsText(), ct)
	}
}

func TestHeaderValuesKeepsEmpty(t *testing.T) {
	h := Header{"Vary": {""}}
	assert.Equal(t, []string{""}, h.Values("vary"))
	assert.Empty(t, h.Values("Server"))
}
