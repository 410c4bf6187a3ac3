package singlefile

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func htmlResponse(t *testing.T, req *http.Request, body string) *http.Response {
	t.Helper()

	return &http.Response{
		Status:        "200 OK",
		StatusCode:    200,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        http.Header{"Content-Type": {"text/html; charset=utf-8"}},
		Body:          io.NopCloser(bytes.NewReader([]byte(body))),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}

func TestSingleFileOutput(t *testing.T) {
	target := filepath.Join(t.TempDir(), "page.html")

	output, err := NewOutput(target)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "http://example.com/page", http.NoBody)
	require.NoError(t, err)

	require.NoError(t, output.Request(req))
	require.NoError(t, output.Response(req, htmlResponse(t, req, "<html><head><title>Page</title></head><body><p>hello page</p></body></html>")))
	require.NoError(t, output.Close())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello page")
}

func TestSingleFileOutputReplaysOnlyRecordedResponse(t *testing.T) {
	output, err := NewOutput(filepath.Join(t.TempDir(), "page"))
	require.NoError(t, err)
	defer output.Close()

	req, err := http.NewRequest(http.MethodGet, "http://example.com/page", http.NoBody)
	require.NoError(t, err)
	require.NoError(t, output.Response(req, htmlResponse(t, req, "<p>hi</p>")))

	res, err := output.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(body))

	other, err := http.NewRequest(http.MethodGet, "http://example.com/style.css", http.NoBody)
	require.NoError(t, err)
	res, err = output.RoundTrip(other)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestSingleFileOutputWithoutResponse(t *testing.T) {
	target := filepath.Join(t.TempDir(), "page.html")

	output, err := NewOutput(target)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "http://example.com/page", http.NoBody)
	require.NoError(t, err)
	require.NoError(t, output.Request(req))
	require.NoError(t, output.Close())

	_, err = os.Stat(target)
	assert.True(t, os.IsNotExist(err))
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".bin", extensionFor("application/x-unknown-aget"))
	assert.NotEqual(t, ".bin", extensionFor("text/html; charset=utf-8"))
}
