package singlefile

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base32"
	"fmt"
	"mime"
	"net/http"
	"net/http/httputil"
	"os"
	"path"
	"strings"

	"github.com/aholstenson/aget/pkg/outputs"
	"github.com/go-shiori/obelisk"
	"github.com/rosshhun/gonormalizer"
)

// SingleFileOutput renders the fetched page as a self-contained file when
// closed. Only the response that was actually fetched is available to the
// renderer, every other resource resolves to a 404.
type SingleFileOutput struct {
	tmpDir   string
	filename string
	url      string
}

func NewOutput(filename string) (*SingleFileOutput, error) {
	tmpDir, err := os.MkdirTemp("", "aget")
	if err != nil {
		return nil, err
	}

	return &SingleFileOutput{
		tmpDir:   tmpDir,
		filename: filename,
	}, nil
}

func (o *SingleFileOutput) Close() error {
	defer os.RemoveAll(o.tmpDir)

	if o.url == "" {
		return nil
	}

	// The request may have failed before a response was stored
	if _, err := os.Stat(o.pathTo(o.url)); err != nil {
		return nil
	}

	archiver := obelisk.Archiver{
		Transport: o,
	}
	archiver.Validate()

	data, ct, err := archiver.Archive(context.Background(), obelisk.Request{
		URL: o.url,
	})
	if err != nil {
		return fmt.Errorf("could not archive %q: %w", o.url, err)
	}

	filename := o.filename
	if path.Ext(filename) == "" {
		filename += extensionFor(ct)
	}

	return os.WriteFile(filename, data, 0666)
}

func (o *SingleFileOutput) Request(req *http.Request) error {
	if o.url == "" {
		o.url = req.URL.String()
	}
	return nil
}

func (o *SingleFileOutput) Response(req *http.Request, res *http.Response) error {
	data, err := httputil.DumpResponse(res, true)
	if err != nil {
		return err
	}
	path := o.pathTo(req.URL.String())
	return os.WriteFile(path, data, 0666)
}

func (o *SingleFileOutput) RoundTrip(req *http.Request) (*http.Response, error) {
	path := o.pathTo(req.URL.String())
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &http.Response{
			Status:     "404 Not Found",
			StatusCode: http.StatusNotFound,
			Proto:      "HTTP/1.1",
			ProtoMajor: 1,
			ProtoMinor: 1,
			Header:     http.Header{},
			Body:       http.NoBody,
			Request:    req,
		}, nil
	} else if err != nil {
		return nil, err
	}

	res, err := http.ReadResponse(bufio.NewReader(bytes.NewBuffer(data)), req)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (o *SingleFileOutput) pathTo(url string) string {
	nurl, err := gonormalizer.Normalize(url)
	if err != nil {
		// If there's an error ignore it and try with the original URL
		nurl = url
	}

	hash := sha256.New()
	hash.Write([]byte(nurl))
	id := base32.HexEncoding.EncodeToString(hash.Sum(make([]byte, 0)))
	return path.Join(o.tmpDir, id)
}

// extensionFor picks the longest known extension for a content type.
func extensionFor(contentType string) string {
	ext := ".bin"
	mediaType, _, _ := strings.Cut(contentType, ";")
	extensions, err := mime.ExtensionsByType(strings.TrimSpace(mediaType))
	if err == nil && len(extensions) > 0 {
		ext = extensions[0]
		for _, e := range extensions[1:] {
			if len(e) > len(ext) {
				ext = e
			}
		}
	}
	return ext
}

var _ outputs.Output = &SingleFileOutput{}
