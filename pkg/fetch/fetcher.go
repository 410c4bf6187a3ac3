package fetch

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/aholstenson/aget/internal"
	"github.com/aholstenson/aget/pkg/network"
	"github.com/aholstenson/aget/pkg/outputs"
	"github.com/aholstenson/aget/pkg/progress"
)

// Fetcher performs a single request and buffers textual responses.
type Fetcher struct {
	reporter  progress.Reporter
	output    outputs.Output
	userAgent string

	httpClient *http.Client
}

func NewFetcher(opts ...Option) *Fetcher {
	options := &fetcherOptions{
		reporter:  progress.NewEmptyReporter(),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(options)
	}

	// Base any modifications on the default transport. Compression is left
	// to the server so that the headers printed are the ones it sent.
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableCompression = true

	return &Fetcher{
		reporter:  options.reporter,
		output:    options.output,
		userAgent: options.userAgent,

		httpClient: &http.Client{
			Timeout:   options.timeout,
			Transport: transport,
		},
	}
}

// Fetch requests url using method. A response with a status code of 400 or
// above is returned as a *StatusError, failures without a response as a
// *TransportError.
func (f *Fetcher) Fetch(ctx context.Context, method network.Method, url string) (*network.Response, error) {
	// Nothing is pooled between invocations
	defer f.httpClient.CloseIdleConnections()

	req, err := http.NewRequestWithContext(ctx, method.String(), url, http.NoBody)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.ContentLength = 0
	if method == network.MethodDelete {
		// Without this net/http omits Content-Length: 0 for DELETE
		req.TransferEncoding = []string{"identity"}
	}
	req.Header.Set("User-Agent", f.userAgent)

	f.reporter.Request(&network.Request{
		URL:     req.URL.String(),
		Method:  method,
		Headers: network.Header(req.Header),
	})
	f.debugDump(httputil.DumpRequestOut(req, false))

	if f.output != nil {
		err = f.output.Request(req)
		if err != nil {
			f.reporter.Error(err, "Could not write request")
		}
	}

	res, err := f.httpClient.Do(req)
	if err != nil {
		var dnsError *net.DNSError
		if errors.As(err, &dnsError) {
			f.reporter.Error(err, "Could not resolve host")
		} else if !errors.Is(err, context.Canceled) {
			f.reporter.Error(err, "Could not load response")
		}
		return nil, &TransportError{Err: err}
	}

	defer func() { _ = res.Body.Close() }()
	f.debugDump(httputil.DumpResponse(res, false))

	headers := res.Header.Clone()
	if len(res.TransferEncoding) > 0 {
		// The client consumes Transfer-Encoding, put it back for display
		headers.Set("Transfer-Encoding", strings.Join(res.TransferEncoding, ", "))
	}

	response := &network.Response{
		URL:          req.URL.String(),
		Proto:        res.Proto,
		StatusCode:   res.StatusCode,
		StatusPhrase: statusPhrase(res),
		Headers:      network.Header(headers),
	}

	// Binary bodies are described by their Content-Length, so they are left
	// unread unless an output archives them
	if response.IsText() || f.output != nil {
		b, err := io.ReadAll(res.Body)
		if err != nil {
			f.reporter.Error(err, "Could not read body")
			return nil, &TransportError{Err: err}
		}
		res.Body = io.NopCloser(bytes.NewReader(b))
		response.Body = b
	}

	if f.output != nil {
		err = f.output.Response(req, res)
		if err != nil {
			f.reporter.Error(err, "Could not write response")
		}
	}

	f.reporter.Response(response)

	if res.StatusCode >= 400 {
		return nil, &StatusError{Response: response}
	}
	return response, nil
}

func (f *Fetcher) debugDump(data []byte, err error) {
	if err != nil {
		f.reporter.Error(err, "Could not dump message")
		return
	}

	w := &internal.FlushingWriter{Flush: f.reporter.Debug}
	_, _ = w.Write(data)
	_ = w.Close()
}

// statusPhrase returns the reason phrase sent by the server, falling back
// to the standard text for the code.
func statusPhrase(res *http.Response) string {
	code, phrase, found := strings.Cut(res.Status, " ")
	if found && phrase != "" && len(code) == 3 {
		return phrase
	}
	return http.StatusText(res.StatusCode)
}
