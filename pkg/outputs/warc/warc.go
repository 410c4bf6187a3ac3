package warc

import (
	"fmt"
	"net/http"
	"net/http/httputil"

	"github.com/aholstenson/aget/pkg/outputs"
	"github.com/benbjohnson/clock"
	"github.com/nlnwa/gowarc"
)

// WARCOutput writes one request record and one response record per
// exchange.
type WARCOutput struct {
	writer *gowarc.WarcFileWriter
	clock  clock.Clock
}

func NewOutput(directory string, opts ...Option) (*WARCOutput, error) {
	config := &warcConfig{
		prefix: "aget-%{ts}s-",
		clock:  clock.New(),
	}
	for _, opt := range opts {
		opt(config)
	}

	writer := gowarc.NewWarcFileWriter(gowarc.WithFileNameGenerator(&gowarc.PatternNameGenerator{
		Directory: directory,
		Pattern:   config.prefix + "%04{serial}d.%{ext}s",
	}))

	return &WARCOutput{
		writer: writer,
		clock:  config.clock,
	}, nil
}

func (o *WARCOutput) Close() error {
	return o.writer.Close()
}

func (o *WARCOutput) Request(req *http.Request) error {
	data, err := httputil.DumpRequestOut(req, true)
	if err != nil {
		return fmt.Errorf("could not dump request: %w", err)
	}

	return o.write(gowarc.Request, req.URL.String(), "application/http; msgtype=request", data)
}

func (o *WARCOutput) Response(req *http.Request, res *http.Response) error {
	data, err := httputil.DumpResponse(res, true)
	if err != nil {
		return fmt.Errorf("could not dump response: %w", err)
	}

	return o.write(gowarc.Response, req.URL.String(), "application/http; msgtype=response", data)
}

func (o *WARCOutput) write(recordType gowarc.RecordType, uri string, contentType string, data []byte) error {
	builder := gowarc.NewRecordBuilder(recordType)

	_, err := builder.Write(data)
	if err != nil {
		return err
	}

	builder.AddWarcHeader(gowarc.WarcTargetURI, uri)
	builder.AddWarcHeaderTime(gowarc.WarcDate, o.clock.Now())
	builder.AddWarcHeader(gowarc.ContentType, contentType)

	record, _, err := builder.Build()
	if err != nil {
		return fmt.Errorf("could not build %v record: %w", recordType, err)
	}

	for _, res := range o.writer.Write(record) {
		if res.Err != nil {
			return fmt.Errorf("could not write %v record: %w", recordType, res.Err)
		}
	}
	return nil
}

var _ outputs.Output = &WARCOutput{}
