package outputs

import (
	"io"
	"net/http"
)

// Output stores the exchange performed by the fetcher. The response body
// has already been buffered and can be read any number of times through
// httputil dumps.
type Output interface {
	io.Closer

	Request(req *http.Request) error

	Response(req *http.Request, res *http.Response) error
}

// Multi fans out every call to all of the outputs it contains.
type Multi []Output

func (m Multi) Request(req *http.Request) error {
	for _, o := range m {
		if err := o.Request(req); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Response(req *http.Request, res *http.Response) error {
	for _, o := range m {
		if err := o.Response(req, res); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every output and returns the first error encountered.
func (m Multi) Close() error {
	var first error
	for _, o := range m {
		if err := o.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

var _ Output = Multi{}
