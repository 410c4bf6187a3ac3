package progress

import "github.com/aholstenson/aget/pkg/network"

type emptyReporter struct {
}

func NewEmptyReporter() Reporter {
	return &emptyReporter{}
}

func (c *emptyReporter) Close() error {
	return nil
}

func (c *emptyReporter) Debug(msg string) {
}

func (c *emptyReporter) Error(err error, msg string) {
}

func (c *emptyReporter) Request(req *network.Request) {
}

func (c *emptyReporter) Response(res *network.Response) {
}

var _ Reporter = &emptyReporter{}
