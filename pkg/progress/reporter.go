package progress

import (
	"io"

	"github.com/aholstenson/aget/pkg/network"
)

// Reporter receives events while a request is being performed.
type Reporter interface {
	io.Closer

	Debug(msg string)

	Error(err error, msg string)

	Request(req *network.Request)

	Response(res *network.Response)
}
