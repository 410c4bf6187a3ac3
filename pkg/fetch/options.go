package fetch

import (
	"time"

	"github.com/aholstenson/aget/pkg/outputs"
	"github.com/aholstenson/aget/pkg/progress"
)

// DefaultUserAgent identifies the client in every request.
const DefaultUserAgent = "aget"

type fetcherOptions struct {
	reporter  progress.Reporter
	output    outputs.Output
	userAgent string
	timeout   time.Duration
}

type Option func(o *fetcherOptions)

func WithReporter(reporter progress.Reporter) Option {
	return func(o *fetcherOptions) {
		o.reporter = reporter
	}
}

func WithOutput(output outputs.Output) Option {
	return func(o *fetcherOptions) {
		o.output = output
	}
}

func WithUserAgent(ua string) Option {
	return func(o *fetcherOptions) {
		o.userAgent = ua
	}
}

// WithTimeout limits the time of the whole exchange, including reading the
// body. A zero duration disables the limit.
func WithTimeout(timeout time.Duration) Option {
	return func(o *fetcherOptions) {
		o.timeout = timeout
	}
}
