package warc

import "github.com/benbjohnson/clock"

type warcConfig struct {
	prefix string
	clock  clock.Clock
}

type Option func(c *warcConfig)

// WithPrefix sets the literal prefix used for the names of WARC files.
func WithPrefix(prefix string) Option {
	return func(c *warcConfig) {
		c.prefix = prefix
	}
}

// WithClock sets the clock used for the WARC-Date of records.
func WithClock(clock clock.Clock) Option {
	return func(c *warcConfig) {
		c.clock = clock
	}
}
