package progress

import (
	"io"
	"log/slog"

	"github.com/aholstenson/aget/pkg/network"
	"github.com/dustin/go-humanize"
)

// ConsoleReporter writes every event as a structured log record.
type ConsoleReporter struct {
	logger *slog.Logger
}

func NewConsoleReporter(w io.Writer) (Reporter, error) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	return &ConsoleReporter{
		logger: slog.New(handler),
	}, nil
}

func (c *ConsoleReporter) Close() error {
	return nil
}

func (c *ConsoleReporter) Debug(msg string) {
	c.logger.Debug(msg)
}

func (c *ConsoleReporter) Error(err error, msg string) {
	c.logger.Error(msg, slog.Any("error", err))
}

func (c *ConsoleReporter) Request(req *network.Request) {
	c.logger.Info("request",
		slog.String("method", req.Method.String()),
		slog.String("url", req.URL),
	)
}

func (c *ConsoleReporter) Response(res *network.Response) {
	c.logger.Info("response",
		slog.Int("status", res.StatusCode),
		slog.String("url", res.URL),
		slog.String("size", humanize.Bytes(uint64(len(res.Body)))),
	)
}

var _ Reporter = &ConsoleReporter{}
