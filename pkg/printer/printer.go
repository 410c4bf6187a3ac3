// Package printer renders fetched responses for humans.
package printer

import (
	"bufio"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/aholstenson/aget/pkg/network"
)

// Headers lists the response headers that are printed, in order.
var Headers = []string{
	"Access-Control-Allow-Origin",
	"Connection",
	"Content-Length",
	"Content-Encoding",
	"Content-Type",
	"Date",
	"Etag",
	"Keep-Alive",
	"Last-Modified",
	"Server",
	"Set-Cookie",
	"Transfer-Encoding",
	"Vary",
}

type Printer struct {
	w      io.Writer
	styles *Styles
}

func NewPrinter(w io.Writer, opts ...Option) *Printer {
	options := &printerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return &Printer{
		w:      w,
		styles: options.styles,
	}
}

// Print writes the status line, the allowed headers and the body of res.
func (p *Printer) Print(res *network.Response) error {
	out := bufio.NewWriter(p.w)

	out.WriteString(p.styles.status(res.StatusCode, ">"+res.Proto+" "+res.StatusPhrase))
	out.WriteString("\n")

	out.WriteString(p.styles.section(">Headers:"))
	out.WriteString("\n")
	for _, name := range Headers {
		values := res.Headers.Values(name)
		if len(values) == 0 {
			continue
		}

		out.WriteString("    ")
		out.WriteString(p.styles.header(name + ":"))
		out.WriteString(" " + values[0] + "\n")
	}

	if res.IsText() {
		if utf8.Valid(res.Body) {
			out.WriteString(p.styles.section(">Body:"))
			out.WriteString("\n")
			out.Write(res.Body)
			out.WriteString("\n")
		} else {
			out.WriteString(p.styles.section(">Body:") + " " + p.styles.placeholder("<non UTF-8>") + "\n")
		}
	} else if size, err := strconv.ParseUint(res.Headers.Get("Content-Length"), 10, 64); err == nil {
		out.WriteString(p.styles.section(">Body:") + " " + p.styles.placeholder("<Binary "+strconv.FormatUint(size, 10)+" bytes>") + "\n")
	} else {
		out.WriteString(p.styles.section(">Body:") + " " + p.styles.placeholder("<Empty>") + "\n")
	}

	return out.Flush()
}
