package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/aholstenson/aget/pkg/fetch"
	"github.com/aholstenson/aget/pkg/network"
	"github.com/aholstenson/aget/pkg/printer"
	"github.com/aholstenson/aget/pkg/progress"
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

type CLI struct {
	Method  network.Method `default:"GET" help:"HTTP method to use, one of HEAD, GET, PATCH, POST, PUT or DELETE."`
	Timeout uint           `default:"10" help:"Timeout in seconds for the request, 0 disables it."`

	Color    string `enum:"auto,always,never" default:"auto" help:"Style the status line and headers (${enum})."`
	Verbose  bool   `short:"v" help:"Log the exchange to stderr."`
	Progress bool   `help:"Show a spinner on stderr while waiting for the response."`

	WARC       string `name:"warc" type:"existingdir" placeholder:"DIR" help:"Directory where the exchange is archived as WARC."`
	SingleFile string `type:"path" placeholder:"PATH" help:"Save the response as a single-file HTML page."`

	URL string `arg:"" required:"" help:"URL against which to make request."`
}

// maxTimeout is the largest timeout in seconds that fits a time.Duration.
const maxTimeout = uint64(math.MaxInt64 / int64(time.Second))

// Validate is called by kong once flags have been parsed.
func (cli *CLI) Validate() error {
	if uint64(cli.Timeout) > maxTimeout {
		return fmt.Errorf("--timeout must be at most %d seconds", maxTimeout)
	}
	return nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("aget"),
		kong.Description("Perform a single HTTP request and print the response."),
	}, options...)

	return kong.New(cli, options...)
}

// Run parses the process arguments, performs the request and returns the
// exit code of the process.
func Run() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	cli := &CLI{}
	parser, err := newParser(cli, kong.Writers(stdout, stderr))
	if err != nil {
		fmt.Fprintf(stderr, "!>>%s\n", err)
		return ExitFailure
	}

	_, err = parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) {
			_ = parseErr.Context.PrintUsage(true)
		}
		return ExitFailure
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reporter, err := cli.newReporter(stderr, cancel)
	if err != nil {
		fmt.Fprintf(stderr, "!>>Could not create reporter: %s\n", err)
		return ExitFailure
	}

	return cli.run(ctx, stdout, stderr, reporter)
}

func (cli *CLI) newReporter(stderr io.Writer, cancel func()) (progress.Reporter, error) {
	if cli.Progress && isTerminal(stderr) {
		return progress.NewInteractiveReporter(stderr, cancel)
	}

	if cli.Verbose {
		return progress.NewConsoleReporter(stderr)
	}

	return progress.NewEmptyReporter(), nil
}

func (cli *CLI) newPrinter(stdout io.Writer) *printer.Printer {
	switch cli.Color {
	case "never":
		return printer.NewPrinter(stdout)
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
		return printer.NewPrinter(stdout, printer.WithStyles(printer.DefaultStyles()))
	}

	if isTerminal(stdout) {
		return printer.NewPrinter(stdout, printer.WithStyles(printer.DefaultStyles()))
	}
	return printer.NewPrinter(stdout)
}

func (cli *CLI) run(
	ctx context.Context,
	stdout io.Writer,
	stderr io.Writer,
	reporter progress.Reporter,
) int {
	prefix := "aget-" + time.Now().In(time.UTC).Format("20060102150405") + "-"

	output, err := cli.newOutputs(prefix)
	if err != nil {
		_ = reporter.Close()
		fmt.Fprintf(stderr, "!>>%s\n", err)
		return ExitFailure
	}

	options := []fetch.Option{
		fetch.WithReporter(reporter),
		fetch.WithTimeout(time.Duration(cli.Timeout) * time.Second),
	}
	if len(output) > 0 {
		options = append(options, fetch.WithOutput(output))
	}
	fetcher := fetch.NewFetcher(options...)

	res, err := fetcher.Fetch(ctx, cli.Method, cli.URL)

	// The interactive view must be gone before anything else is written
	_ = reporter.Close()

	code := ExitSuccess
	var statusErr *fetch.StatusError
	switch {
	case err == nil:
	case errors.As(err, &statusErr):
		res = statusErr.Response
		code = ExitFailure
	default:
		fmt.Fprintf(stderr, "!>>%s\n", err)
		code = ExitFailure
	}

	if res != nil {
		err = cli.newPrinter(stdout).Print(res)
		if err != nil {
			fmt.Fprintf(stderr, "!>>Could not print response: %s\n", err)
			code = ExitFailure
		}
	}

	err = output.Close()
	if err != nil {
		fmt.Fprintf(stderr, "!>>Could not finalize output: %s\n", err)
		code = ExitFailure
	}

	return code
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
