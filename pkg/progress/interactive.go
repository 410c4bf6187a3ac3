package progress

import (
	"io"
	"strconv"
	"time"

	"github.com/aholstenson/aget/pkg/network"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

var quitKey = key.NewBinding(
	key.WithKeys("ctrl+c"),
)

var styleTime = lipgloss.NewStyle().
	Width(6)

var styleMethod = lipgloss.NewStyle().
	Bold(true).
	PaddingLeft(1).
	PaddingRight(1)

var styleURL = lipgloss.NewStyle().Faint(true)

var styleStatus = lipgloss.NewStyle().
	Bold(true).
	PaddingLeft(1).
	PaddingRight(1)

var styleError = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FF7043"))

// Only the most recent debug lines are kept in the view.
const maxLogMessages = 5

type interactiveReporter struct {
	program *tea.Program
	done    chan struct{}

	request     *network.Request
	response    *network.Response
	logMessages []string
	closing     bool

	stopwatch stopwatch.Model
	spinner   spinner.Model
}

// NewInteractiveReporter starts a terminal view on w that shows a spinner
// while the request is in flight. The cancel function is invoked if the
// user quits the view before the reporter is closed. Input is read from
// standard input unless opts say otherwise.
func NewInteractiveReporter(w io.Writer, cancel func(), opts ...tea.ProgramOption) (Reporter, error) {
	m := newInteractiveReporter()

	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithOutput(w)}, opts...)...)
	m.program = p
	go func() {
		defer close(m.done)

		_, _ = p.Run()
		if !m.closing {
			cancel()
		}
	}()

	return m, nil
}

func newInteractiveReporter() *interactiveReporter {
	return &interactiveReporter{
		done: make(chan struct{}),

		stopwatch: stopwatch.NewWithInterval(time.Millisecond * 100),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

// Close clears the view and waits for the terminal to be released.
func (m *interactiveReporter) Close() error {
	m.program.Send(closeMsg{})
	<-m.done
	return nil
}

func (m *interactiveReporter) Debug(msg string) {
	m.program.Send(debugMessage(msg))
}

func (m *interactiveReporter) Error(err error, msg string) {
	m.program.Send(errorMessage(msg + ": " + err.Error()))
}

func (m *interactiveReporter) Request(req *network.Request) {
	m.program.Send(req)
}

func (m *interactiveReporter) Response(res *network.Response) {
	m.program.Send(res)
}

func (m *interactiveReporter) Init() tea.Cmd {
	return tea.Batch(
		m.stopwatch.Init(),
		m.spinner.Tick,
	)
}

func (m *interactiveReporter) View() string {
	if m.closing {
		return ""
	}

	s := m.spinner.View() + styleTime.Render(m.stopwatch.View())
	if m.request != nil {
		s += styleMethod.Render(m.request.Method.String()) + styleURL.Render(m.request.URL)
	}
	if m.response != nil {
		s += styleStatus.Render(strconv.Itoa(m.response.StatusCode)+" "+m.response.StatusPhrase) +
			humanize.Bytes(uint64(len(m.response.Body)))
	}
	s += "\n"

	for _, msg := range m.logMessages {
		s += msg + "\n"
	}
	return s
}

func (m *interactiveReporter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			return m, tea.Quit
		}
	case closeMsg:
		m.closing = true
		return m, tea.Quit
	case *network.Request:
		m.request = msg
	case *network.Response:
		m.response = msg
		return m, m.stopwatch.Stop()
	case debugMessage:
		m.appendLog(string(msg))
	case errorMessage:
		m.appendLog(styleError.Render("❌ " + string(msg)))
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case stopwatch.TickMsg, stopwatch.StartStopMsg:
		var cmd tea.Cmd
		m.stopwatch, cmd = m.stopwatch.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveReporter) appendLog(line string) {
	if len(m.logMessages) >= maxLogMessages {
		m.logMessages = m.logMessages[1:]
	}
	m.logMessages = append(m.logMessages, line)
}

type closeMsg struct{}

type debugMessage string

type errorMessage string
