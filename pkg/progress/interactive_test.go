package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aholstenson/aget/pkg/network"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestInteractiveView(t *testing.T) {
	m := newInteractiveReporter()

	m.Update(&network.Request{URL: "http://example.com/", Method: network.MethodPatch})
	m.Update(debugMessage("User-Agent: aget"))
	assert.Contains(t, m.View(), "PATCH")
	assert.Contains(t, m.View(), "http://example.com/")
	assert.Contains(t, m.View(), "User-Agent: aget\n")

	m.Update(&network.Response{StatusCode: 201, StatusPhrase: "Created", Body: make([]byte, 2048)})
	assert.Contains(t, m.View(), "201 Created")
	assert.Contains(t, m.View(), "2.0 kB")

	_, cmd := m.Update(closeMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestInteractiveKeepsRecentLog(t *testing.T) {
	m := newInteractiveReporter()
	for i := 0; i < maxLogMessages+2; i++ {
		m.Update(debugMessage("line " + string(rune('a'+i))))
	}

	require.Len(t, m.logMessages, maxLogMessages)
	assert.Equal(t, "line c", m.logMessages[0])
	assert.Equal(t, "line g", m.logMessages[maxLogMessages-1])
}

func TestInteractiveQuitKey(t *testing.T) {
	m := newInteractiveReporter()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.False(t, m.closing)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Nil(t, cmd)
}

func TestInteractiveCloseClearsView(t *testing.T) {
	var out bytes.Buffer
	canceled := false
	reporter, err := NewInteractiveReporter(&out, func() { canceled = true }, tea.WithInput(strings.NewReader("")), tea.WithoutSignalHandler())
	require.NoError(t, err)

	reporter.Request(&network.Request{URL: "http://example.com/", Method: network.MethodGet})
	reporter.Debug("User-Agent: aget")
	reporter.Error(errors.New("boom"), "Could not write request")
	reporter.Response(&network.Response{StatusCode: 200, StatusPhrase: "OK"})

	closed := make(chan error, 1)
	go func() { closed <- reporter.Close() }()

	select {
	case err := <-closed:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return")
	}

	assert.False(t, canceled)
	assert.Empty(t, reporter.(*interactiveReporter).View())
}

func TestInteractiveCtrlCCancels(t *testing.T) {
	var out bytes.Buffer
	canceled := make(chan struct{})
	reporter, err := NewInteractiveReporter(&out, func() { close(canceled) }, tea.WithInput(strings.NewReader("\x03")), tea.WithoutSignalHandler())
	require.NoError(t, err)

	select {
	case <-canceled:
	case <-time.After(5 * time.Second):
		t.Fatal("ctrl+c did not cancel the request")
	}

	// The program is gone, so closing must not block
	require.NoError(t, reporter.Close())
}
