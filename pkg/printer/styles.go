package printer

import "github.com/charmbracelet/lipgloss"

// Styles decorates the parts of the output that are not response data. A
// nil *Styles prints plain text.
type Styles struct {
	Default lipgloss.Style
	Status  map[int]lipgloss.Style
	Section lipgloss.Style
	Header  lipgloss.Style
	Faint   lipgloss.Style
}

// DefaultStyles colors the status line by the class of the status code.
func DefaultStyles() *Styles {
	return &Styles{
		Default: lipgloss.NewStyle().Bold(true),
		Status: map[int]lipgloss.Style{
			2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")),
			3: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FDD835")),
			4: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726")),
			5: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF7043")),
		},
		Section: lipgloss.NewStyle().Bold(true),
		Header:  lipgloss.NewStyle().Faint(true),
		Faint:   lipgloss.NewStyle().Faint(true).Italic(true),
	}
}

func (s *Styles) status(code int, text string) string {
	if s == nil {
		return text
	}

	if style, ok := s.Status[code/100]; ok {
		return style.Render(text)
	}
	return s.Default.Render(text)
}

func (s *Styles) section(text string) string {
	if s == nil {
		return text
	}
	return s.Section.Render(text)
}

func (s *Styles) header(text string) string {
	if s == nil {
		return text
	}
	return s.Header.Render(text)
}

func (s *Styles) placeholder(text string) string {
	if s == nil {
		return text
	}
	return s.Faint.Render(text)
}
