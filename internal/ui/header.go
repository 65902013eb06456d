package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Detail is one key/value line of a header or result box. Details render in
// the order they were added.
type Detail struct {
	Key   string
	Value string
}

// Header is the banner printed when a command starts.
type Header struct {
	Title   string   // e.g., "PIN ENTRY"
	Command string   // e.g., "tokenui-emu pin"
	Params  []Detail // e.g., {"Debug link", "127.0.0.1:21325"}
	Width   int
}

// NewHeader creates a header sized to the current terminal.
func NewHeader(title, command string) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// AddParam appends a parameter line.
func (h *Header) AddParam(key, value string) *Header {
	h.Params = append(h.Params, Detail{Key: key, Value: value})
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := max(h.Width, MinTerminalWidth)

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(h.Title))
	commandLine := HeaderCommandStyle.Render(h.Command)
	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)

	if len(h.Params) > 0 {
		// Account for border and padding
		divider := RenderHorizontalDivider(max(width-6, 10), "─")

		keyWidth := 0
		for _, p := range h.Params {
			keyWidth = max(keyWidth, len(p.Key)+1)
		}
		lines := make([]string, 0, len(h.Params))
		for _, p := range h.Params {
			key := HeaderParamKeyStyle.Width(keyWidth + 2).Render(p.Key + ":")
			lines = append(lines, key+" "+HeaderParamValueStyle.Render(p.Value))
		}
		content = lipgloss.JoinVertical(lipgloss.Left, content, divider, strings.Join(lines, "\n"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}
