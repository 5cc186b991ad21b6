package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/avillaseca/redlab/internal/ui/theme"
)

// ChatEntry is a single rendered transcript line.
type ChatEntry struct {
	Speaker string
	Text    string
	Local   bool // true for the user's own messages
}

// ChatLog renders a scrolling transcript panel. It keeps the tail of the
// conversation visible when the transcript exceeds the available height.
type ChatLog struct {
	Entries []ChatEntry
	Typing  bool // show a typing indicator after the last entry
}

// Append adds an entry to the transcript.
func (c *ChatLog) Append(speaker, text string, local bool) {
	c.Entries = append(c.Entries, ChatEntry{Speaker: speaker, Text: text, Local: local})
}

// Clear drops all entries.
func (c *ChatLog) Clear() {
	c.Entries = nil
	c.Typing = false
}

// View renders the transcript within the given width and height.
func (c ChatLog) View(width, height int) string {
	if width < 10 {
		width = 10
	}

	var lines []string
	for _, e := range c.Entries {
		speakerStyle := theme.Selected
		if e.Local {
			speakerStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
		}
		header := speakerStyle.Render(e.Speaker)
		body := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(width).
			Render(e.Text)
		lines = append(lines, header)
		lines = append(lines, strings.Split(body, "\n")...)
		lines = append(lines, "")
	}

	if c.Typing {
		lines = append(lines, theme.Hint.Render("● ● ●"))
	}

	// Keep the tail visible
	if height > 0 && len(lines) > height {
		lines = lines[len(lines)-height:]
	}

	return strings.Join(lines, "\n")
}
