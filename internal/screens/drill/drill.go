package drill

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avillaseca/redlab/internal/practice"
	"github.com/avillaseca/redlab/internal/screen"
	"github.com/avillaseca/redlab/internal/ui/components"
	"github.com/avillaseca/redlab/internal/ui/layout"
	"github.com/avillaseca/redlab/internal/ui/theme"
)

type mode int

const (
	modeList mode = iota
	modeRun
	modeResult
)

// DrillScreen runs the attack-detection drills: pick a scenario, analyze
// the artifact, call the verdict, read the explanation.
type DrillScreen struct {
	mode     mode
	selected int

	input      components.TextInput
	hintsShown int
	answer     string
	correct    bool
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a DrillScreen showing the scenario list.
func New() *DrillScreen {
	return &DrillScreen{
		input: components.NewTextInput("Describe your analysis or the defense you would build...", 0),
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	return nil
}

func (d *DrillScreen) Title() string {
	return "Practice Scenarios"
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	switch d.mode {
	case modeRun:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Check"},
			{Key: "Tab", Description: "Hint"},
			{Key: "Esc", Description: "Back"},
		}
	case modeResult:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Q", Description: "Scenarios"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (d *DrillScreen) scenario() *practice.Scenario {
	return &practice.Scenarios[d.selected]
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if d.mode == modeRun {
			var cmd tea.Cmd
			d.input, cmd = d.input.Update(msg)
			return d, cmd
		}
		return d, nil
	}

	switch d.mode {
	case modeList:
		return d.handleListKey(kmsg)
	case modeRun:
		return d.handleRunKey(kmsg)
	default:
		return d.handleResultKey(kmsg)
	}
}

func (d *DrillScreen) handleListKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		if d.selected < len(practice.Scenarios)-1 {
			d.selected++
		}
	case "enter":
		d.mode = modeRun
		d.hintsShown = 0
		d.answer = ""
		d.input.Clear()
		return d, d.input.Focus()
	}
	return d, nil
}

func (d *DrillScreen) handleRunKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		answer := strings.TrimSpace(d.input.Value())
		if answer == "" {
			return d, nil
		}
		d.answer = answer
		d.correct = d.scenario().Evaluate(answer)
		d.mode = modeResult
		d.input.Blur()
		return d, nil
	case "tab":
		if d.hintsShown < len(d.scenario().Hints) {
			d.hintsShown++
		}
		return d, nil
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *DrillScreen) handleResultKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r", "R":
		d.mode = modeRun
		d.hintsShown = 0
		d.answer = ""
		d.input.Clear()
		return d, d.input.Focus()
	case "q", "Q", "backspace":
		d.mode = modeList
		d.answer = ""
		d.input.Clear()
	}
	return d, nil
}

func (d *DrillScreen) View(width, height int) string {
	if d.mode == modeList {
		return d.renderList(width, height)
	}
	return d.renderScenario(width, height)
}

func (d *DrillScreen) renderList(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("PRACTICE SCENARIOS"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Real attack artifacts. Call the verdict, get the explanation."))
	b.WriteString("\n\n")

	for i, s := range practice.Scenarios {
		line := s.Title + theme.Hint.Render(fmt.Sprintf("  %s · %s", s.Category, s.Difficulty))
		if i == d.selected {
			b.WriteString(theme.Selected.Render("  ▸ ") + line)
		} else {
			b.WriteString("    " + line)
		}
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-4, 84)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (d *DrillScreen) renderScenario(width, height int) string {
	s := d.scenario()
	innerWidth := min(width-12, 76)

	var b strings.Builder
	b.WriteString(theme.Title.Render(s.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s · %s", s.Category, s.Difficulty)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(s.Description))
	b.WriteString("\n\n")

	promptBlock := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Width(innerWidth).
		Render(s.Prompt)
	b.WriteString(theme.Selected.Render("ARTIFACT"))
	b.WriteString("\n")
	b.WriteString(promptBlock)

	if d.hintsShown > 0 {
		hint := s.Hints[d.hintsShown-1]
		b.WriteString("\n\n")
		b.WriteString(theme.Selected.Render(fmt.Sprintf("HINT %d/%d", d.hintsShown, len(s.Hints))))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(hint))
	}

	b.WriteString("\n\n")
	if d.mode == modeResult {
		b.WriteString(d.renderResult(s))
	} else {
		b.WriteString(d.input.View())
	}

	card := theme.Card.Width(min(width-4, 84)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (d *DrillScreen) renderResult(s *practice.Scenario) string {
	var b strings.Builder
	if d.correct {
		b.WriteString(theme.Solved.Render("SOLID ANALYSIS"))
	} else {
		b.WriteString(theme.Blocked.Render("LOOK AGAIN"))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(s.Explanation))
	if !d.correct {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Work through the hints and the explanation, then press R to retry."))
	}
	return b.String()
}
