package tutorchat

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avillaseca/redlab/internal/screen"
	"github.com/avillaseca/redlab/internal/socratic"
	"github.com/avillaseca/redlab/internal/ui/components"
	"github.com/avillaseca/redlab/internal/ui/layout"
	"github.com/avillaseca/redlab/internal/ui/theme"
)

// thinkDelay is the simulated thinking pause before each reply.
const thinkDelay = 1500 * time.Millisecond

// replyMsg delivers the tutor's reply after the thinking pause.
type replyMsg struct {
	Text string
}

// TutorScreen is the offline Socratic tutor chat.
type TutorScreen struct {
	input    components.TextInput
	log      components.ChatLog
	thinking bool
}

var _ screen.Screen = (*TutorScreen)(nil)
var _ screen.KeyHintProvider = (*TutorScreen)(nil)

// New creates a TutorScreen opening with the standard greeting.
func New() *TutorScreen {
	t := &TutorScreen{
		input: components.NewTextInput("Ask, or press 1-4 for a starter...", 0),
	}
	t.log.Append("tutor", socratic.Greeting, false)
	return t
}

func (t *TutorScreen) Init() tea.Cmd {
	return t.input.Init()
}

func (t *TutorScreen) Title() string {
	return "Socratic Tutor"
}

func (t *TutorScreen) KeyHints() []layout.KeyHint {
	if t.thinking {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "1-4", Description: "Quick question"},
		{Key: "Esc", Description: "Back"},
	}
}

func (t *TutorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		t.thinking = false
		t.log.Typing = false
		t.log.Append("tutor", msg.Text, false)
		return t, t.input.Focus()

	case tea.KeyMsg:
		if t.thinking {
			return t, nil
		}
		switch key := msg.String(); key {
		case "enter":
			return t.send(t.input.Value())
		case "1", "2", "3", "4":
			// Digits pick a starter only while the box is empty.
			if t.input.Value() == "" {
				n := int(key[0] - '1')
				if n < len(socratic.QuickQuestions) {
					return t.send(socratic.QuickQuestions[n])
				}
			}
		}
	}

	if !t.thinking {
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		return t, cmd
	}

	return t, nil
}

// send commits the student message and schedules the delayed reply.
func (t *TutorScreen) send(text string) (screen.Screen, tea.Cmd) {
	text = strings.TrimSpace(text)
	if text == "" {
		return t, nil
	}

	t.input.Clear()
	t.input.Blur()
	t.log.Append("you", text, true)
	t.log.Typing = true
	t.thinking = true

	reply := socratic.Respond(text)
	return t, tea.Tick(thinkDelay, func(time.Time) tea.Msg {
		return replyMsg{Text: reply}
	})
}

func (t *TutorScreen) View(width, height int) string {
	innerWidth := min(width-8, 86)
	logHeight := height - 10

	var b strings.Builder
	b.WriteString(t.log.View(innerWidth, logHeight))
	b.WriteString("\n")

	if len(t.log.Entries) == 1 && !t.thinking {
		b.WriteString("\n" + theme.Hint.Render("Starters:"))
		for i, q := range socratic.QuickQuestions {
			b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf("  %d. %s", i+1, q)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + t.input.View())

	card := theme.Card.Width(min(width-4, 92)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Top).
		Render(card)
}
