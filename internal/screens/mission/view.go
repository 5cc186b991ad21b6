package mission

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/avillaseca/redlab/internal/levels"
	"github.com/avillaseca/redlab/internal/ui/theme"
)

func (m *MissionScreen) View(width, height int) string {
	st := m.session.State()

	switch {
	case st.IsLabComplete:
		return m.renderComplete(width, height)
	case m.showBriefing:
		return m.renderBriefing(width, height)
	default:
		return m.renderLab(width, height)
	}
}

// renderBriefing shows the level card: mission, defense class and reading.
func (m *MissionScreen) renderBriefing(width, height int) string {
	level := m.session.Level()

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("LEVEL %d — %s", level.ID, level.Name)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(level.Description))
	b.WriteString("\n\n")
	b.WriteString(theme.Selected.Render("MISSION"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(level.Mission))
	b.WriteString("\n\n")
	b.WriteString(theme.Selected.Render("DEFENSE"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(level.DefenseMechanism))

	if len(level.Resources) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Selected.Render("READING"))
		for _, r := range level.Resources {
			b.WriteString("\n")
			b.WriteString(theme.Body.Render("  "+r.Title) + " " + theme.Hint.Render(r.URL))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press Enter to open the terminal."))

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

// renderLab shows the split view: agent terminal left, tutor panel right.
func (m *MissionScreen) renderLab(width, height int) string {
	leftWidth := width * 3 / 5
	rightWidth := width - leftWidth - 1
	if rightWidth < 20 {
		leftWidth = width
		rightWidth = 0
	}

	left := m.renderTerminal(leftWidth, height)
	if rightWidth == 0 {
		return left
	}
	right := m.renderTutorPanel(rightWidth, height)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m *MissionScreen) renderTerminal(width, height int) string {
	innerWidth := width - 6
	logHeight := height - 8

	header := theme.Selected.Render("AGENT TERMINAL")
	log := m.agentLog.View(innerWidth, logHeight)

	var footer string
	st := m.session.State()
	switch {
	case st.IsSolved:
		footer = theme.Solved.Render(fmt.Sprintf("FLAG CAPTURED: %s", m.session.Level().Flag)) +
			"\n" + theme.Hint.Render("Press N for the next level.")
	case m.errMsg != "":
		footer = theme.Blocked.Render("provider error: "+m.errMsg) + "\n" + m.input.View()
	case m.session.InFlight():
		footer = theme.Hint.Render("waiting for the agent...")
	default:
		footer = m.input.View()
	}

	body := header + "\n\n" + log + "\n\n" + footer

	return theme.Card.
		Width(width - 2).
		Height(height - 2).
		Render(body)
}

func (m *MissionScreen) renderTutorPanel(width, height int) string {
	innerWidth := width - 6
	logHeight := height - 6

	header := theme.Selected.Render("DR. ARIS THORNE")
	var log string
	if len(m.tutorLog.Entries) == 0 && !m.tutorLog.Typing {
		log = theme.Hint.Render("Feedback on each attempt appears here.")
	} else {
		log = m.tutorLog.View(innerWidth, logHeight)
	}

	return theme.Card.
		Width(width - 2).
		Height(height - 2).
		Render(header + "\n\n" + log)
}

// renderComplete shows the completion certificate.
func (m *MissionScreen) renderComplete(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("LAB COMPLETE"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"All %d defense levels breached. You have demonstrated working\ncommand of direct override, filter evasion, persona adoption,\nprefix injection and context poisoning techniques.", levels.Count())))
	b.WriteString("\n\n")
	b.WriteString(theme.Selected.Render("CERTIFICATE OF COMPLETION"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("serial " + m.certSerial))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press R to restart the lab or Esc to go back."))

	card := theme.Card.Width(min(width-4, 72)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}
