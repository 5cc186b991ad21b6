package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avillaseca/redlab/internal/assessment"
	"github.com/avillaseca/redlab/internal/learningpath"
	"github.com/avillaseca/redlab/internal/router"
	"github.com/avillaseca/redlab/internal/screen"
	"github.com/avillaseca/redlab/internal/screens/quiz"
	"github.com/avillaseca/redlab/internal/store"
	"github.com/avillaseca/redlab/internal/ui/components"
	"github.com/avillaseca/redlab/internal/ui/layout"
	"github.com/avillaseca/redlab/internal/ui/theme"
)

// DashboardScreen shows assessment results, identified gaps and progress
// through the learning path.
type DashboardScreen struct {
	stateRepo store.StateRepo
	results   []assessment.Result
	path      []learningpath.Module
	completed map[string]bool
	loadErr   string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen, loading persisted state eagerly.
func New(stateRepo store.StateRepo) *DashboardScreen {
	d := &DashboardScreen{stateRepo: stateRepo, completed: make(map[string]bool)}
	if stateRepo == nil {
		return d
	}
	ctx := context.Background()

	if raw, ok, err := stateRepo.Get(ctx, store.KeyAssessmentResults); err != nil {
		d.loadErr = err.Error()
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &d.results); err != nil {
			d.loadErr = err.Error()
		}
	}

	if raw, ok, _ := stateRepo.Get(ctx, store.KeyLearningPath); ok {
		_ = json.Unmarshal([]byte(raw), &d.path)
	}

	if raw, ok, _ := stateRepo.Get(ctx, store.KeyCompletedModules); ok {
		var ids []string
		if json.Unmarshal([]byte(raw), &ids) == nil {
			for _, id := range ids {
				d.completed[id] = true
			}
		}
	}

	return d
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	if len(d.results) == 0 {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Take assessment"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Without results the dashboard routes straight into the assessment.
	if kmsg, ok := msg.(tea.KeyMsg); ok && len(d.results) == 0 && kmsg.String() == "enter" {
		repo := d.stateRepo
		return d, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: quiz.New(repo)}
		}
	}
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	if len(d.results) == 0 {
		return d.renderEmpty(width, height)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("SKILL DASHBOARD"))
	b.WriteString("\n\n")

	barWidth := min(width-16, 64)
	gaps := 0
	for _, r := range d.results {
		label := string(r.Category)
		if r.GapIdentified {
			gaps++
			label += theme.Blocked.Render("  ◆")
		}
		b.WriteString(theme.Body.Render(label))
		b.WriteString("\n")
		bar := components.NewProgressBar("", r.Percentage/100, true, barWidth)
		b.WriteString(bar.View())
		b.WriteString("  " + theme.Hint.Render(string(r.Level)))
		b.WriteString("\n\n")
	}

	b.WriteString(d.renderPath())

	if d.loadErr != "" {
		b.WriteString("\n\n" + theme.Blocked.Render("load error: "+d.loadErr))
	}

	card := theme.Card.Width(min(width-4, 84)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (d *DashboardScreen) renderPath() string {
	var b strings.Builder

	if len(d.path) == 0 {
		b.WriteString(theme.Solved.Render("No skill gaps. The learning path is empty."))
		return b.String()
	}

	done := 0
	for _, m := range d.path {
		if d.completed[m.ID] {
			done++
		}
	}

	b.WriteString(theme.Selected.Render(fmt.Sprintf(
		"LEARNING PATH  %d/%d complete, ~%d min total",
		done, len(d.path), learningpath.TotalTime(d.path))))
	for _, m := range d.path {
		mark := "  ○ "
		style := theme.Body
		if d.completed[m.ID] {
			mark = "  ● "
			style = theme.Solved
		}
		b.WriteString("\n" + style.Render(mark+m.Title) +
			theme.Hint.Render(fmt.Sprintf("  %s, %d min", m.Difficulty, m.EstimatedTime)))
	}

	return b.String()
}

func (d *DashboardScreen) renderEmpty(width, height int) string {
	msg := theme.Body.Render("No assessment results yet.") + "\n\n" +
		theme.Hint.Render("Press Enter to take the skills assessment now.")
	card := theme.Card.Render(msg)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}
