package quiz

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
	"github.com/avillaseca/redlab/internal/store"
	"github.com/avillaseca/redlab/internal/ui/components"
	"github.com/avillaseca/redlab/internal/ui/layout"
	"github.com/avillaseca/redlab/internal/ui/theme"
)

// QuizScreen walks the learner through the skills assessment and shows
// the scored results at the end.
type QuizScreen struct {
	stateRepo store.StateRepo

	index    int
	selected int
	answers  map[string]int

	done    bool
	results []assessment.Result
	path    []learningpath.Module
	saveErr string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a new QuizScreen.
func New(stateRepo store.StateRepo) *QuizScreen {
	return &QuizScreen{
		stateRepo: stateRepo,
		answers:   make(map[string]int),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Skills Assessment"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.done {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return q, nil
	}

	if q.done {
		if kmsg.String() == "enter" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return q, nil
	}

	question := assessment.Questions[q.index]

	switch kmsg.String() {
	case "up", "k":
		if q.selected > 0 {
			q.selected--
		}
	case "down", "j":
		if q.selected < len(question.Options)-1 {
			q.selected++
		}
	case "1", "2", "3", "4":
		n := int(kmsg.String()[0] - '1')
		if n < len(question.Options) {
			q.selected = n
			q.answer(question)
		}
	case "enter":
		q.answer(question)
	}

	return q, nil
}

// answer records the chosen option and advances, scoring the whole
// questionnaire after the last question.
func (q *QuizScreen) answer(question assessment.Question) {
	q.answers[question.ID] = question.Options[q.selected].Score
	q.selected = 0
	q.index++

	if q.index < len(assessment.Questions) {
		return
	}

	q.done = true
	q.results = assessment.CalculateResults(q.answers)
	q.path = learningpath.Generate(q.results)
	q.persist()
}

// persist stores the results and the generated path for the dashboard.
func (q *QuizScreen) persist() {
	if q.stateRepo == nil {
		return
	}
	ctx := context.Background()

	if raw, err := json.Marshal(q.results); err == nil {
		if err := q.stateRepo.Put(ctx, store.KeyAssessmentResults, string(raw)); err != nil {
			q.saveErr = err.Error()
		}
	}
	if raw, err := json.Marshal(q.path); err == nil {
		if err := q.stateRepo.Put(ctx, store.KeyLearningPath, string(raw)); err != nil {
			q.saveErr = err.Error()
		}
	}
}

func (q *QuizScreen) View(width, height int) string {
	if q.done {
		return q.renderResults(width, height)
	}
	return q.renderQuestion(width, height)
}

func (q *QuizScreen) renderQuestion(width, height int) string {
	question := assessment.Questions[q.index]

	var b strings.Builder
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Question %d of %d", q.index+1, len(assessment.Questions))))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Align(lipgloss.Left).Render(string(question.Category)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Bold(true).Render(question.Text))
	b.WriteString("\n\n")

	for i, opt := range question.Options {
		marker := "    "
		style := theme.Unselected
		if i == q.selected {
			marker = "  ▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%d. %s", marker, i+1, opt.Text)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	bar := components.NewProgressBar("", float64(q.index)/float64(len(assessment.Questions)), false, min(width-12, 60))
	b.WriteString(bar.View())

	card := theme.Card.Width(min(width-4, 80)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func (q *QuizScreen) renderResults(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("ASSESSMENT COMPLETE"))
	b.WriteString("\n\n")

	barWidth := min(width-16, 64)
	for _, r := range q.results {
		b.WriteString(theme.Body.Render(string(r.Category)))
		if r.GapIdentified {
			b.WriteString(theme.Blocked.Render("  ◆ gap"))
		}
		b.WriteString("\n")
		bar := components.NewProgressBar("", r.Percentage/100, true, barWidth)
		b.WriteString(bar.View())
		b.WriteString("  " + theme.Hint.Render(string(r.Level)))
		b.WriteString("\n\n")
	}

	if len(q.path) > 0 {
		b.WriteString(theme.Selected.Render(fmt.Sprintf(
			"LEARNING PATH — %d modules, ~%d min", len(q.path), learningpath.TotalTime(q.path))))
		for _, m := range q.path {
			b.WriteString("\n  " + theme.Body.Render(m.Title) +
				theme.Hint.Render(fmt.Sprintf("  (%s, %d min)", m.Difficulty, m.EstimatedTime)))
		}
	} else {
		b.WriteString(theme.Solved.Render("No skill gaps identified. Keep sharpening in the lab."))
	}

	if q.saveErr != "" {
		b.WriteString("\n\n" + theme.Blocked.Render("warning: results not saved: "+q.saveErr))
	}

	card := theme.Card.Width(min(width-4, 84)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}
