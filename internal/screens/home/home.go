package home

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avillaseca/redlab/internal/lab"
	"github.com/avillaseca/redlab/internal/levels"
	"github.com/avillaseca/redlab/internal/llm"
	"github.com/avillaseca/redlab/internal/router"
	"github.com/avillaseca/redlab/internal/screen"
	"github.com/avillaseca/redlab/internal/screens/dashboard"
	"github.com/avillaseca/redlab/internal/screens/drill"
	"github.com/avillaseca/redlab/internal/screens/mission"
	"github.com/avillaseca/redlab/internal/screens/modules"
	"github.com/avillaseca/redlab/internal/screens/quiz"
	"github.com/avillaseca/redlab/internal/screens/tutorchat"
	"github.com/avillaseca/redlab/internal/store"
	"github.com/avillaseca/redlab/internal/ui/components"
	"github.com/avillaseca/redlab/internal/ui/theme"
)

// Deps carries the dependencies the home screen hands to child screens.
type Deps struct {
	Provider    llm.Provider
	Session     *lab.Session
	AttemptRepo store.AttemptRepo
	StateRepo   store.StateRepo
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu             components.Menu
	solvedLevels     int
	completedModules int
	hasAssessment    bool
	providerMissing  bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	ctx := context.Background()

	var solvedCount int
	if deps.AttemptRepo != nil {
		if solved, err := deps.AttemptRepo.SolvedLevels(ctx); err == nil {
			solvedCount = len(solved)
		}
	}

	var completedCount int
	var hasAssessment bool
	if deps.StateRepo != nil {
		if raw, ok, err := deps.StateRepo.Get(ctx, store.KeyCompletedModules); err == nil && ok {
			var ids []string
			if json.Unmarshal([]byte(raw), &ids) == nil {
				completedCount = len(ids)
			}
		}
		if _, ok, err := deps.StateRepo.Get(ctx, store.KeyAssessmentResults); err == nil && ok {
			hasAssessment = true
		}
	}

	items := []components.MenuItem{
		{
			Label:    "INJECTION LAB",
			Disabled: deps.Provider == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: mission.New(deps.Provider, deps.Session, deps.AttemptRepo),
					}
				}
			},
		},
		{Label: "SKILLS ASSESSMENT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(deps.StateRepo)}
			}
		}},
		{Label: "DASHBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(deps.StateRepo)}
			}
		}},
		{Label: "LEARNING MODULES", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: modules.New(deps.StateRepo)}
			}
		}},
		{Label: "PRACTICE SCENARIOS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: drill.New()}
			}
		}},
		{Label: "SOCRATIC TUTOR", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tutorchat.New()}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:             components.NewMenu(items),
		solvedLevels:     solvedCount,
		completedModules: completedCount,
		hasAssessment:    hasAssessment,
		providerMissing:  deps.Provider == nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("R E D L A B")
	subtitle := theme.Subtitle.Width(width).Render("AI Red Teaming Training Ground")
	sections = append(sections, title, subtitle, "")

	sections = append(sections, h.renderStats(width), "")

	menuBox := theme.Card.Render(h.menu.View())
	sections = append(sections, lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(menuBox))

	if h.providerMissing {
		warn := theme.Hint.Width(width).Align(lipgloss.Center).
			Render("No LLM API key configured. The injection lab is unavailable; set GEMINI_API_KEY to enable it.")
		sections = append(sections, "", warn)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) renderStats(width int) string {
	assessed := "pending"
	if h.hasAssessment {
		assessed = "complete"
	}

	parts := []string{
		theme.Selected.Render("Levels") + theme.Body.Render(
			fmt.Sprintf(" %d/%d", h.solvedLevels, levels.Count())),
		theme.Selected.Render("Modules") + theme.Body.Render(fmt.Sprintf(" %d", h.completedModules)),
		theme.Selected.Render("Assessment") + theme.Body.Render(" "+assessed),
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(parts, "    "))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
