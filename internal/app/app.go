package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avillaseca/redlab/internal/lab"
	"github.com/avillaseca/redlab/internal/levels"
	"github.com/avillaseca/redlab/internal/llm"
	"github.com/avillaseca/redlab/internal/router"
	"github.com/avillaseca/redlab/internal/screen"
	"github.com/avillaseca/redlab/internal/screens/home"
	"github.com/avillaseca/redlab/internal/store"
	"github.com/avillaseca/redlab/internal/ui/layout"
)

// Options carries the dependencies built in cmd and injected into the TUI.
type Options struct {
	Provider    llm.Provider
	AttemptRepo store.AttemptRepo
	StateRepo   store.StateRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *lab.Session
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	session := lab.NewSession()
	homeScreen := home.New(home.Deps{
		Provider:    opts.Provider,
		Session:     session,
		AttemptRepo: opts.AttemptRepo,
		StateRepo:   opts.StateRepo,
	})
	return AppModel{
		router:  router.New(homeScreen),
		session: session,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	st := m.session.State()
	header := layout.RenderHeader(title, st.CurrentLevel, levels.Count(), st.Attempts, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for key hints, falling back to
// navigation defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
