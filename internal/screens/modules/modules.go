package modules

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/avillaseca/redlab/internal/assessment"
	"github.com/avillaseca/redlab/internal/content"
	"github.com/avillaseca/redlab/internal/learningpath"
	"github.com/avillaseca/redlab/internal/screen"
	"github.com/avillaseca/redlab/internal/store"
	"github.com/avillaseca/redlab/internal/ui/layout"
	"github.com/avillaseca/redlab/internal/ui/theme"
)

// ModulesScreen browses the learning module catalog. Modules with unmet
// prerequisites are locked; completing a module persists immediately.
type ModulesScreen struct {
	stateRepo store.StateRepo

	selected   int
	detailMode bool
	completed  map[string]bool

	// intel holds synced notebook updates; most use virtual module IDs
	// outside the catalog and render as their own section.
	intel   []content.ModuleContentUpdate
	updates map[string]content.ModuleContentUpdate
	saveErr string
}

var _ screen.Screen = (*ModulesScreen)(nil)
var _ screen.KeyHintProvider = (*ModulesScreen)(nil)

// New creates a ModulesScreen, loading completion state and any synced
// content updates.
func New(stateRepo store.StateRepo) *ModulesScreen {
	m := &ModulesScreen{
		stateRepo: stateRepo,
		completed: make(map[string]bool),
		updates:   make(map[string]content.ModuleContentUpdate),
	}
	if stateRepo == nil {
		return m
	}
	ctx := context.Background()

	if raw, ok, _ := stateRepo.Get(ctx, store.KeyCompletedModules); ok {
		var ids []string
		if json.Unmarshal([]byte(raw), &ids) == nil {
			for _, id := range ids {
				m.completed[id] = true
			}
		}
	}

	if raw, ok, _ := stateRepo.Get(ctx, store.KeyContentUpdates); ok {
		var list []content.ModuleContentUpdate
		if json.Unmarshal([]byte(raw), &list) == nil {
			m.intel = list
			for _, u := range list {
				m.updates[u.ModuleID] = u
			}
		}
	}

	return m
}

func (m *ModulesScreen) Init() tea.Cmd {
	return nil
}

func (m *ModulesScreen) Title() string {
	return "Learning Modules"
}

func (m *ModulesScreen) KeyHints() []layout.KeyHint {
	if m.detailMode {
		return []layout.KeyHint{
			{Key: "C", Description: "Toggle complete"},
			{Key: "Q", Description: "Back to list"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (m *ModulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.detailMode {
		switch kmsg.String() {
		case "q", "Q", "backspace":
			m.detailMode = false
		case "c", "C":
			mod := learningpath.Modules[m.selected]
			if m.unlocked(mod) {
				m.toggleComplete(mod.ID)
			}
		}
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(learningpath.Modules)-1 {
			m.selected++
		}
	case "enter":
		m.detailMode = true
	}

	return m, nil
}

// unlocked reports whether all prerequisites are complete.
func (m *ModulesScreen) unlocked(mod learningpath.Module) bool {
	for _, pre := range mod.Prerequisites {
		if !m.completed[pre] {
			return false
		}
	}
	return true
}

// toggleComplete flips completion for a module and persists the set.
func (m *ModulesScreen) toggleComplete(id string) {
	if m.completed[id] {
		delete(m.completed, id)
	} else {
		m.completed[id] = true
	}

	if m.stateRepo == nil {
		return
	}
	ids := make([]string, 0, len(m.completed))
	for cid := range m.completed {
		ids = append(ids, cid)
	}
	sort.Strings(ids)
	raw, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := m.stateRepo.Put(context.Background(), store.KeyCompletedModules, string(raw)); err != nil {
		m.saveErr = err.Error()
	}
}

func (m *ModulesScreen) View(width, height int) string {
	if m.detailMode {
		return m.renderDetail(width, height)
	}
	return m.renderList(width, height)
}

func (m *ModulesScreen) renderList(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("LEARNING MODULES"))
	b.WriteString("\n\n")

	var lastCategory assessment.Category
	for i, mod := range learningpath.Modules {
		if mod.Category != lastCategory {
			if lastCategory != "" {
				b.WriteString("\n")
			}
			b.WriteString(theme.Hint.Render(string(mod.Category)))
			b.WriteString("\n")
			lastCategory = mod.Category
		}

		mark := "○"
		markStyle := theme.Unselected
		switch {
		case m.completed[mod.ID]:
			mark = "●"
			markStyle = theme.Solved
		case !m.unlocked(mod):
			mark = "◌"
			markStyle = theme.Blocked
		}

		line := fmt.Sprintf("%s %s", markStyle.Render(mark), mod.Title)
		if _, hasUpdate := m.updates[mod.ID]; hasUpdate {
			line += theme.Selected.Render(" ✦")
		}
		line += theme.Hint.Render(fmt.Sprintf("  %s, %d min", mod.Difficulty, mod.EstimatedTime))

		if i == m.selected {
			b.WriteString(theme.Selected.Render("  ▸ ") + line)
		} else {
			b.WriteString("    " + line)
		}
		b.WriteString("\n")
	}

	if len(m.intel) > 0 {
		b.WriteString("\n" + theme.Hint.Render("Notebook Intel"))
		for _, u := range m.intel {
			b.WriteString("\n    " + theme.Selected.Render("✦ ") + theme.Body.Render(u.Title) +
				theme.Hint.Render("  "+content.TimeAgo(u.Timestamp)))
			b.WriteString("\n      " + theme.Hint.Render(truncateLine(u.NewContent, 72)))
		}
		b.WriteString("\n")
	}

	if m.saveErr != "" {
		b.WriteString("\n" + theme.Blocked.Render("save error: "+m.saveErr))
	}

	card := theme.Card.Width(min(width-4, 84)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}

func truncateLine(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func (m *ModulesScreen) renderDetail(width, height int) string {
	mod := learningpath.Modules[m.selected]

	var b strings.Builder
	b.WriteString(theme.Title.Render(mod.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%s · %s · %d min", mod.Category, mod.Difficulty, mod.EstimatedTime)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(mod.Description))

	if len(mod.Prerequisites) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Selected.Render("PREREQUISITES"))
		for _, pre := range mod.Prerequisites {
			mark := theme.Blocked.Render("○")
			if m.completed[pre] {
				mark = theme.Solved.Render("●")
			}
			title := pre
			if p := learningpath.ModuleByID(pre); p != nil {
				title = p.Title
			}
			b.WriteString("\n  " + mark + " " + theme.Body.Render(title))
		}
	}

	if update, ok := m.updates[mod.ID]; ok {
		b.WriteString("\n\n")
		b.WriteString(theme.Selected.Render("FRESH FROM THE NOTEBOOK"))
		b.WriteString("  " + theme.Hint.Render(content.TimeAgo(update.Timestamp)))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(update.NewContent))
		for _, src := range update.Sources {
			b.WriteString("\n  " + theme.Hint.Render("– "+src.Source))
		}
	}

	b.WriteString("\n\n")
	switch {
	case !m.unlocked(mod):
		b.WriteString(theme.Blocked.Render("Locked: complete the prerequisites first."))
	case m.completed[mod.ID]:
		b.WriteString(theme.Solved.Render("Completed. Press C to mark as not done."))
	default:
		b.WriteString(theme.Hint.Render("Press C to mark as complete."))
	}

	card := theme.Card.Width(min(width-4, 84)).Render(b.String())

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Render(card)
}
