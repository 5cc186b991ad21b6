package router

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avillaseca/redlab/internal/screen"
)

// stubScreen is a minimal screen.Screen that records Init calls.
type stubScreen struct {
	name  string
	inits int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string           { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

func TestRouter_PushPopNavigation(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)
	require.Equal(t, 1, r.Depth())
	require.Same(t, screen.Screen(home), r.Active())

	child := &stubScreen{name: "child"}
	r.Update(PushScreenMsg{Screen: child})
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "child", r.Active().Title())
	assert.Equal(t, 1, child.inits)

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "home", r.Active().Title())
}

func TestRouter_PopNeverEmptiesStack(t *testing.T) {
	r := New(&stubScreen{name: "home"})
	r.Update(PopScreenMsg{})
	r.Update(PopScreenMsg{})
	require.Equal(t, 1, r.Depth())
	require.NotNil(t, r.Active())
}

func TestRouter_ReplaceKeepsDepth(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "a"}})

	b := &stubScreen{name: "b"}
	r.Update(ReplaceScreenMsg{Screen: b})
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, "b", r.Active().Title())
	assert.Equal(t, 1, b.inits)

	r.Update(PopScreenMsg{})
	assert.Equal(t, "home", r.Active().Title())
}

func TestRouter_ViewRendersActiveScreen(t *testing.T) {
	r := New(&stubScreen{name: "home"})
	for i := 0; i < 3; i++ {
		r.Update(PushScreenMsg{Screen: &stubScreen{name: fmt.Sprintf("s%d", i)}})
	}
	assert.Equal(t, "s2", r.View(80, 24))
}
