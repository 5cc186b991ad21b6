package mission

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/avillaseca/redlab/internal/lab"
	"github.com/avillaseca/redlab/internal/llm"
	"github.com/avillaseca/redlab/internal/router"
	"github.com/avillaseca/redlab/internal/screen"
	"github.com/avillaseca/redlab/internal/store"
	"github.com/avillaseca/redlab/internal/ui/components"
	"github.com/avillaseca/redlab/internal/ui/layout"

	"github.com/google/uuid"
)

// MissionScreen runs the injection lab: a level briefing, the agent
// terminal and the tutor feedback panel.
type MissionScreen struct {
	session     *lab.Session
	agent       *lab.Agent
	tutor       *lab.Tutor
	attemptRepo store.AttemptRepo

	input    components.TextInput
	agentLog components.ChatLog
	tutorLog components.ChatLog

	// runID tags every attempt of one lab run, first level through
	// completion or reset.
	runID string

	showBriefing bool
	errMsg       string
	certSerial   string
}

var _ screen.Screen = (*MissionScreen)(nil)
var _ screen.KeyHintProvider = (*MissionScreen)(nil)

// New creates a new MissionScreen with injected dependencies.
func New(provider llm.Provider, session *lab.Session, attemptRepo store.AttemptRepo) *MissionScreen {
	return &MissionScreen{
		session:      session,
		agent:        lab.NewAgent(provider),
		tutor:        lab.NewTutor(provider),
		attemptRepo:  attemptRepo,
		runID:        uuid.New().String(),
		input:        components.NewTextInput("Craft your injection...", 0),
		showBriefing: true,
	}
}

func (m *MissionScreen) Init() tea.Cmd {
	m.syncTranscripts()
	return m.input.Init()
}

func (m *MissionScreen) Title() string {
	return "Injection Lab"
}

func (m *MissionScreen) KeyHints() []layout.KeyHint {
	st := m.session.State()
	switch {
	case st.IsLabComplete:
		return []layout.KeyHint{
			{Key: "R", Description: "Restart lab"},
			{Key: "Esc", Description: "Back"},
		}
	case m.showBriefing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin"},
			{Key: "Esc", Description: "Back"},
		}
	case st.IsSolved:
		return []layout.KeyHint{
			{Key: "N", Description: "Next level"},
			{Key: "Esc", Description: "Back"},
		}
	case m.session.InFlight():
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Ctrl+B", Description: "Briefing"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (m *MissionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case agentRespondedMsg:
		return m.handleAgentResponded(msg)

	case tutorRespondedMsg:
		return m.handleTutorResponded(msg)

	case attemptFailedMsg:
		m.session.Fail()
		m.errMsg = msg.Err.Error()
		m.agentLog.Typing = false
		m.syncTranscripts()
		return m, m.input.Focus()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.acceptingInput() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *MissionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	st := m.session.State()

	if st.IsLabComplete {
		switch key {
		case "r", "R":
			m.session.Reset()
			m.runID = uuid.New().String()
			m.certSerial = ""
			m.showBriefing = true
			m.errMsg = ""
			m.syncTranscripts()
			return m, nil
		case "esc":
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return m, nil
	}

	if m.showBriefing {
		if key == "enter" {
			m.showBriefing = false
			return m, m.input.Focus()
		}
		return m, nil
	}

	if st.IsSolved {
		switch key {
		case "n", "N", "enter":
			return m.advanceLevel()
		}
		return m, nil
	}

	if m.session.InFlight() {
		return m, nil
	}

	switch key {
	case "enter":
		return m.submitAttempt()
	case "ctrl+b":
		m.showBriefing = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitAttempt starts the agent round trip for the typed injection.
func (m *MissionScreen) submitAttempt() (screen.Screen, tea.Cmd) {
	input := m.input.Value()
	if err := m.session.BeginAttempt(input); err != nil {
		return m, nil
	}

	m.input.Clear()
	m.input.Blur()
	m.errMsg = ""
	m.agentLog.Append("you", m.session.PendingInput(), true)
	m.agentLog.Typing = true

	history := m.session.AgentTranscript()
	level := m.session.Level()
	pending := m.session.PendingInput()
	return m, func() tea.Msg {
		text, err := m.agent.Query(context.Background(), level, history, pending)
		if err != nil {
			return attemptFailedMsg{Err: err}
		}
		return agentRespondedMsg{Text: text}
	}
}

func (m *MissionScreen) handleAgentResponded(msg agentRespondedMsg) (screen.Screen, tea.Cmd) {
	m.session.ApplyAgentResponse(msg.Text)
	m.syncTranscripts()
	m.agentLog.Typing = false
	m.tutorLog.Typing = true

	level := m.session.Level()
	history := m.session.TutorTranscript()
	input := m.session.PendingInput()
	return m, func() tea.Msg {
		fb, err := m.tutor.Feedback(context.Background(), level, history, input, msg.Text)
		if err != nil {
			return attemptFailedMsg{Err: err}
		}
		return tutorRespondedMsg{Feedback: fb}
	}
}

func (m *MissionScreen) handleTutorResponded(msg tutorRespondedMsg) (screen.Screen, tea.Cmd) {
	level := m.session.Level()
	transcript := m.session.AgentTranscript()
	var input, output string
	if n := len(transcript); n >= 2 {
		input = transcript[n-2].Content
		output = transcript[n-1].Content
	}

	m.session.ApplyTutorResponse(msg.Feedback.Transcript())
	m.tutorLog.Typing = false
	m.syncTranscripts()

	if m.attemptRepo != nil {
		_ = m.attemptRepo.Record(context.Background(), store.LabAttempt{
			SessionID:   m.runID,
			LevelID:     level.ID,
			Input:       input,
			AgentOutput: output,
			Solved:      m.session.State().IsSolved,
		})
	}

	return m, m.input.Focus()
}

func (m *MissionScreen) advanceLevel() (screen.Screen, tea.Cmd) {
	if err := m.session.Advance(); err != nil {
		return m, nil
	}
	if m.session.State().IsLabComplete {
		m.certSerial = uuid.New().String()
		return m, nil
	}
	m.showBriefing = true
	m.errMsg = ""
	m.syncTranscripts()
	return m, m.input.Focus()
}

func (m *MissionScreen) acceptingInput() bool {
	st := m.session.State()
	return !m.showBriefing && !st.IsSolved && !st.IsLabComplete && !m.session.InFlight()
}

// syncTranscripts rebuilds the chat logs from the session transcripts.
// The session owns the data; the logs are a render cache.
func (m *MissionScreen) syncTranscripts() {
	m.agentLog.Clear()
	for _, msg := range m.session.AgentTranscript() {
		if msg.Role == lab.RoleUser {
			m.agentLog.Append("you", msg.Content, true)
		} else {
			m.agentLog.Append("agent", msg.Content, false)
		}
	}
	m.tutorLog.Clear()
	for _, msg := range m.session.TutorTranscript() {
		m.tutorLog.Append("tutor", msg.Content, false)
	}
}
