package lab

import (
	"errors"
	"strings"
	"time"

	"github.com/avillaseca/redlab/internal/levels"
)

// Session guard errors.
var (
	ErrEmptyInput    = errors.New("empty input")
	ErrBusy          = errors.New("attempt already in flight")
	ErrAlreadySolved = errors.New("level already solved")
	ErrLabComplete   = errors.New("lab is complete")
	ErrNotSolved     = errors.New("level not solved yet")
)

// Session holds the full lab state machine: level progression, attempt
// counting and the two transcripts. It is not safe for concurrent use;
// the TUI drives it from a single update loop.
type Session struct {
	state           State
	agentTranscript []Message
	tutorTranscript []Message

	// In-flight attempt staging. The agent exchange lands in the agent
	// transcript as soon as the agent replies; the solve flag and the
	// tutor entry are withheld until the tutor step also succeeds, so a
	// tutor failure leaves the level retryable.
	inFlight      bool
	pendingInput  string
	pendingSolved bool

	now func() time.Time
}

// NewSession creates a Session positioned at the first level.
func NewSession() *Session {
	return &Session{now: time.Now}
}

// State returns a copy of the current lab state.
func (s *Session) State() State {
	return s.state
}

// Level returns the configuration of the current level.
func (s *Session) Level() *levels.LevelConfig {
	return &levels.Levels[s.state.CurrentLevel]
}

// InFlight reports whether an attempt is currently being processed.
func (s *Session) InFlight() bool {
	return s.inFlight
}

// AgentTranscript returns a copy of the agent conversation.
func (s *Session) AgentTranscript() []Message {
	return append([]Message(nil), s.agentTranscript...)
}

// TutorTranscript returns a copy of the tutor conversation.
func (s *Session) TutorTranscript() []Message {
	return append([]Message(nil), s.tutorTranscript...)
}

// BeginAttempt starts a new injection attempt with the given input.
// The attempt counter increments immediately and is never rolled back,
// even if the provider later fails.
func (s *Session) BeginAttempt(input string) error {
	input = strings.TrimSpace(input)
	switch {
	case input == "":
		return ErrEmptyInput
	case s.state.IsLabComplete:
		return ErrLabComplete
	case s.state.IsSolved:
		return ErrAlreadySolved
	case s.inFlight:
		return ErrBusy
	}

	s.inFlight = true
	s.pendingInput = input
	s.pendingSolved = false
	s.state.Attempts++
	return nil
}

// ApplyAgentResponse commits the staged user message and the agent's reply
// to the agent transcript, and stages the solve check. The level's flag
// must appear in the agent output verbatim (case-sensitive substring).
func (s *Session) ApplyAgentResponse(text string) {
	if !s.inFlight {
		return
	}
	ts := s.now()
	s.agentTranscript = append(s.agentTranscript,
		Message{Role: RoleUser, Content: s.pendingInput, Timestamp: ts},
		Message{Role: RoleModel, Content: text, Timestamp: ts},
	)
	s.pendingSolved = strings.Contains(text, s.Level().Flag)
}

// ApplyTutorResponse appends the tutor's feedback and completes the
// attempt, committing the staged solve state.
func (s *Session) ApplyTutorResponse(text string) {
	if !s.inFlight {
		return
	}
	s.tutorTranscript = append(s.tutorTranscript,
		Message{Role: RoleModel, Content: text, Timestamp: s.now()},
	)
	if s.pendingSolved {
		s.state.IsSolved = true
	}
	s.inFlight = false
	s.pendingInput = ""
	s.pendingSolved = false
}

// Fail aborts the in-flight attempt. Transcripts and solve state are left
// unchanged; the attempt counter keeps its increment.
func (s *Session) Fail() {
	s.inFlight = false
	s.pendingInput = ""
	s.pendingSolved = false
}

// Advance moves to the next level after a solve. Advancing past the final
// level marks the lab complete. The agent transcript is cleared for the
// new level; the tutor transcript carries across so feedback stays
// coherent over the whole run.
func (s *Session) Advance() error {
	if !s.state.IsSolved {
		return ErrNotSolved
	}
	if s.state.CurrentLevel >= levels.Count()-1 {
		s.state.IsLabComplete = true
		return nil
	}
	s.state.CurrentLevel++
	s.state.IsSolved = false
	s.state.Attempts = 0
	s.agentTranscript = nil
	return nil
}

// Reset returns the session to the first level with empty transcripts.
func (s *Session) Reset() {
	s.state = State{}
	s.agentTranscript = nil
	s.tutorTranscript = nil
	s.inFlight = false
	s.pendingInput = ""
	s.pendingSolved = false
}

// PendingInput returns the staged input of the in-flight attempt.
func (s *Session) PendingInput() string {
	return s.pendingInput
}
