package mission

import "github.com/avillaseca/redlab/internal/lab"

// agentRespondedMsg carries the simulated agent's reply to an attempt.
type agentRespondedMsg struct {
	Text string
}

// tutorRespondedMsg carries the tutor's feedback on the last exchange.
type tutorRespondedMsg struct {
	Feedback lab.TutorFeedback
}

// attemptFailedMsg reports a provider error during an attempt.
type attemptFailedMsg struct {
	Err error
}
