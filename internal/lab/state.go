// Package lab implements the prompt-injection lab: a scripted progression
// of defense levels where a simulated vulnerable agent guards a flag and a
// red-team tutor critiques every attempt.
package lab

import "time"

// Role identifies the sender of a transcript message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is a single entry in a lab transcript.
type Message struct {
	Role      Role
	Content   string
	Timestamp time.Time
}

// State is the observable lab progression state.
type State struct {
	// CurrentLevel is the zero-based index into the level catalog.
	CurrentLevel int

	// IsSolved reports whether the current level's flag has been extracted.
	IsSolved bool

	// IsLabComplete is set after advancing past the final level.
	IsLabComplete bool

	// Attempts counts injection attempts on the current level, including
	// attempts that failed with a provider error.
	Attempts int
}
