package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose label ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int64
	CreatedAt time.Time
	LLMRequestEventData
}

// UsageRow aggregates token usage for a grouping key (purpose or model).
type UsageRow struct {
	Key          string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error)

	// UsageByPurpose aggregates usage grouped by purpose label.
	UsageByPurpose(ctx context.Context) ([]UsageRow, error)

	// UsageByModel aggregates usage grouped by model.
	UsageByModel(ctx context.Context) ([]UsageRow, error)
}

// LabAttempt records a single injection attempt against a level.
type LabAttempt struct {
	ID          int64
	CreatedAt   time.Time
	SessionID   string // one lab run, first level through completion or reset
	LevelID     int
	Input       string
	AgentOutput string
	Solved      bool
}

// AttemptRepo provides access to recorded lab attempts.
type AttemptRepo interface {
	// Record stores a completed attempt.
	Record(ctx context.Context, a LabAttempt) error

	// ByLevel returns all attempts for a level, oldest first.
	ByLevel(ctx context.Context, levelID int) ([]LabAttempt, error)

	// SolvedLevels returns the set of level IDs with at least one
	// successful attempt.
	SolvedLevels(ctx context.Context) (map[int]bool, error)
}

// Well-known client state keys.
const (
	KeyAssessmentResults = "assessmentResults"
	KeyLearningPath      = "learningPath"
	KeyCompletedModules  = "completedModules"
	KeyContentUpdates    = "notebooklm_updates"
)

// StateRepo is a small key-value store for client-side state such as
// assessment results and module completion.
type StateRepo interface {
	// Get returns the value for key. The bool reports whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put stores or replaces the value for key.
	Put(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
