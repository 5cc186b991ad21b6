// Package practice holds the attack-detection drills: scored scenarios
// where the learner analyzes a prompt or model response and calls the
// verdict, with staged hints and a full explanation afterwards.
package practice

import (
	"strings"

	"github.com/avillaseca/redlab/internal/learningpath"
)

// Verdict is the closed set of expected scenario calls.
type Verdict string

const (
	// VerdictAttack means the shown input is a malicious injection.
	VerdictAttack Verdict = "attack"

	// VerdictDefense means the scenario asks for a defensive design.
	VerdictDefense Verdict = "defense"

	// VerdictUnsafe means the shown model response is misaligned.
	VerdictUnsafe Verdict = "unsafe"
)

// Scenario is one detection drill.
type Scenario struct {
	ID          string
	Title       string
	Description string
	Difficulty  learningpath.Difficulty
	Category    string

	// Prompt is the artifact under analysis: an attacker input, a user
	// request, or a model response, depending on the scenario.
	Prompt string

	// Verdict is the call a correct analysis must contain.
	Verdict Verdict

	// Hints are revealed one at a time, in order.
	Hints []string

	// Explanation is shown with the result regardless of correctness.
	Explanation string
}

// Evaluate checks a free-text analysis against the scenario's verdict.
// The policy is a case-insensitive substring match: the analysis passes
// when it contains the verdict keyword anywhere.
func (s *Scenario) Evaluate(answer string) bool {
	return strings.Contains(strings.ToLower(answer), string(s.Verdict))
}

// ByID returns the scenario with the given ID, or nil.
func ByID(id string) *Scenario {
	for i := range Scenarios {
		if Scenarios[i].ID == id {
			return &Scenarios[i]
		}
	}
	return nil
}
