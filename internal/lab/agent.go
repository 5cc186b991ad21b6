package lab

import (
	"context"
	"strings"

	"github.com/avillaseca/redlab/internal/levels"
	"github.com/avillaseca/redlab/internal/llm"
)

const (
	agentTemperature = 0.7
	agentMaxTokens   = 1024

	// agentFallback is returned when the provider yields an empty body.
	agentFallback = "No response received."
)

// Agent is the simulated vulnerable agent. Each level gives it a hidden
// instruction containing the flag; whether it leaks is up to the model.
type Agent struct {
	provider llm.Provider
}

// NewAgent creates an Agent backed by the given provider.
func NewAgent(p llm.Provider) *Agent {
	return &Agent{provider: p}
}

// Query sends the student's input to the simulated agent for the given
// level. history is the prior agent transcript, oldest first.
func (a *Agent) Query(ctx context.Context, level *levels.LevelConfig, history []Message, input string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeLabAgent)

	req := llm.Request{
		System:      level.AgentInstruction,
		Messages:    append(toLLMMessages(history), llm.Message{Role: llm.RoleUser, Content: input}),
		MaxTokens:   agentMaxTokens,
		Temperature: agentTemperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return agentFallback, nil
	}
	return text, nil
}

func toLLMMessages(history []Message) []llm.Message {
	out := make([]llm.Message, 0, len(history)+1)
	for _, m := range history {
		role := llm.RoleUser
		if m.Role == RoleModel {
			role = llm.RoleAssistant
		}
		out = append(out, llm.Message{Role: role, Content: m.Content})
	}
	return out
}
